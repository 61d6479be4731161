package cursor

import (
	"testing"

	"github.com/wmkit/cursorkit/internal/icon"
	"github.com/wmkit/cursorkit/internal/xcursor"
)

func TestSelectedCursorZeroValueIsDefaultIcon(t *testing.T) {
	var s SelectedCursor
	if s.IsCustom() {
		t.Fatalf("zero value must be a named selection")
	}
	if s.Named() != icon.Default {
		t.Fatalf("zero value must select the default icon, got %v", s.Named())
	}
}

func TestSelectedCursorApplyDispatches(t *testing.T) {
	fc := &fakeConn{formats: argb32Formats()}
	theme := &fakeTheme{images: map[string]*xcursor.Image{
		"default": themeImage(24, 24),
	}}
	m, _ := newTestManager(fc, theme, nil)

	custom, err := m.NewCustomCursor(make([]byte, 4), 1, 1, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := SelectedCustom(custom).Apply(m, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(theme.lookups) != 0 {
		t.Fatalf("custom selection must bypass named resolution")
	}

	if err := SelectedNamed(icon.Default).Apply(m, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(theme.lookups) == 0 {
		t.Fatalf("named selection must resolve through the theme")
	}
}
