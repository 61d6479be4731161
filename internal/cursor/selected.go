package cursor

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/wmkit/cursorkit/internal/icon"
)

// SelectedCursor is what a window currently wants displayed: either a custom
// cursor or a named icon. The zero value selects the named default icon.
type SelectedCursor struct {
	custom CustomCursor
	named  icon.Cursor
}

// SelectedNamed selects a named icon.
func SelectedNamed(sel icon.Cursor) SelectedCursor {
	return SelectedCursor{named: sel}
}

// SelectedCustom selects a custom cursor.
func SelectedCustom(c CustomCursor) SelectedCursor {
	return SelectedCursor{custom: c}
}

// IsCustom reports whether a custom cursor is selected.
func (s SelectedCursor) IsCustom() bool {
	return s.custom.inner != nil
}

// Named returns the selected icon; meaningful only when IsCustom is false.
func (s SelectedCursor) Named() icon.Cursor {
	return s.named
}

// Custom returns the selected custom cursor; meaningful only when IsCustom
// is true.
func (s SelectedCursor) Custom() CustomCursor {
	return s.custom
}

// Apply sets the selection on win through m.
func (s SelectedCursor) Apply(m *Manager, win xproto.Window) error {
	if s.IsCustom() {
		return m.SetCustomCursor(win, s.custom)
	}
	return m.SetNamedCursor(win, s.named)
}
