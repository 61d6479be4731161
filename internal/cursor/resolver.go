package cursor

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/wmkit/cursorkit/internal/icon"
)

// getCursor realizes a selector as a server-side cursor. icon.None never
// touches the theme and always builds the invisible cursor.
func (m *Manager) getCursor(sel icon.Cursor) (xproto.Cursor, error) {
	if sel == icon.None {
		return m.createEmptyCursor()
	}

	handle, err := m.openTheme()
	if err != nil {
		return 0, err
	}

	// Canonical name first, then the documented alternates; the last
	// lookup failure wins when every name misses.
	var lastErr error
	for _, name := range sel.Names() {
		cur, err := m.loadNamed(handle, name)
		if err != nil {
			lastErr = err
			continue
		}
		return cur, nil
	}
	return 0, lastErr
}

// loadNamed loads one theme name: a themed Xcursor image rendered through
// the image pipeline, or a cursor-font glyph when the theme has no file for
// the name. The theme error is reported when both miss.
func (m *Manager) loadNamed(handle ThemeHandle, name string) (xproto.Cursor, error) {
	img, err := handle.LoadCursor(name)
	if err == nil {
		return m.createCursorFromImage(img.Width, img.Height, 32, img.HotX, img.HotY, img.Pixels)
	}
	if cur, glyphErr := m.conn.GlyphCursor(name); glyphErr == nil {
		return cur, nil
	}
	return 0, err
}
