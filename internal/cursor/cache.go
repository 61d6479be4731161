package cursor

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/wmkit/cursorkit/internal/icon"
)

// SetNamedCursor resolves sel through the cache and applies it to win.
// Each selector is realized at most once per connection; a failed resolution
// is never cached, so a later call retries.
func (m *Manager) SetNamedCursor(win xproto.Window, sel icon.Cursor) error {
	cur, err := m.resolve(sel)
	if err != nil {
		return fmt.Errorf("resolve cursor %q: %w", sel, err)
	}
	return m.updateCursor(win, cur)
}

// resolve returns the cached handle for sel, realizing it on first use.
// Failures are returned without touching the cache.
func (m *Manager) resolve(sel icon.Cursor) (xproto.Cursor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cur, ok := m.cache[sel]; ok {
		return cur, nil
	}
	cur, err := m.getCursor(sel)
	if err != nil {
		return 0, err
	}
	m.cache[sel] = cur
	return cur, nil
}

// SetCustomCursor applies a custom cursor to win. Custom cursors bypass the
// cache; each one is already uniquely built and uniquely owned.
func (m *Manager) SetCustomCursor(win xproto.Window, c CustomCursor) error {
	return m.updateCursor(win, c.inner.cursor)
}

// updateCursor sets the window's cursor attribute and flushes so the change
// takes effect promptly. The attribute change itself is best-effort; a flush
// failure means the connection is in trouble and propagates.
func (m *Manager) updateCursor(win xproto.Window, cur xproto.Cursor) error {
	m.conn.ChangeWindowCursor(win, cur)
	return m.conn.Flush()
}
