package cursor

import (
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/BurntSushi/xgb/xproto"
)

// CustomCursor is a shared handle to a cursor built from user-supplied pixel
// data. Clones share one server resource and one release obligation: the
// server cursor is freed exactly once, when the last clone is released.
//
// CustomCursor values are comparable; two values are equal exactly when they
// share the same underlying allocation. Cursors built from identical pixel
// data are not equal.
type CustomCursor struct {
	inner *customCursorInner
}

type customCursorInner struct {
	conn   Conn
	cursor xproto.Cursor
	refs   atomic.Int32
}

// NewCustomCursor builds a cursor from rgba, which holds width*height pixels
// in R,G,B,A byte order. The data is copied and converted to the B,G,R,A
// order the server-side ARGB32 format stores, then uploaded through the
// image pipeline.
func (m *Manager) NewCustomCursor(rgba []byte, width, height, hotX, hotY uint16) (CustomCursor, error) {
	bgra := slices.Clone(rgba)
	rgbaToBGRA(bgra)

	cur, err := m.createCursorFromImage(width, height, 32, hotX, hotY, bgra)
	if err != nil {
		return CustomCursor{}, fmt.Errorf("create custom cursor: %w", err)
	}

	inner := &customCursorInner{conn: m.conn, cursor: cur}
	inner.refs.Store(1)
	return CustomCursor{inner: inner}, nil
}

// rgbaToBGRA swaps the first and third byte of every 4-byte pixel in place.
func rgbaToBGRA(pixels []byte) {
	for i := 0; i+3 < len(pixels); i += 4 {
		pixels[i], pixels[i+2] = pixels[i+2], pixels[i]
	}
}

// Handle returns the server-side cursor identifier.
func (c CustomCursor) Handle() xproto.Cursor {
	return c.inner.cursor
}

// Clone returns a new reference sharing the same server resource.
func (c CustomCursor) Clone() CustomCursor {
	c.inner.refs.Add(1)
	return c
}

// Release drops one reference. The last release frees the server cursor;
// a failure to free at teardown is swallowed, there is no recovery for it.
func (c CustomCursor) Release() {
	if c.inner.refs.Add(-1) == 0 {
		c.inner.conn.FreeCursor(c.inner.cursor)
	}
}
