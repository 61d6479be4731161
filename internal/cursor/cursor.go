// Package cursor turns logical cursor requests (a named system icon or raw
// pixel data) into server-side cursor resources and applies them to windows.
//
// Named icons are realized at most once per connection through a cache;
// custom cursors are built directly and carry their own release obligation.
package cursor

import (
	"sync"

	"github.com/BurntSushi/xgb/render"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/wmkit/cursorkit/internal/icon"
	"github.com/wmkit/cursorkit/internal/xcursor"
)

// Conn is the slice of the X connection the cursor code issues requests on.
// Methods without an error return are sent unchecked: the server may still
// reject them, but the caller has nothing useful to do about it.
// *x11.Conn implements it.
type Conn interface {
	GenPixmapID() (xproto.Pixmap, error)
	GenGCID() (xproto.Gcontext, error)
	GenPictureID() (render.Picture, error)
	GenCursorID() (xproto.Cursor, error)

	RootWindow() xproto.Window
	ScreenHeight() int

	CreatePixmap(depth byte, pid xproto.Pixmap, width, height uint16)
	FreePixmap(pid xproto.Pixmap)
	CreateGC(gc xproto.Gcontext, drawable xproto.Drawable)
	FreeGC(gc xproto.Gcontext)
	PutImage(format byte, drawable xproto.Drawable, gc xproto.Gcontext, width, height uint16, depth byte, data []byte)

	PictFormats() ([]render.Pictforminfo, error)
	CreatePicture(pid render.Picture, drawable xproto.Drawable, format render.Pictformat) error
	FreePicture(pid render.Picture)
	CreateCursor(cid xproto.Cursor, source render.Picture, hotX, hotY uint16) error
	FreeCursor(cid xproto.Cursor)

	GlyphCursor(name string) (xproto.Cursor, error)

	ChangeWindowCursor(win xproto.Window, cursor xproto.Cursor)
	Flush() error
}

// ThemeHandle resolves a cursor name against the active icon theme.
type ThemeHandle interface {
	LoadCursor(name string) (*xcursor.Image, error)
}

// Manager owns the named-cursor cache for one connection and builds cursor
// resources on it.
type Manager struct {
	conn Conn

	// openTheme is swapped out by tests.
	openTheme func() (ThemeHandle, error)

	mu    sync.Mutex
	cache map[icon.Cursor]xproto.Cursor
}

// NewManager creates a manager resolving named cursors against the theme
// selection in db.
func NewManager(conn Conn, db xcursor.Database) *Manager {
	return &Manager{
		conn: conn,
		openTheme: func() (ThemeHandle, error) {
			return xcursor.NewHandle(conn.ScreenHeight(), db)
		},
		cache: make(map[icon.Cursor]xproto.Cursor),
	}
}
