package cursor

import (
	"fmt"

	"github.com/BurntSushi/xgb/render"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/wmkit/cursorkit/internal/icon"
	"github.com/wmkit/cursorkit/internal/xcursor"
)

var errThemeUnavailable = fmt.Errorf("theme unavailable")

// fakeConn records the request stream instead of talking to a server.
type fakeConn struct {
	nextID uint32

	ops  []string
	puts [][]byte

	formats          []render.Pictforminfo
	formatsErr       error
	createPictureErr error
	createCursorErr  error
	flushErr         error

	glyphs map[string]xproto.Cursor
}

func (f *fakeConn) genID() uint32 {
	f.nextID++
	return f.nextID
}

func (f *fakeConn) record(format string, args ...any) {
	f.ops = append(f.ops, fmt.Sprintf(format, args...))
}

func (f *fakeConn) GenPixmapID() (xproto.Pixmap, error)   { return xproto.Pixmap(f.genID()), nil }
func (f *fakeConn) GenGCID() (xproto.Gcontext, error)     { return xproto.Gcontext(f.genID()), nil }
func (f *fakeConn) GenPictureID() (render.Picture, error) { return render.Picture(f.genID()), nil }
func (f *fakeConn) GenCursorID() (xproto.Cursor, error)   { return xproto.Cursor(f.genID()), nil }

func (f *fakeConn) RootWindow() xproto.Window { return 1 }
func (f *fakeConn) ScreenHeight() int         { return 1080 }

func (f *fakeConn) CreatePixmap(depth byte, pid xproto.Pixmap, width, height uint16) {
	f.record("create-pixmap %d depth=%d %dx%d", pid, depth, width, height)
}

func (f *fakeConn) FreePixmap(pid xproto.Pixmap) {
	f.record("free-pixmap %d", pid)
}

func (f *fakeConn) CreateGC(gc xproto.Gcontext, drawable xproto.Drawable) {
	f.record("create-gc %d", gc)
}

func (f *fakeConn) FreeGC(gc xproto.Gcontext) {
	f.record("free-gc %d", gc)
}

func (f *fakeConn) PutImage(format byte, drawable xproto.Drawable, gc xproto.Gcontext, width, height uint16, depth byte, data []byte) {
	f.record("put-image format=%d %dx%d depth=%d", format, width, height, depth)
	f.puts = append(f.puts, append([]byte(nil), data...))
}

func (f *fakeConn) PictFormats() ([]render.Pictforminfo, error) {
	f.record("query-pict-formats")
	return f.formats, f.formatsErr
}

func (f *fakeConn) CreatePicture(pid render.Picture, drawable xproto.Drawable, format render.Pictformat) error {
	f.record("create-picture %d format=%d", pid, format)
	return f.createPictureErr
}

func (f *fakeConn) FreePicture(pid render.Picture) {
	f.record("free-picture %d", pid)
}

func (f *fakeConn) CreateCursor(cid xproto.Cursor, source render.Picture, hotX, hotY uint16) error {
	f.record("create-cursor %d hot=(%d,%d)", cid, hotX, hotY)
	return f.createCursorErr
}

func (f *fakeConn) FreeCursor(cid xproto.Cursor) {
	f.record("free-cursor %d", cid)
}

func (f *fakeConn) GlyphCursor(name string) (xproto.Cursor, error) {
	if cur, ok := f.glyphs[name]; ok {
		f.record("glyph-cursor %s", name)
		return cur, nil
	}
	return 0, fmt.Errorf("no cursor font glyph for %q", name)
}

func (f *fakeConn) ChangeWindowCursor(win xproto.Window, cursor xproto.Cursor) {
	f.record("change-window-cursor win=%d cursor=%d", win, cursor)
}

func (f *fakeConn) Flush() error {
	f.record("flush")
	return f.flushErr
}

// countOps counts recorded ops whose name matches prefix.
func (f *fakeConn) countOps(prefix string) int {
	n := 0
	for _, op := range f.ops {
		if len(op) >= len(prefix) && op[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// argb32Formats is a server format list containing exactly one ARGB32 match.
func argb32Formats() []render.Pictforminfo {
	return []render.Pictforminfo{
		{Id: 10, Type: render.PictTypeIndexed, Depth: 8},
		{Id: 11, Type: render.PictTypeDirect, Depth: 24, Direct: render.Directformat{
			RedShift: 16, RedMask: 0xff, GreenShift: 8, GreenMask: 0xff, BlueMask: 0xff,
		}},
		{Id: 12, Type: render.PictTypeDirect, Depth: 32, Direct: render.Directformat{
			RedShift: 16, RedMask: 0xff,
			GreenShift: 8, GreenMask: 0xff,
			BlueShift: 0, BlueMask: 0xff,
			AlphaShift: 24, AlphaMask: 0xff,
		}},
	}
}

// fakeTheme serves in-memory cursor images and records lookup order.
type fakeTheme struct {
	images  map[string]*xcursor.Image
	lookups []string
}

func (t *fakeTheme) LoadCursor(name string) (*xcursor.Image, error) {
	t.lookups = append(t.lookups, name)
	if img, ok := t.images[name]; ok {
		return img, nil
	}
	return nil, fmt.Errorf("cursor %q not found", name)
}

func themeImage(w, h uint16) *xcursor.Image {
	return &xcursor.Image{
		Width:  w,
		Height: h,
		Pixels: make([]byte, int(w)*int(h)*4),
	}
}

// newTestManager wires a manager to the fake conn and theme. themeErr, when
// set, makes theme opening itself fail.
func newTestManager(fc *fakeConn, theme ThemeHandle, themeErr error) (*Manager, *int) {
	opens := 0
	m := &Manager{
		conn: fc,
		openTheme: func() (ThemeHandle, error) {
			opens++
			if themeErr != nil {
				return nil, themeErr
			}
			return theme, nil
		},
		cache: make(map[icon.Cursor]xproto.Cursor),
	}
	return m, &opens
}
