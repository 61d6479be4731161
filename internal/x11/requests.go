package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/render"
	"github.com/BurntSushi/xgb/xproto"
)

// Request surface consumed by internal/cursor. Requests whose server-side
// failure the caller deliberately ignores are sent unchecked; picture and
// cursor creation are checked so the reply is validated before later stages
// build on the new resource.

// GenPixmapID allocates a resource identifier for a pixmap.
func (c *Conn) GenPixmapID() (xproto.Pixmap, error) {
	return xproto.NewPixmapId(c.XUtil.Conn())
}

// GenGCID allocates a resource identifier for a graphics context.
func (c *Conn) GenGCID() (xproto.Gcontext, error) {
	return xproto.NewGcontextId(c.XUtil.Conn())
}

// GenPictureID allocates a resource identifier for a render picture.
func (c *Conn) GenPictureID() (render.Picture, error) {
	return render.NewPictureId(c.XUtil.Conn())
}

// GenCursorID allocates a resource identifier for a cursor.
func (c *Conn) GenCursorID() (xproto.Cursor, error) {
	return xproto.NewCursorId(c.XUtil.Conn())
}

// RootWindow returns the root window of the default screen.
func (c *Conn) RootWindow() xproto.Window {
	return c.Root
}

// CreatePixmap creates an off-screen pixel surface rooted at the default
// root window.
func (c *Conn) CreatePixmap(depth byte, pid xproto.Pixmap, width, height uint16) {
	xproto.CreatePixmap(c.XUtil.Conn(), depth, pid, xproto.Drawable(c.Root), width, height)
}

// FreePixmap releases a pixmap.
func (c *Conn) FreePixmap(pid xproto.Pixmap) {
	xproto.FreePixmap(c.XUtil.Conn(), pid)
}

// CreateGC creates a graphics context with default values bound to drawable.
func (c *Conn) CreateGC(gc xproto.Gcontext, drawable xproto.Drawable) {
	xproto.CreateGC(c.XUtil.Conn(), gc, drawable, 0, nil)
}

// FreeGC releases a graphics context.
func (c *Conn) FreeGC(gc xproto.Gcontext) {
	xproto.FreeGC(c.XUtil.Conn(), gc)
}

// PutImage uploads pixel data into drawable at the origin.
func (c *Conn) PutImage(format byte, drawable xproto.Drawable, gc xproto.Gcontext, width, height uint16, depth byte, data []byte) {
	xproto.PutImage(c.XUtil.Conn(), format, drawable, gc, width, height, 0, 0, 0, depth, data)
}

// PictFormats returns the pixel formats the server's RENDER extension
// advertises.
func (c *Conn) PictFormats() ([]render.Pictforminfo, error) {
	reply, err := render.QueryPictFormats(c.XUtil.Conn()).Reply()
	if err != nil {
		return nil, fmt.Errorf("query render pict formats: %w", err)
	}
	return reply.Formats, nil
}

// CreatePicture creates a render picture over drawable with the given pixel
// format, waiting for and validating the reply.
func (c *Conn) CreatePicture(pid render.Picture, drawable xproto.Drawable, format render.Pictformat) error {
	return render.CreatePictureChecked(c.XUtil.Conn(), pid, drawable, format, 0, nil).Check()
}

// FreePicture releases a render picture.
func (c *Conn) FreePicture(pid render.Picture) {
	render.FreePicture(c.XUtil.Conn(), pid)
}

// CreateCursor creates a cursor from a render picture at the given hotspot,
// waiting for and validating the reply.
func (c *Conn) CreateCursor(cid xproto.Cursor, source render.Picture, hotX, hotY uint16) error {
	return render.CreateCursorChecked(c.XUtil.Conn(), cid, source, hotX, hotY).Check()
}

// FreeCursor releases a cursor.
func (c *Conn) FreeCursor(cid xproto.Cursor) {
	xproto.FreeCursor(c.XUtil.Conn(), cid)
}

// ChangeWindowCursor sets the cursor attribute of win. The request is sent
// unchecked; cursor setting is best-effort.
func (c *Conn) ChangeWindowCursor(win xproto.Window, cursor xproto.Cursor) {
	xproto.ChangeWindowAttributes(c.XUtil.Conn(), win, xproto.CwCursor, []uint32{uint32(cursor)})
}

// Flush forces the outgoing request stream to the server with a round trip
// and surfaces connection-level failures.
func (c *Conn) Flush() error {
	if _, err := xproto.GetInputFocus(c.XUtil.Conn()).Reply(); err != nil {
		return fmt.Errorf("flush connection: %w", err)
	}
	return nil
}
