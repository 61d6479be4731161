package cursor

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// createCursorFromImage drives the four-stage allocation pipeline:
// pixmap → graphics context + upload → render picture → cursor.
//
// Intermediate resources are pushed on a cleanup stack as they are created
// and the stack is unwound in reverse order on any failure, so a partial
// pipeline never leaks server resources. On success the same unwind releases
// the pixmap and picture; the cursor keeps its own backing and is the only
// resource that outlives the call.
func (m *Manager) createCursorFromImage(width, height uint16, depth byte, hotX, hotY uint16, image []byte) (xproto.Cursor, error) {
	if width == 0 || height == 0 {
		return 0, fmt.Errorf("cursor image dimensions %dx%d must be positive", width, height)
	}
	if hotX >= width || hotY >= height {
		return 0, fmt.Errorf("hotspot (%d,%d) outside cursor image %dx%d", hotX, hotY, width, height)
	}
	if depth == 32 && len(image) != int(width)*int(height)*4 {
		return 0, fmt.Errorf("cursor image buffer is %d bytes, want %d", len(image), int(width)*int(height)*4)
	}

	var pending []func()
	unwind := func() {
		for i := len(pending) - 1; i >= 0; i-- {
			pending[i]()
		}
	}

	// Pixmap for the default root window.
	pixmap, err := m.conn.GenPixmapID()
	if err != nil {
		return 0, fmt.Errorf("allocate pixmap id: %w", err)
	}
	m.conn.CreatePixmap(depth, pixmap, width, height)
	pending = append(pending, func() { m.conn.FreePixmap(pixmap) })

	// GC to draw with; released as soon as the upload is issued.
	gc, err := m.conn.GenGCID()
	if err != nil {
		unwind()
		return 0, fmt.Errorf("allocate gcontext id: %w", err)
	}
	m.conn.CreateGC(gc, xproto.Drawable(pixmap))

	format := byte(xproto.ImageFormatZPixmap)
	if depth == 1 {
		format = xproto.ImageFormatXYPixmap
	}
	m.conn.PutImage(format, xproto.Drawable(pixmap), gc, width, height, depth, image)
	m.conn.FreeGC(gc)

	// XRender picture over the pixmap.
	pictFormat, err := m.argb32Format()
	if err != nil {
		unwind()
		return 0, err
	}
	picture, err := m.conn.GenPictureID()
	if err != nil {
		unwind()
		return 0, fmt.Errorf("allocate picture id: %w", err)
	}
	if err := m.conn.CreatePicture(picture, xproto.Drawable(pixmap), pictFormat); err != nil {
		unwind()
		return 0, fmt.Errorf("create render picture: %w", err)
	}
	pending = append(pending, func() { m.conn.FreePicture(picture) })

	// The cursor itself.
	cursor, err := m.conn.GenCursorID()
	if err != nil {
		unwind()
		return 0, fmt.Errorf("allocate cursor id: %w", err)
	}
	if err := m.conn.CreateCursor(cursor, picture, hotX, hotY); err != nil {
		unwind()
		return 0, fmt.Errorf("create cursor: %w", err)
	}

	unwind()
	return cursor, nil
}

// createEmptyCursor builds the invisible cursor: a 1x1 fully transparent
// image with a zero hotspot.
func (m *Manager) createEmptyCursor() (xproto.Cursor, error) {
	return m.createCursorFromImage(1, 1, 32, 0, 0, []byte{0, 0, 0, 0})
}
