package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/render"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
)

// Conn manages the X11 connection and core X resources
type Conn struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConn establishes a connection to the X11 server and initializes the
// RENDER extension, which cursor creation from pixel data requires.
func NewConn() (*Conn, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	if err := render.Init(xu.Conn()); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("RENDER extension unavailable: %w", err)
	}

	return &Conn{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// ScreenIndex returns the connection's default screen number.
func (c *Conn) ScreenIndex() int {
	return c.XUtil.Conn().DefaultScreen
}

// ScreenHeight returns the default screen height in pixels. Feeds the
// default cursor-size heuristic.
func (c *Conn) ScreenHeight() int {
	return int(c.XUtil.Screen().HeightInPixels)
}

// EventLoop starts the main X11 event loop (blocking)
func (c *Conn) EventLoop() {
	xevent.Main(c.XUtil)
}

// Close cleanly disconnects from the X11 server
func (c *Conn) Close() {
	c.XUtil.Conn().Close()
}
