package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// CreateWindow creates and maps a plain top-level window, used by the demo
// subcommand as a target for cursor application.
func (c *Conn) CreateWindow(title string, width, height int) (xproto.Window, error) {
	win, err := xwindow.Generate(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("generate window id: %w", err)
	}

	err = win.CreateChecked(c.Root, 0, 0, width, height,
		xproto.CwBackPixel|xproto.CwEventMask,
		0xffffff, xproto.EventMaskExposure|xproto.EventMaskStructureNotify)
	if err != nil {
		return 0, fmt.Errorf("create window: %w", err)
	}

	// Best effort; some WMs ignore it.
	ewmh.WmNameSet(c.XUtil, win.Id, title)

	win.Map()
	return win.Id, nil
}
