package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"
)

// coreGlyphs maps X11 cursor names to glyphs in the standard "cursor" font,
// used when a theme has no file for the name.
var coreGlyphs = map[string]uint16{
	"left_ptr":            xcursor.LeftPtr,
	"hand1":               xcursor.Hand1,
	"hand2":               xcursor.Hand2,
	"xterm":               xcursor.XTerm,
	"watch":               xcursor.Watch,
	"fleur":               xcursor.Fleur,
	"crosshair":           xcursor.Crosshair,
	"tcross":              xcursor.TCross,
	"question_arrow":      xcursor.QuestionArrow,
	"h_double_arrow":      xcursor.SBHDoubleArrow,
	"v_double_arrow":      xcursor.SBVDoubleArrow,
	"top_side":            xcursor.TopSide,
	"bottom_side":         xcursor.BottomSide,
	"left_side":           xcursor.LeftSide,
	"right_side":          xcursor.RightSide,
	"top_left_corner":     xcursor.TopLeftCorner,
	"top_right_corner":    xcursor.TopRightCorner,
	"bottom_left_corner":  xcursor.BottomLeftCorner,
	"bottom_right_corner": xcursor.BottomRightCorner,
	"plus":                xcursor.Plus,
	"circle":              xcursor.Circle,
	"crossed_circle":      xcursor.Circle,
	"sizing":              xcursor.Sizing,
}

// GlyphCursor creates a cursor from the standard cursor font for a core X11
// cursor name. Names without a font glyph return an error.
func (c *Conn) GlyphCursor(name string) (xproto.Cursor, error) {
	glyph, ok := coreGlyphs[name]
	if !ok {
		return 0, fmt.Errorf("no cursor font glyph for %q", name)
	}
	cur, err := xcursor.CreateCursor(c.XUtil, glyph)
	if err != nil {
		return 0, fmt.Errorf("create glyph cursor %q: %w", name, err)
	}
	return cur, nil
}
