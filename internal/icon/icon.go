// Package icon enumerates the logical cursor icons a window can request.
//
// Each icon has the CSS cursor keyword as its canonical name plus the X11
// names it is known under in legacy cursor themes. Resolution tries the
// canonical name first, then each alternate in order.
package icon

// Cursor identifies a named system cursor. The zero value is Default.
type Cursor int

const (
	Default Cursor = iota
	// None hides the pointer. It has no theme names; resolving it produces
	// a fully transparent cursor.
	None
	ContextMenu
	Help
	Pointer
	Progress
	Wait
	Cell
	Crosshair
	Text
	VerticalText
	Alias
	Copy
	Move
	NoDrop
	NotAllowed
	Grab
	Grabbing
	EResize
	NResize
	NeResize
	NwResize
	SResize
	SeResize
	SwResize
	WResize
	EwResize
	NsResize
	NeswResize
	NwseResize
	ColResize
	RowResize
	AllScroll
	ZoomIn
	ZoomOut
)

var names = map[Cursor]string{
	Default:      "default",
	None:         "none",
	ContextMenu:  "context-menu",
	Help:         "help",
	Pointer:      "pointer",
	Progress:     "progress",
	Wait:         "wait",
	Cell:         "cell",
	Crosshair:    "crosshair",
	Text:         "text",
	VerticalText: "vertical-text",
	Alias:        "alias",
	Copy:         "copy",
	Move:         "move",
	NoDrop:       "no-drop",
	NotAllowed:   "not-allowed",
	Grab:         "grab",
	Grabbing:     "grabbing",
	EResize:      "e-resize",
	NResize:      "n-resize",
	NeResize:     "ne-resize",
	NwResize:     "nw-resize",
	SResize:      "s-resize",
	SeResize:     "se-resize",
	SwResize:     "sw-resize",
	WResize:      "w-resize",
	EwResize:     "ew-resize",
	NsResize:     "ns-resize",
	NeswResize:   "nesw-resize",
	NwseResize:   "nwse-resize",
	ColResize:    "col-resize",
	RowResize:    "row-resize",
	AllScroll:    "all-scroll",
	ZoomIn:       "zoom-in",
	ZoomOut:      "zoom-out",
}

// altNames maps each icon to the legacy X11 cursor names themes may use
// instead of the CSS keyword.
var altNames = map[Cursor][]string{
	Default:      {"left_ptr"},
	ContextMenu:  {"left_ptr"},
	Help:         {"question_arrow"},
	Pointer:      {"hand2", "hand1"},
	Progress:     {"left_ptr_watch"},
	Wait:         {"watch"},
	Cell:         {"plus"},
	Crosshair:    {"tcross"},
	Text:         {"xterm"},
	VerticalText: {"vertical-text"},
	Alias:        {"dnd-link"},
	Copy:         {"dnd-copy"},
	Move:         {"fleur"},
	NoDrop:       {"dnd-none"},
	NotAllowed:   {"crossed_circle"},
	Grab:         {"openhand", "grab"},
	Grabbing:     {"closedhand", "grabbing"},
	EResize:      {"right_side"},
	NResize:      {"top_side"},
	NeResize:     {"top_right_corner"},
	NwResize:     {"top_left_corner"},
	SResize:      {"bottom_side"},
	SeResize:     {"bottom_right_corner"},
	SwResize:     {"bottom_left_corner"},
	WResize:      {"left_side"},
	EwResize:     {"h_double_arrow"},
	NsResize:     {"v_double_arrow"},
	NeswResize:   {"fd_double_arrow"},
	NwseResize:   {"bd_double_arrow"},
	ColResize:    {"split_h"},
	RowResize:    {"split_v"},
	AllScroll:    {"all-scroll"},
	ZoomIn:       {"zoom-in"},
	ZoomOut:      {"zoom-out"},
}

// Name returns the canonical (CSS) name of the icon.
func (c Cursor) Name() string {
	return names[c]
}

// AltNames returns the legacy theme names tried after the canonical name.
func (c Cursor) AltNames() []string {
	return altNames[c]
}

// Names returns every candidate theme name in lookup order: the canonical
// name followed by the alternates.
func (c Cursor) Names() []string {
	alts := altNames[c]
	out := make([]string, 0, 1+len(alts))
	out = append(out, c.Name())
	out = append(out, alts...)
	return out
}

func (c Cursor) String() string {
	return c.Name()
}

// FromName parses a canonical icon name. It does not match alternate names.
func FromName(name string) (Cursor, bool) {
	for c, n := range names {
		if n == name {
			return c, true
		}
	}
	return Default, false
}

// All lists every icon except None, in declaration order.
func All() []Cursor {
	out := make([]Cursor, 0, len(names)-1)
	for c := Default; c <= ZoomOut; c++ {
		if c == None {
			continue
		}
		out = append(out, c)
	}
	return out
}
