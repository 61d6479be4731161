package cursor

import (
	"errors"

	"github.com/BurntSushi/xgb/render"
)

// ErrNoARGB32Format means the server advertises no ARGB32 direct pixel
// format. Cursor creation from images cannot work on such a server; this is
// an environment precondition failure, not a protocol error.
var ErrNoARGB32Format = errors.New("no ARGB32 render pict format advertised by the server")

// argb32Format scans the advertised render formats for the direct-color
// depth-32 format with red/green/blue/alpha at shifts 16/8/0/24 and 0xff
// masks. Done per call; the scan is a handful of entries.
func (m *Manager) argb32Format() (render.Pictformat, error) {
	formats, err := m.conn.PictFormats()
	if err != nil {
		return 0, err
	}
	for _, f := range formats {
		if f.Type != render.PictTypeDirect || f.Depth != 32 {
			continue
		}
		d := f.Direct
		if d.RedShift == 16 && d.RedMask == 0xff &&
			d.GreenShift == 8 && d.GreenMask == 0xff &&
			d.BlueShift == 0 && d.BlueMask == 0xff &&
			d.AlphaShift == 24 && d.AlphaMask == 0xff {
			return f.Id, nil
		}
	}
	return 0, ErrNoARGB32Format
}
