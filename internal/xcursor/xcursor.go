// Package xcursor resolves named cursors against on-disk Xcursor themes.
//
// A Handle represents one theme (plus everything it inherits) at one nominal
// cursor size. LoadCursor finds the theme file for a name and decodes the
// image whose nominal size is closest to the requested one. Animated cursors
// are reduced to their first frame.
package xcursor

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"
)

// Xcursor file format, all values little-endian:
//
//	magic "Xcur", header byte length, version, ntoc
//	ntoc × (type, subtype, position)
//	image chunk: header, type, subtype(nominal size), version,
//	             width, height, xhot, yhot, delay, width*height ARGB words
const (
	fileMagic     = 0x72756358 // "Xcur"
	fileHeaderLen = 16
	chunkImage    = 0xfffd0002

	imageHeaderLen = 36
	// Matches the libXcursor sanity limit on image dimensions.
	maxDimension = 0x7fff
)

// Image is one decoded cursor image.
//
// Pixels holds the raw little-endian ARGB words from the file, which reads
// as B,G,R,A bytes per pixel: exactly the layout a depth-32 ZPixmap upload
// against an ARGB32 render format expects.
type Image struct {
	Width   uint16
	Height  uint16
	HotX    uint16
	HotY    uint16
	Delay   time.Duration
	Pixels  []byte
	Nominal int
}

type toc struct {
	typ      uint32
	subtype  uint32
	position uint32
}

// DecodeFile decodes the image from an Xcursor file whose nominal size is
// closest to size.
func DecodeFile(path string, size int) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := decode(data, size)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return img, nil
}

func decode(data []byte, size int) (*Image, error) {
	if len(data) < fileHeaderLen {
		return nil, fmt.Errorf("truncated header: %d bytes", len(data))
	}
	le := binary.LittleEndian
	if le.Uint32(data[0:]) != fileMagic {
		return nil, fmt.Errorf("bad magic %#x", le.Uint32(data[0:]))
	}
	hdrLen := le.Uint32(data[4:])
	ntoc := le.Uint32(data[12:])
	if hdrLen < fileHeaderLen || uint64(hdrLen)+uint64(ntoc)*12 > uint64(len(data)) {
		return nil, fmt.Errorf("corrupt table of contents")
	}

	tocs := make([]toc, 0, ntoc)
	for i := uint32(0); i < ntoc; i++ {
		off := hdrLen + i*12
		tocs = append(tocs, toc{
			typ:      le.Uint32(data[off:]),
			subtype:  le.Uint32(data[off+4:]),
			position: le.Uint32(data[off+8:]),
		})
	}

	best, found := bestSize(tocs, size)
	if !found {
		return nil, fmt.Errorf("no image chunks")
	}
	for _, tc := range tocs {
		if tc.typ != chunkImage || tc.subtype != best {
			continue
		}
		// First frame only; animation is out of scope.
		return decodeImage(data, tc)
	}
	return nil, fmt.Errorf("no image chunks")
}

// bestSize picks the nominal size closest to the target among the image
// chunks present.
func bestSize(tocs []toc, target int) (uint32, bool) {
	var best uint32
	bestDist := -1
	for _, tc := range tocs {
		if tc.typ != chunkImage {
			continue
		}
		dist := int(tc.subtype) - target
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = tc.subtype, dist
		}
	}
	return best, bestDist >= 0
}

func decodeImage(data []byte, tc toc) (*Image, error) {
	le := binary.LittleEndian
	off := uint64(tc.position)
	if off+imageHeaderLen > uint64(len(data)) {
		return nil, fmt.Errorf("truncated image chunk at %d", tc.position)
	}
	if le.Uint32(data[off+4:]) != chunkImage {
		return nil, fmt.Errorf("chunk type mismatch at %d", tc.position)
	}
	width := le.Uint32(data[off+16:])
	height := le.Uint32(data[off+20:])
	xhot := le.Uint32(data[off+24:])
	yhot := le.Uint32(data[off+28:])
	delay := le.Uint32(data[off+32:])

	if width == 0 || height == 0 || width > maxDimension || height > maxDimension {
		return nil, fmt.Errorf("bad image dimensions %dx%d", width, height)
	}
	if xhot >= width || yhot >= height {
		return nil, fmt.Errorf("hotspot (%d,%d) outside %dx%d", xhot, yhot, width, height)
	}
	npix := uint64(width) * uint64(height) * 4
	start := off + imageHeaderLen
	if start+npix > uint64(len(data)) {
		return nil, fmt.Errorf("truncated pixel data")
	}

	pixels := make([]byte, npix)
	copy(pixels, data[start:start+npix])
	return &Image{
		Width:   uint16(width),
		Height:  uint16(height),
		HotX:    uint16(xhot),
		HotY:    uint16(yhot),
		Delay:   time.Duration(delay) * time.Millisecond,
		Pixels:  pixels,
		Nominal: int(tc.subtype),
	}, nil
}
