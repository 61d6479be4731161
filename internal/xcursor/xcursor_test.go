package xcursor

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

type testImage struct {
	nominal       uint32
	width, height uint32
	xhot, yhot    uint32
	pixel         [4]byte // repeated width*height times
}

// writeCursorFile builds a minimal Xcursor file with one image chunk per
// entry in images.
func writeCursorFile(t *testing.T, path string, images []testImage) {
	t.Helper()

	var buf bytes.Buffer
	le := binary.LittleEndian
	put := func(v uint32) {
		var b [4]byte
		le.PutUint32(b[:], v)
		buf.Write(b[:])
	}

	put(fileMagic)
	put(fileHeaderLen)
	put(1) // version
	put(uint32(len(images)))

	pos := fileHeaderLen + 12*len(images)
	for _, img := range images {
		put(chunkImage)
		put(img.nominal)
		put(uint32(pos))
		pos += imageHeaderLen + int(img.width*img.height*4)
	}
	for _, img := range images {
		put(imageHeaderLen)
		put(chunkImage)
		put(img.nominal)
		put(1) // chunk version
		put(img.width)
		put(img.height)
		put(img.xhot)
		put(img.yhot)
		put(50) // delay ms
		for i := uint32(0); i < img.width*img.height; i++ {
			buf.Write(img.pixel[:])
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write cursor file: %v", err)
	}
}

func TestDecodeFilePicksClosestSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "left_ptr")
	writeCursorFile(t, path, []testImage{
		{nominal: 16, width: 16, height: 16, pixel: [4]byte{1, 1, 1, 1}},
		{nominal: 24, width: 24, height: 24, xhot: 3, yhot: 5, pixel: [4]byte{9, 8, 7, 6}},
		{nominal: 48, width: 48, height: 48, pixel: [4]byte{2, 2, 2, 2}},
	})

	img, err := DecodeFile(path, 22)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Nominal != 24 {
		t.Fatalf("expected nominal size 24, got %d", img.Nominal)
	}
	if img.Width != 24 || img.Height != 24 {
		t.Fatalf("expected 24x24, got %dx%d", img.Width, img.Height)
	}
	if img.HotX != 3 || img.HotY != 5 {
		t.Fatalf("expected hotspot (3,5), got (%d,%d)", img.HotX, img.HotY)
	}
	if len(img.Pixels) != 24*24*4 {
		t.Fatalf("expected %d pixel bytes, got %d", 24*24*4, len(img.Pixels))
	}
	if got := img.Pixels[:4]; !bytes.Equal(got, []byte{9, 8, 7, 6}) {
		t.Fatalf("expected raw file pixel bytes preserved, got %v", got)
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus")
	if err := os.WriteFile(path, []byte("not a cursor file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeFile(path, 24); err == nil {
		t.Fatalf("expected error for bad magic")
	}
}

func TestDecodeRejectsOutOfBoundsHotspot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken")
	writeCursorFile(t, path, []testImage{
		{nominal: 8, width: 8, height: 8, xhot: 8, yhot: 0},
	})
	if _, err := DecodeFile(path, 8); err == nil {
		t.Fatalf("expected error for out-of-bounds hotspot")
	}
}

// writeTheme lays out dir/<theme>/cursors plus an optional index.theme.
func writeTheme(t *testing.T, root, theme, inherits string, cursors map[string][]testImage) {
	t.Helper()
	dir := filepath.Join(root, theme, "cursors")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, images := range cursors {
		writeCursorFile(t, filepath.Join(dir, name), images)
	}
	if inherits != "" {
		index := "[Icon Theme]\nInherits=" + inherits + "\n"
		if err := os.WriteFile(filepath.Join(root, theme, "index.theme"), []byte(index), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestHandleLoadCursor(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XCURSOR_PATH", root)
	writeTheme(t, root, "mytheme", "", map[string][]testImage{
		"left_ptr": {{nominal: 24, width: 24, height: 24, xhot: 1, yhot: 2}},
	})

	h, err := NewHandle(1080, Database{Theme: "mytheme", Size: 24})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, err := h.LoadCursor("left_ptr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.HotX != 1 || img.HotY != 2 {
		t.Fatalf("unexpected hotspot (%d,%d)", img.HotX, img.HotY)
	}

	if _, err := h.LoadCursor("no-such-cursor"); err == nil {
		t.Fatalf("expected error for missing cursor name")
	}
}

func TestHandleFollowsInherits(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XCURSOR_PATH", root)
	writeTheme(t, root, "child", "parent", map[string][]testImage{})
	writeTheme(t, root, "parent", "child", map[string][]testImage{ // cycle on purpose
		"watch": {{nominal: 24, width: 24, height: 24}},
	})

	h, err := NewHandle(1080, Database{Theme: "child", Size: 24})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := h.LoadCursor("watch"); err != nil {
		t.Fatalf("expected inherited lookup to succeed, got %v", err)
	}
}

func TestNewHandleUnknownTheme(t *testing.T) {
	t.Setenv("XCURSOR_PATH", t.TempDir())
	if _, err := NewHandle(1080, Database{Theme: "missing"}); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestResolveSize(t *testing.T) {
	t.Setenv("XCURSOR_SIZE", "")
	if got := resolveSize(32, 1080); got != 32 {
		t.Fatalf("configured size should win, got %d", got)
	}
	t.Setenv("XCURSOR_SIZE", "40")
	if got := resolveSize(0, 1080); got != 40 {
		t.Fatalf("env size should win, got %d", got)
	}
	t.Setenv("XCURSOR_SIZE", "")
	if got := resolveSize(0, 1080); got != 22 {
		t.Fatalf("expected height/48 heuristic (22), got %d", got)
	}
	if got := resolveSize(0, 200); got != 16 {
		t.Fatalf("expected floor of 16, got %d", got)
	}
}
