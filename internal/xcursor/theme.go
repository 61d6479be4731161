package xcursor

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Database carries the configured cursor theme selection. Zero fields fall
// back to the XCURSOR_THEME / XCURSOR_SIZE environment and then to defaults.
type Database struct {
	Theme string
	Size  int
}

// Handle is a resolved theme: an ordered list of cursors/ directories
// (the theme's own, then its inherited themes') plus a nominal size.
type Handle struct {
	theme string
	size  int
	dirs  []string
}

var defaultLibraryPaths = []string{
	"~/.icons",
	"/usr/share/icons",
	"/usr/share/pixmaps",
	"~/.cursors",
	"/usr/share/cursors/xorg-x11",
	"/usr/X11R6/lib/X11/icons",
}

func libraryPaths() []string {
	if v, ok := os.LookupEnv("XCURSOR_PATH"); ok {
		return filepath.SplitList(v)
	}

	v, ok := os.LookupEnv("XDG_DATA_HOME")
	if !ok || !filepath.IsAbs(v) {
		v = "~/.local/share"
	}
	paths := append([]string{filepath.Join(v, "icons")}, defaultLibraryPaths...)
	for i, p := range paths {
		paths[i] = expandHome(p)
	}
	return paths
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// NewHandle resolves the theme named by db against the cursor library paths.
// screenHeight feeds the default-size heuristic when neither db nor the
// environment names a size.
func NewHandle(screenHeight int, db Database) (*Handle, error) {
	theme := db.Theme
	if theme == "" {
		theme = os.Getenv("XCURSOR_THEME")
	}
	if theme == "" {
		theme = "default"
	}

	h := &Handle{
		theme: theme,
		size:  resolveSize(db.Size, screenHeight),
	}
	seen := map[string]bool{}
	h.collectDirs(theme, seen)
	if len(h.dirs) == 0 {
		return nil, fmt.Errorf("cursor theme %q not found", theme)
	}
	return h, nil
}

// Size reports the nominal cursor size the handle selects by.
func (h *Handle) Size() int {
	return h.size
}

// Theme reports the theme name the handle was opened with.
func (h *Handle) Theme() string {
	return h.theme
}

func resolveSize(configured, screenHeight int) int {
	if configured > 0 {
		return configured
	}
	if v := os.Getenv("XCURSOR_SIZE"); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil && n > 0 {
			return n
		}
	}
	// libXcursor's display heuristic.
	size := screenHeight / 48
	if size < 16 {
		size = 16
	}
	return size
}

// collectDirs gathers the cursors/ directories for theme and everything it
// inherits, depth-first, skipping themes already visited.
func (h *Handle) collectDirs(theme string, seen map[string]bool) {
	if seen[theme] {
		return
	}
	seen[theme] = true

	for _, path := range libraryPaths() {
		base := filepath.Join(path, theme)
		cursors := filepath.Join(base, "cursors")
		if fi, err := os.Stat(cursors); err == nil && fi.IsDir() {
			h.dirs = append(h.dirs, cursors)
		}
		for _, inherited := range themeInherits(filepath.Join(base, "index.theme")) {
			h.collectDirs(inherited, seen)
		}
	}
}

// themeInherits reads the Inherits line of an index.theme file. A missing or
// malformed file inherits nothing.
func themeInherits(path string) []string {
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()

	s := bufio.NewScanner(file)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if !strings.HasPrefix(line, "Inherits") {
			continue
		}
		_, after, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields := strings.FieldsFunc(after, func(c rune) bool {
			return c == ':' || c == ','
		})
		var inherits []string
		for _, f := range fields {
			if f = strings.TrimSpace(f); f != "" {
				inherits = append(inherits, f)
			}
		}
		return inherits
	}
	return nil
}

// LoadCursor finds name in the theme chain and decodes its best-size image.
func (h *Handle) LoadCursor(name string) (*Image, error) {
	for _, dir := range h.dirs {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return DecodeFile(path, h.size)
	}
	return nil, fmt.Errorf("cursor %q not found in theme %q", name, h.theme)
}
