package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/wmkit/cursorkit/internal/config"
	"github.com/wmkit/cursorkit/internal/cursor"
	"github.com/wmkit/cursorkit/internal/icon"
	"github.com/wmkit/cursorkit/internal/tui"
	"github.com/wmkit/cursorkit/internal/x11"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "set":
		os.Exit(runSet(os.Args[2:]))
	case "hide":
		os.Exit(runHide(os.Args[2:]))
	case "list":
		os.Exit(runList())
	case "demo":
		os.Exit(runDemo())
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cursorkit <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  set <window-id> <icon>   Set a named cursor on a window")
	fmt.Fprintln(w, "  hide <window-id>         Hide the cursor over a window")
	fmt.Fprintln(w, "  list                     List known icon names")
	fmt.Fprintln(w, "  demo                     Open a demo window with an interactive icon picker")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Window ids accept decimal or 0x-prefixed hex, as printed by xwininfo.")
}

// newManager connects to the display and wires a cursor manager with the
// configured theme.
func newManager() (*x11.Conn, *cursor.Manager, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	conn, err := x11.NewConn()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to X server: %w", err)
	}
	return conn, cursor.NewManager(conn, cfg.Database()), cfg, nil
}

func parseWindowID(s string) (xproto.Window, error) {
	id, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q", s)
	}
	return xproto.Window(id), nil
}

func runSet(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: cursorkit set <window-id> <icon>")
		return 2
	}
	win, err := parseWindowID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	sel, ok := icon.FromName(args[1])
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown icon %q; see 'cursorkit list'\n", args[1])
		return 2
	}

	conn, mgr, _, err := newManager()
	if err != nil {
		log.Fatalf("cursorkit: %v", err)
	}
	defer conn.Close()

	if err := mgr.SetNamedCursor(win, sel); err != nil {
		log.Fatalf("cursorkit: %v", err)
	}
	return 0
}

func runHide(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: cursorkit hide <window-id>")
		return 2
	}
	win, err := parseWindowID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	conn, mgr, _, err := newManager()
	if err != nil {
		log.Fatalf("cursorkit: %v", err)
	}
	defer conn.Close()

	if err := mgr.SetNamedCursor(win, icon.None); err != nil {
		log.Fatalf("cursorkit: %v", err)
	}
	return 0
}

func runList() int {
	for _, c := range icon.All() {
		fmt.Println(c.Name())
	}
	return 0
}

func runDemo() int {
	conn, mgr, cfg, err := newManager()
	if err != nil {
		log.Fatalf("cursorkit: %v", err)
	}
	defer conn.Close()

	win, err := conn.CreateWindow("cursorkit demo", 400, 300)
	if err != nil {
		log.Fatalf("cursorkit: %v", err)
	}
	if err := mgr.SetNamedCursor(win, cfg.Icon()); err != nil {
		log.Fatalf("cursorkit: %v", err)
	}

	// The X event loop keeps the window mapped while the picker runs in
	// the terminal.
	go conn.EventLoop()

	err = tui.Run(func(sel icon.Cursor) error {
		return mgr.SetNamedCursor(win, sel)
	})
	if err != nil {
		log.Fatalf("cursorkit: %v", err)
	}
	return 0
}
