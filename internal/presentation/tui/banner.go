package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner for the HTTP server to w.
func PrintBanner(w io.Writer, version, addr string) {
	out := termenv.NewOutput(w)
	// Snow-to-pine gradient
	lines := []struct {
		text  string
		color string
	}{
		{`  ___         _        _    `, "#e0f2fe"},
		{` | _ \___ _ _| |_ __ _| |___`, "#bae6fd"},
		{` |   / -_) ' \  _/ _' | (_-<`, "#7dd3fc"},
		{` |_|_\___|_||_\__\__,_|_/__/`, "#34d399"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, out.String(fmt.Sprintf(" v%s listening on %s", version, addr)).Faint())
	fmt.Fprintln(w)
}
