// Package term owns the raw-mode terminal used by the graphing mode: a
// scoped alternate-screen resource and a decoder for raw key presses.
package term

import (
	"fmt"
	"os"
	"strings"

	"github.com/gsys/gsys/internal/errors"
	xterm "golang.org/x/term"
)

// Escape sequences for the alternate screen buffer and cursor visibility.
const (
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	cursorHome     = "\x1b[H"
	clearBelow     = "\x1b[0J"
)

// Screen is the scoped raw-terminal resource for full-screen drawing.
// Open acquires raw mode and the alternate buffer; Close must run on every
// exit path so the host terminal is never left broken.
type Screen struct {
	in    *os.File
	out   *os.File
	state *xterm.State
}

// Open switches the output terminal to the alternate screen buffer and puts
// the input terminal into raw mode. Fails with a TERM error when stdout is
// not a terminal or raw mode cannot be acquired.
func Open(in, out *os.File) (*Screen, error) {
	if !xterm.IsTerminal(int(out.Fd())) {
		return nil, errors.New(errors.ErrTerm,
			"Standard output is not a terminal",
			"Run the graph mode from an interactive terminal, not a pipe")
	}

	state, err := xterm.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrTerm,
			"Cannot put the terminal into raw mode",
			"Check that stdin is attached to a terminal")
	}

	fmt.Fprint(out, enterAltScreen+hideCursor)

	return &Screen{in: in, out: out, state: state}, nil
}

// Close restores the main screen buffer, cursor, and cooked input mode.
// Safe to call exactly once; deferred by the render loop.
func (s *Screen) Close() {
	fmt.Fprint(s.out, showCursor+leaveAltScreen)
	if s.state != nil {
		_ = xterm.Restore(int(s.in.Fd()), s.state)
		s.state = nil
	}
}

// Size returns the terminal dimensions, defaulting to 80x24 when the size
// cannot be queried.
func (s *Screen) Size() (width, height int) {
	width, height, err := xterm.GetSize(int(s.out.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return 80, 24
	}
	return width, height
}

// Draw repaints the whole frame from the top-left corner. Raw mode leaves
// the terminal without output post-processing, so newlines are expanded to
// CRLF here.
func (s *Screen) Draw(frame string) {
	fmt.Fprint(s.out, cursorHome)
	fmt.Fprint(s.out, strings.ReplaceAll(frame, "\n", "\r\n"))
	fmt.Fprint(s.out, clearBelow)
}
