package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gsys/gsys/internal/errors"
)

// KeyType identifies the kind of key press decoded from the raw stream.
type KeyType int

const (
	KeyRune KeyType = iota
	KeyEnter
	KeyEsc
	KeyCtrlC
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Key is a single decoded key press. Rune is only meaningful for KeyRune.
type Key struct {
	Type KeyType
	Rune rune
}

// String returns the configuration spelling of the key ("q", "esc", ...).
func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		return string(k.Rune)
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	case KeyCtrlC:
		return "ctrl+c"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseKey converts a configuration spelling into a Key.
func ParseKey(s string) (Key, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enter", "return":
		return Key{Type: KeyEnter}, nil
	case "esc", "escape":
		return Key{Type: KeyEsc}, nil
	case "ctrl+c":
		return Key{Type: KeyCtrlC}, nil
	case "up":
		return Key{Type: KeyUp}, nil
	case "down":
		return Key{Type: KeyDown}, nil
	case "left":
		return Key{Type: KeyLeft}, nil
	case "right":
		return Key{Type: KeyRight}, nil
	}

	runes := []rune(strings.TrimSpace(s))
	if len(runes) != 1 {
		return Key{}, errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' is not a recognized key", s),
			"Use a single character, or one of: enter, esc, ctrl+c, up, down, left, right")
	}
	return Key{Type: KeyRune, Rune: runes[0]}, nil
}

// KeyDecoder reads raw bytes and decodes key presses, including the CSI
// arrow-key sequences emitted in raw mode.
type KeyDecoder struct {
	r *bufio.Reader
}

// NewKeyDecoder wraps a raw input stream, typically stdin in raw mode.
func NewKeyDecoder(r io.Reader) *KeyDecoder {
	return &KeyDecoder{r: bufio.NewReader(r)}
}

// ReadKey blocks until one key press is decoded or the stream ends.
func (d *KeyDecoder) ReadKey() (Key, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch b {
	case 0x03:
		return Key{Type: KeyCtrlC}, nil
	case '\r', '\n':
		return Key{Type: KeyEnter}, nil
	case 0x1b:
		return d.readEscape()
	}

	if b < 0x80 {
		return Key{Type: KeyRune, Rune: rune(b)}, nil
	}

	// Multi-byte rune: put the lead byte back and decode as UTF-8.
	if err := d.r.UnreadByte(); err != nil {
		return Key{}, err
	}
	r, _, err := d.r.ReadRune()
	if err != nil {
		return Key{}, err
	}
	return Key{Type: KeyRune, Rune: r}, nil
}

// readEscape distinguishes a bare ESC from a CSI arrow sequence. A lone
// ESC arrives with nothing buffered behind it.
func (d *KeyDecoder) readEscape() (Key, error) {
	if d.r.Buffered() == 0 {
		return Key{Type: KeyEsc}, nil
	}

	b, err := d.r.ReadByte()
	if err != nil {
		return Key{Type: KeyEsc}, nil
	}
	if b != '[' && b != 'O' {
		// Not a CSI sequence; treat the ESC as standalone and re-decode
		// the byte we consumed on the next call.
		_ = d.r.UnreadByte()
		return Key{Type: KeyEsc}, nil
	}

	final, err := d.r.ReadByte()
	if err != nil {
		return Key{Type: KeyEsc}, nil
	}
	switch final {
	case 'A':
		return Key{Type: KeyUp}, nil
	case 'B':
		return Key{Type: KeyDown}, nil
	case 'C':
		return Key{Type: KeyRight}, nil
	case 'D':
		return Key{Type: KeyLeft}, nil
	}
	return Key{Type: KeyEsc}, nil
}
