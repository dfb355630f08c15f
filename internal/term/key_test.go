package term

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Key
		wantErr bool
	}{
		{"single letter", "q", Key{Type: KeyRune, Rune: 'q'}, false},
		{"uppercase letter", "Q", Key{Type: KeyRune, Rune: 'Q'}, false},
		{"escape", "esc", Key{Type: KeyEsc}, false},
		{"escape long form", "escape", Key{Type: KeyEsc}, false},
		{"ctrl c", "ctrl+c", Key{Type: KeyCtrlC}, false},
		{"enter", "enter", Key{Type: KeyEnter}, false},
		{"arrow", "up", Key{Type: KeyUp}, false},
		{"padded", "  q  ", Key{Type: KeyRune, Rune: 'q'}, false},
		{"multi rune rejected", "quit", Key{}, true},
		{"empty rejected", "", Key{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyStringRoundTrip(t *testing.T) {
	for _, spelling := range []string{"q", "enter", "esc", "ctrl+c", "up", "down", "left", "right"} {
		key, err := ParseKey(spelling)
		require.NoError(t, err)
		assert.Equal(t, spelling, key.String())
	}
}

func TestReadKeyRunes(t *testing.T) {
	d := NewKeyDecoder(strings.NewReader("qx"))

	key, err := d.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, Key{Type: KeyRune, Rune: 'q'}, key)

	key, err = d.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, Key{Type: KeyRune, Rune: 'x'}, key)

	_, err = d.ReadKey()
	assert.Equal(t, io.EOF, err, "stream end must surface as an error")
}

func TestReadKeyControl(t *testing.T) {
	d := NewKeyDecoder(strings.NewReader("\x03\r"))

	key, err := d.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, KeyCtrlC, key.Type)

	key, err = d.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, KeyEnter, key.Type)
}

func TestReadKeyArrowSequences(t *testing.T) {
	d := NewKeyDecoder(strings.NewReader("\x1b[A\x1b[B\x1b[C\x1b[D"))

	expected := []KeyType{KeyUp, KeyDown, KeyRight, KeyLeft}
	for _, want := range expected {
		key, err := d.ReadKey()
		require.NoError(t, err)
		assert.Equal(t, want, key.Type)
	}
}

func TestReadKeyBareEscape(t *testing.T) {
	d := NewKeyDecoder(strings.NewReader("\x1b"))

	key, err := d.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, KeyEsc, key.Type)
}

func TestReadKeyUTF8(t *testing.T) {
	d := NewKeyDecoder(strings.NewReader("é"))

	key, err := d.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, Key{Type: KeyRune, Rune: 'é'}, key)
}
