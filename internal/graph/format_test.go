package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHz(t *testing.T) {
	tests := []struct {
		name string
		hz   float64
		want string
	}{
		{"zero", 0, "0 Hz"},
		{"sub kilo", 999, "999 Hz"},
		{"kilo", 1500, "1.50 kHz"},
		{"mega", 2_400_000, "2.40 MHz"},
		{"giga", 3_600_000_000, "3.60 GHz"},
		{"tera caps the scale", 5e12, "5.00 THz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHz(tt.hz))
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes float64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"bytes", 512, "512 B"},
		{"kibibytes", 2048, "2.0 KiB"},
		{"mebibytes", 5 * 1024 * 1024, "5.0 MiB"},
		{"gibibytes", 1 << 30, "1.0 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "2.0 KiB/s", FormatRate(2048))
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "30s", FormatSeconds(30))
	assert.Equal(t, "0s", FormatSeconds(0.2))
}
