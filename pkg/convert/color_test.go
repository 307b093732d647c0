package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToHex(t *testing.T) {
	assert.Equal(t, "00", ChannelToHex(0))
	assert.Equal(t, "0f", ChannelToHex(15))
	assert.Equal(t, "ff", ChannelToHex(255))
	assert.Equal(t, "1a2b3c", RGBToHex(0x1a, 0x2b, 0x3c))
}

func TestRGBIsDark(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		dark    bool
	}{
		{"black", 0, 0, 0, true},
		{"white", 255, 255, 255, false},
		{"navy", 0, 0, 128, true},
		{"yellow", 255, 255, 0, false},
		{"mid gray 149", 149, 149, 149, true},
		{"mid gray 150", 150, 150, 150, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.dark, RGBIsDark(tt.r, tt.g, tt.b))
		})
	}
}

func TestRGBIsDark_MatchesBrightnessEverywhere(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				hsp := math.Sqrt(0.299*float64(r*r) + 0.587*float64(g*g) + 0.114*float64(b*b))
				assert.Equal(t, hsp < 150, RGBIsDark(uint8(r), uint8(g), uint8(b)), "%d,%d,%d", r, g, b)
			}
		}
	}
}
