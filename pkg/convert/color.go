package convert

import (
	"fmt"
	"math"
)

// darkThreshold is the HSP brightness below which a color counts as dark.
const darkThreshold = 150

// ChannelToHex formats one 0-255 channel as two lowercase hex digits.
func ChannelToHex(c uint8) string {
	return fmt.Sprintf("%02x", c)
}

// RGBToHex formats a color as six hex digits without a leading '#'.
func RGBToHex(r, g, b uint8) string {
	return ChannelToHex(r) + ChannelToHex(g) + ChannelToHex(b)
}

// Brightness is the HSP perceived brightness, sqrt(.299r² + .587g² + .114b²).
func Brightness(r, g, b uint8) float64 {
	fr, fg, fb := float64(r), float64(g), float64(b)
	return math.Sqrt(0.299*fr*fr + 0.587*fg*fg + 0.114*fb*fb)
}

// RGBIsDark reports whether a color is dark enough to carry light text.
// A brightness of exactly 150 is light.
func RGBIsDark(r, g, b uint8) bool {
	return Brightness(r, g, b) < darkThreshold
}
