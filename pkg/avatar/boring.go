package avatar

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/lucasb-eyer/go-colorful"
)

const defaultSVGSize = 80

// Geometric draws a Bauhaus-style avatar in the manner of BoringAvatars: a
// background plus a square, a circle and a triangle, each colored, sized
// and placed from a hash of the seed.
type Geometric struct {
	// Size is the viewBox edge. Zero means 80.
	Size int
}

// hashCode is the 31-multiplier string hash over UTF-16 code units.
func hashCode(s string) int {
	var h int32
	for _, cu := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(cu)
	}
	if h < 0 {
		return -int(h)
	}
	return int(h)
}

// digit returns the pos-th decimal digit of n counting from the right.
func digit(n, pos int) int {
	for ; pos > 0; pos-- {
		n /= 10
	}
	return n % 10
}

// unit maps n into [0, span); an even digit at pos flips the sign.
func unit(n, span, pos int) int {
	if span <= 0 {
		return 0
	}
	v := n % span
	if pos > 0 && digit(n, pos)%2 == 0 {
		return -v
	}
	return v
}

func validPalette(palette []string) ([]string, error) {
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}
	out := make([]string, len(palette))
	for i, c := range palette {
		parsed, err := colorful.Hex(c)
		if err != nil {
			return nil, fmt.Errorf("invalid palette color %q: %w", c, err)
		}
		out[i] = parsed.Hex()
	}
	return out, nil
}

// Generate renders the avatar SVG for seed.
func (g Geometric) Generate(seed string, palette []string) ([]byte, error) {
	colors, err := validPalette(palette)
	if err != nil {
		return nil, err
	}
	size := g.Size
	if size <= 0 {
		size = defaultSVGSize
	}
	h := hashCode(seed)
	color := func(i int) string { return colors[(h+i)%len(colors)] }
	center := size / 2

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, size, size, size, size)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, size, size, color(0))

	sq := size/4 + unit(h, size/4, 0)
	sx := center - sq/2 + unit(h*2, size/3, 1)
	sy := center - sq/2 + unit(h*2, size/3, 2)
	fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`, sx, sy, sq, sq, color(1))

	r := size/8 + unit(h*3, size/8, 0)
	cx := center + unit(h*3, size/3, 1)
	cy := center + unit(h*3, size/3, 2)
	fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="%d" fill="%s"/>`, cx, cy, r, color(2))

	t := size/5 + unit(h*4, size/6, 0)
	tx := center + unit(h*4, size/3, 1)
	ty := center + unit(h*4, size/3, 2)
	fmt.Fprintf(&b, `<polygon points="%d,%d %d,%d %d,%d" fill="%s"/>`,
		tx, ty-t, tx-t, ty+t, tx+t, ty+t, color(3))

	b.WriteString(`</svg>`)
	return []byte(b.String()), nil
}
