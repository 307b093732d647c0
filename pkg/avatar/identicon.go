package avatar

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	identiconCells      = 5
	identiconBackground = "#f0f0f0"
)

// Identicon draws a horizontally mirrored 5x5 grid whose cells and hue come
// from the MD5 of the seed. The palette is ignored.
type Identicon struct {
	// Size is the viewBox edge. Zero means 80.
	Size int
}

// Generate renders the identicon SVG for seed.
func (g Identicon) Generate(seed string, _ []string) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = defaultSVGSize
	}
	sum := md5.Sum([]byte(seed))

	hue := float64(uint16(sum[0])<<8|uint16(sum[1])) / 65535 * 360
	fg := colorful.Hsl(hue, 0.55, 0.55).Hex()

	cell := size / (identiconCells + 1)
	margin := (size - cell*identiconCells) / 2

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, size, size, size, size)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, size, size, identiconBackground)
	half := (identiconCells + 1) / 2
	for row := 0; row < identiconCells; row++ {
		for col := 0; col < half; col++ {
			if sum[1+row*half+col]%2 != 0 {
				continue
			}
			for _, c := range []int{col, identiconCells - 1 - col} {
				fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
					margin+c*cell, margin+row*cell, cell, cell, fg)
				if c == identiconCells-1-c {
					break
				}
			}
		}
	}
	b.WriteString(`</svg>`)
	return []byte(b.String()), nil
}
