package avatar

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// PNGRasterizer renders SVG to a square PNG.
type PNGRasterizer struct {
	// Size is the output edge in pixels. Zero means 80.
	Size int
}

// Rasterize implements Rasterizer.
func (p PNGRasterizer) Rasterize(svg []byte) ([]byte, error) {
	size := p.Size
	if size <= 0 {
		size = defaultSVGSize
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
