// Package palette extracts the dominant colors of an image.
package palette

import (
	"errors"
	"image"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	defaultMaxColors = 10
	defaultQuality   = 10
	// Buckets closer than this in CIE Lab are reported as one color.
	defaultMergeDistance = 0.08
)

// ErrNoColors is returned when no pixel survives filtering, e.g. for a fully
// transparent or pure white image.
var ErrNoColors = errors.New("image has no usable colors")

// Extractor quantizes an image into buckets and reports the most populated
// ones, most common first.
type Extractor struct {
	// MaxColors caps the palette length. Zero means 10.
	MaxColors int
	// Quality samples every Nth pixel. 1 is exact; zero means 10.
	Quality int
	// MergeDistance is the Lab distance under which buckets merge. Zero means 0.08.
	MergeDistance float64
}

// Default is an Extractor with default settings.
var Default = Extractor{}

type bucket struct {
	r, g, b uint64
	n       uint64
}

func (b bucket) average() colorful.Color {
	return colorful.Color{
		R: float64(b.r) / float64(b.n) / 255,
		G: float64(b.g) / float64(b.n) / 255,
		B: float64(b.b) / float64(b.n) / 255,
	}
}

// Extract returns up to MaxColors opaque colors ordered by how many sampled
// pixels they cover. Pixels that are mostly transparent or nearly white are
// ignored.
func (e Extractor) Extract(img image.Image) ([]color.RGBA, error) {
	maxColors := e.MaxColors
	if maxColors <= 0 {
		maxColors = defaultMaxColors
	}
	quality := e.Quality
	if quality <= 0 {
		quality = defaultQuality
	}
	mergeDistance := e.MergeDistance
	if mergeDistance <= 0 {
		mergeDistance = defaultMergeDistance
	}

	buckets := make(map[uint16]*bucket)
	bounds := img.Bounds()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i++
			if (i-1)%quality != 0 {
				continue
			}
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A < 125 || (c.R > 250 && c.G > 250 && c.B > 250) {
				continue
			}
			key := uint16(c.R>>3)<<10 | uint16(c.G>>3)<<5 | uint16(c.B>>3)
			bk, ok := buckets[key]
			if !ok {
				bk = &bucket{}
				buckets[key] = bk
			}
			bk.r += uint64(c.R)
			bk.g += uint64(c.G)
			bk.b += uint64(c.B)
			bk.n++
		}
	}
	if len(buckets) == 0 {
		return nil, ErrNoColors
	}

	sorted := make([]bucket, 0, len(buckets))
	for _, bk := range buckets {
		sorted = append(sorted, *bk)
	}
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].n != sorted[b].n {
			return sorted[a].n > sorted[b].n
		}
		ra, ga, ba := sorted[a].average().RGB255()
		rb, gb, bb := sorted[b].average().RGB255()
		return uint32(ra)<<16|uint32(ga)<<8|uint32(ba) < uint32(rb)<<16|uint32(gb)<<8|uint32(bb)
	})

	merged := make([]bucket, 0, maxColors)
	for _, bk := range sorted {
		avg := bk.average()
		absorbed := false
		for j := range merged {
			if merged[j].average().DistanceLab(avg) < mergeDistance {
				merged[j].r += bk.r
				merged[j].g += bk.g
				merged[j].b += bk.b
				merged[j].n += bk.n
				absorbed = true
				break
			}
		}
		if !absorbed && len(merged) < maxColors {
			merged = append(merged, bk)
		}
	}

	sort.SliceStable(merged, func(a, b int) bool { return merged[a].n > merged[b].n })

	out := make([]color.RGBA, len(merged))
	for j, bk := range merged {
		r, g, b := bk.average().RGB255()
		out[j] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out, nil
}
