package convert

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	_ "golang.org/x/image/webp"

	"github.com/kernel/kit/pkg/palette"
)

const (
	FormatPNG  = "image/png"
	FormatJPEG = "image/jpeg"

	jpegQuality   = 92
	maxImageBytes = 32 << 20
)

// PaletteExtractor returns an image's dominant colors, most prominent first.
type PaletteExtractor interface {
	Extract(img image.Image) ([]color.RGBA, error)
}

// HTTPDoer is the subset of *http.Client used to fetch images.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Images fetches and decodes remote images. It is safe for concurrent use.
type Images struct {
	http    HTTPDoer
	palette PaletteExtractor
	log     zerolog.Logger
}

// ImagesOption configures Images.
type ImagesOption func(*Images)

// WithHTTPClient sets the client used to fetch images.
func WithHTTPClient(c HTTPDoer) ImagesOption {
	return func(i *Images) { i.http = c }
}

// WithPaletteExtractor replaces the default palette extractor.
func WithPaletteExtractor(p PaletteExtractor) ImagesOption {
	return func(i *Images) { i.palette = p }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) ImagesOption {
	return func(i *Images) { i.log = l }
}

// NewImages returns an Images using http.DefaultClient and palette.Default
// unless overridden.
func NewImages(opts ...ImagesOption) *Images {
	i := &Images{
		http:    http.DefaultClient,
		palette: palette.Default,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

var defaultImages = NewImages()

// ImageToColor is (*Images).AccentColor on a default Images.
func ImageToColor(ctx context.Context, src string, dark bool) (string, bool, error) {
	return defaultImages.AccentColor(ctx, src, dark)
}

// ToDataURL is (*Images).ToDataURL on a default Images.
func ToDataURL(ctx context.Context, src, format string) (string, error) {
	return defaultImages.ToDataURL(ctx, src, format)
}

// AccentColor returns the hex code (no '#') of the most prominent palette
// color whose darkness matches dark. ok is false when no palette color
// qualifies, including images with no usable colors at all.
func (i *Images) AccentColor(ctx context.Context, src string, dark bool) (hex string, ok bool, err error) {
	img, err := i.Fetch(ctx, src)
	if err != nil {
		return "", false, err
	}
	colors, err := i.palette.Extract(img)
	if errors.Is(err, palette.ErrNoColors) {
		i.log.Debug().Str("src", src).Msg("image has no usable colors")
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to extract palette: %w", err)
	}
	for _, c := range colors {
		if RGBIsDark(c.R, c.G, c.B) == dark {
			return RGBToHex(c.R, c.G, c.B), true, nil
		}
	}
	i.log.Debug().Str("src", src).Bool("dark", dark).Int("palette", len(colors)).Msg("no palette color matched")
	return "", false, nil
}

// ToDataURL re-encodes the image at src and returns it as a data URL.
// format is FormatPNG or FormatJPEG; anything else falls back to PNG.
func (i *Images) ToDataURL(ctx context.Context, src, format string) (string, error) {
	img, err := i.Fetch(ctx, src)
	if err != nil {
		return "", err
	}
	return EncodeDataURL(img, format)
}

// EncodeDataURL encodes img as a base64 data URL in the given format.
func EncodeDataURL(img image.Image, format string) (string, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return "", fmt.Errorf("failed to encode jpeg: %w", err)
		}
	default:
		format = FormatPNG
		if err := png.Encode(&buf, img); err != nil {
			return "", fmt.Errorf("failed to encode png: %w", err)
		}
	}
	return BytesToDataURL(format, buf.Bytes()), nil
}

// BytesToDataURL wraps raw bytes of the given MIME type in a data URL.
func BytesToDataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Fetch loads and decodes the image at src, which may be an http(s) URL or
// a base64 data URL.
func (i *Images) Fetch(ctx context.Context, src string) (image.Image, error) {
	if rest, ok := strings.CutPrefix(src, "data:"); ok {
		_, payload, found := strings.Cut(rest, ";base64,")
		if !found {
			return nil, fmt.Errorf("%w: only base64 data URLs are supported", ErrFetchImage)
		}
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetchImage, err)
		}
		return decodeImage(bytes.NewReader(data))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchImage, err)
	}
	resp, err := i.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchImage, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetchImage, src, resp.Status)
	}
	i.log.Debug().Str("src", src).Str("content_type", resp.Header.Get("Content-Type")).Msg("fetched image")
	return decodeImage(io.LimitReader(resp.Body, maxImageBytes))
}

func decodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
