package convert

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kernel/kit/pkg/palette"
)

type fakePalette struct {
	colors []color.RGBA
	err    error
}

func (f fakePalette) Extract(image.Image) ([]color.RGBA, error) {
	return f.colors, f.err
}

func pngBytes(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func imageServer(t *testing.T, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAccentColor_PicksFirstMatchingDarkness(t *testing.T) {
	srv := imageServer(t, pngBytes(t, color.White))
	imgs := NewImages(WithPaletteExtractor(fakePalette{colors: []color.RGBA{
		{R: 250, G: 240, B: 200, A: 255},
		{R: 20, G: 30, B: 40, A: 255},
		{R: 10, G: 10, B: 10, A: 255},
	}}))

	hex, ok, err := imgs.AccentColor(context.Background(), srv.URL+"/logo.png", true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "141e28", hex)

	hex, ok, err = imgs.AccentColor(context.Background(), srv.URL+"/logo.png", false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "faf0c8", hex)
}

func TestAccentColor_NoMatch(t *testing.T) {
	srv := imageServer(t, pngBytes(t, color.White))
	imgs := NewImages(WithPaletteExtractor(fakePalette{colors: []color.RGBA{{R: 255, G: 255, B: 255, A: 255}}}))

	_, ok, err := imgs.AccentColor(context.Background(), srv.URL+"/logo.png", true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccentColor_NoUsableColors(t *testing.T) {
	for _, c := range []color.Color{color.White, color.Transparent} {
		srv := imageServer(t, pngBytes(t, c))

		hex, ok, err := NewImages().AccentColor(context.Background(), srv.URL+"/blank.png", true)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, hex)
	}

	srv := imageServer(t, pngBytes(t, color.Black))
	_, ok, err := NewImages(WithPaletteExtractor(fakePalette{err: palette.ErrNoColors})).AccentColor(context.Background(), srv.URL+"/a.png", false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccentColor_DefaultExtractor(t *testing.T) {
	srv := imageServer(t, pngBytes(t, color.RGBA{R: 12, G: 34, B: 56, A: 255}))

	hex, ok, err := NewImages().AccentColor(context.Background(), srv.URL+"/logo.png", true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "0c2238", hex)
}

func TestAccentColor_Errors(t *testing.T) {
	srv := imageServer(t, []byte("not an image"))

	_, _, err := NewImages().AccentColor(context.Background(), srv.URL+"/missing.png", true)
	assert.ErrorIs(t, err, ErrFetchImage)

	_, _, err = NewImages().AccentColor(context.Background(), srv.URL+"/garbage.png", true)
	assert.ErrorContains(t, err, "failed to decode image")

	boom := errors.New("boom")
	okSrv := imageServer(t, pngBytes(t, color.Black))
	_, _, err = NewImages(WithPaletteExtractor(fakePalette{err: boom})).AccentColor(context.Background(), okSrv.URL+"/a.png", true)
	assert.ErrorIs(t, err, boom)
}

func TestToDataURL(t *testing.T) {
	srv := imageServer(t, pngBytes(t, color.RGBA{R: 255, A: 255}))

	url, err := NewImages().ToDataURL(context.Background(), srv.URL+"/red.png", "")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/png;base64,"))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	r, _, _, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)

	jpg, err := NewImages().ToDataURL(context.Background(), url, FormatJPEG)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(jpg, "data:image/jpeg;base64,"))
}
