package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/kernel/kit/pkg/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type FakeImageService struct {
	AccentColorFunc func(ctx context.Context, src string, dark bool) (string, bool, error)
	ToDataURLFunc   func(ctx context.Context, src, format string) (string, error)
}

func (f *FakeImageService) AccentColor(ctx context.Context, src string, dark bool) (string, bool, error) {
	if f.AccentColorFunc != nil {
		return f.AccentColorFunc(ctx, src, dark)
	}
	return "", false, nil
}

func (f *FakeImageService) ToDataURL(ctx context.Context, src, format string) (string, error) {
	if f.ToDataURLFunc != nil {
		return f.ToDataURLFunc(ctx, src, format)
	}
	return "data:" + format + ";base64,", nil
}

func TestColor(t *testing.T) {
	var gotDark []bool
	fake := &FakeImageService{
		AccentColorFunc: func(ctx context.Context, src string, dark bool) (string, bool, error) {
			gotDark = append(gotDark, dark)
			if dark {
				return "1a2b3c", true, nil
			}
			return "", false, nil
		},
	}
	c := ImagesCmd{images: fake}

	t.Run("dark by default", func(t *testing.T) {
		setupStdoutCapture(t)
		require.NoError(t, c.Color(context.Background(), ColorInput{Src: "https://img.test/a.png"}))
		assert.Contains(t, outBuf.String(), "#1a2b3c")
		assert.True(t, gotDark[len(gotDark)-1])
	})

	t.Run("light not found", func(t *testing.T) {
		setupStdoutCapture(t)
		require.NoError(t, c.Color(context.Background(), ColorInput{Src: "https://img.test/a.png", Light: true}))
		assert.Contains(t, outBuf.String(), "No light color found")
		assert.False(t, gotDark[len(gotDark)-1])
	})

	t.Run("json", func(t *testing.T) {
		setupStdoutCapture(t)
		read := captureStdout(t)
		require.NoError(t, c.Color(context.Background(), ColorInput{Src: "x", Output: "json"}))
		out := read()
		assert.Contains(t, out, `"hex": "#1a2b3c"`)
		assert.Contains(t, out, `"found": true`)
	})
}

func TestColor_FetchError(t *testing.T) {
	setupStdoutCapture(t)
	c := ImagesCmd{images: &FakeImageService{
		AccentColorFunc: func(ctx context.Context, src string, dark bool) (string, bool, error) {
			return "", false, convert.ErrFetchImage
		},
	}}
	err := c.Color(context.Background(), ColorInput{Src: "x"})
	assert.True(t, errors.Is(err, convert.ErrFetchImage))
}

func TestDataURL_Formats(t *testing.T) {
	var got string
	c := ImagesCmd{images: &FakeImageService{
		ToDataURLFunc: func(ctx context.Context, src, format string) (string, error) {
			got = format
			return "data:" + format + ";base64,AA==", nil
		},
	}}

	for in, want := range map[string]string{
		"":           convert.FormatPNG,
		"png":        convert.FormatPNG,
		"JPG":        convert.FormatJPEG,
		"jpeg":       convert.FormatJPEG,
		"image/jpeg": convert.FormatJPEG,
	} {
		setupStdoutCapture(t)
		require.NoError(t, c.DataURL(context.Background(), DataURLInput{Src: "x", Format: in}))
		assert.Equal(t, want, got, "format %q", in)
		assert.Contains(t, outBuf.String(), "data:"+want+";base64,AA==")
	}

	err := c.DataURL(context.Background(), DataURLInput{Src: "x", Format: "gif"})
	assert.ErrorContains(t, err, "unsupported format")
}
