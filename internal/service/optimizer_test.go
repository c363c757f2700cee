package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshmehta/portfolio-api/internal/domain"
)

// testPNG renders a small gradient so the encoders have real pixel data.
func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeConfig(t *testing.T, data []byte) (string, int, int) {
	t.Helper()

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return format, cfg.Width, cfg.Height
}

func TestOptimizeResizesAndConverts(t *testing.T) {
	o := NewImagingOptimizer()
	data := testPNG(t, 400, 200)

	out, err := o.Optimize(data, domain.OptimizeOptions{
		Width:   100,
		Height:  100,
		Quality: 70,
		Format:  domain.FormatJPEG,
	})
	require.NoError(t, err)

	format, w, h := decodeConfig(t, out)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 100, w)
	assert.Equal(t, 100, h)
}

func TestOptimizeSingleDimensionKeepsAspect(t *testing.T) {
	o := NewImagingOptimizer()
	data := testPNG(t, 400, 200)

	out, err := o.Optimize(data, domain.OptimizeOptions{
		Width:  200,
		Format: domain.FormatPNG,
	})
	require.NoError(t, err)

	format, w, h := decodeConfig(t, out)
	assert.Equal(t, "png", format)
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)
}

func TestOptimizeDefaultsToWebP(t *testing.T) {
	o := NewImagingOptimizer()
	data := testPNG(t, 400, 200)

	// No dimensions and no format: size is untouched, encoding defaults to webp
	out, err := o.Optimize(data, domain.OptimizeOptions{})
	require.NoError(t, err)

	format, w, h := decodeConfig(t, out)
	assert.Equal(t, "webp", format)
	assert.Equal(t, 400, w)
	assert.Equal(t, 200, h)
}

func TestOptimizeRejectsUnknownFormat(t *testing.T) {
	o := NewImagingOptimizer()

	_, err := o.Optimize(testPNG(t, 10, 10), domain.OptimizeOptions{Format: "gif"})
	assert.Error(t, err)
}

func TestOptimizeRejectsGarbage(t *testing.T) {
	o := NewImagingOptimizer()

	_, err := o.Optimize([]byte("definitely not an image"), domain.OptimizeOptions{})
	assert.Error(t, err)
}

func TestThumbnailDefaultsToSquare(t *testing.T) {
	o := NewImagingOptimizer()
	data := testPNG(t, 640, 480)

	out, err := o.Thumbnail(data, 0, 0)
	require.NoError(t, err)

	format, w, h := decodeConfig(t, out)
	assert.Equal(t, "webp", format)
	assert.Equal(t, 300, w)
	assert.Equal(t, 300, h)
}

func TestDimensions(t *testing.T) {
	o := NewImagingOptimizer()

	w, h := o.Dimensions(testPNG(t, 400, 200))
	assert.Equal(t, 400, w)
	assert.Equal(t, 200, h)

	w, h = o.Dimensions([]byte("garbage"))
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, h)
}
