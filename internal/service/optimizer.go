package service

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/avif"
	"github.com/gen2brain/webp"

	"github.com/harshmehta/portfolio-api/internal/domain"
)

const (
	defaultQuality   = 80
	defaultThumbSize = 300
)

// ImagingOptimizer implements domain.ImageOptimizer on top of the imaging
// package, with webp/avif codecs from gen2brain. Importing the codec
// packages also registers their decoders with image.Decode.
type ImagingOptimizer struct{}

// NewImagingOptimizer creates a new optimizer
func NewImagingOptimizer() *ImagingOptimizer {
	return &ImagingOptimizer{}
}

// Optimize resizes (cover fit, center anchored) and re-encodes the image.
// With only one dimension given the other follows the aspect ratio.
func (o *ImagingOptimizer) Optimize(data []byte, opts domain.OptimizeOptions) ([]byte, error) {
	if opts.Quality <= 0 {
		opts.Quality = defaultQuality
	}
	if opts.Format == "" {
		opts.Format = domain.FormatWebP
	}
	if !domain.ValidFormat(opts.Format) {
		return nil, fmt.Errorf("unsupported format %q", opts.Format)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	switch {
	case opts.Width > 0 && opts.Height > 0:
		img = imaging.Fill(img, opts.Width, opts.Height, imaging.Center, imaging.Lanczos)
	case opts.Width > 0:
		img = imaging.Resize(img, opts.Width, 0, imaging.Lanczos)
	case opts.Height > 0:
		img = imaging.Resize(img, 0, opts.Height, imaging.Lanczos)
	}

	return encode(img, opts.Format, opts.Quality)
}

// Thumbnail produces a cover-fit webp thumbnail from the image bytes
func (o *ImagingOptimizer) Thumbnail(data []byte, width, height int) ([]byte, error) {
	if width <= 0 {
		width = defaultThumbSize
	}
	if height <= 0 {
		height = defaultThumbSize
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)

	return encode(img, domain.FormatWebP, defaultQuality)
}

// Dimensions reads the pixel size from the image header.
// Returns (0, 0) when the metadata cannot be read.
func (o *ImagingOptimizer) Dimensions(data []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

func encode(img image.Image, format string, quality int) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch format {
	case domain.FormatJPEG, domain.FormatJPG:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality))
	case domain.FormatPNG:
		// PNG is lossless; quality does not apply
		err = imaging.Encode(&buf, img, imaging.PNG)
	case domain.FormatWebP:
		err = webp.Encode(&buf, img, webp.Options{Quality: quality})
	case domain.FormatAVIF:
		err = avif.Encode(&buf, img, avif.Options{Quality: quality, QualityAlpha: quality})
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
