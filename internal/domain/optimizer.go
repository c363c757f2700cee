package domain

// OptimizeOptions controls a single optimization pass.
// Zero Width and Height means no resize, format conversion only.
type OptimizeOptions struct {
	Width   int
	Height  int
	Quality int    // 1-100, defaults to 80
	Format  string // defaults to webp
}

// ImageOptimizer re-encodes image bytes. Implementations return an error on
// corrupt input or unsupported codecs; the caller decides whether to
// substitute the original bytes (the upload pipeline does, so a broken
// optimization never blocks an upload).
type ImageOptimizer interface {
	Optimize(data []byte, opts OptimizeOptions) ([]byte, error)

	// Thumbnail produces a cover-fit webp thumbnail. Zero width/height
	// fall back to 300x300.
	Thumbnail(data []byte, width, height int) ([]byte, error)

	// Dimensions returns the pixel size of the image, or (0, 0) when the
	// metadata cannot be read. It never fails.
	Dimensions(data []byte) (width, height int)
}
