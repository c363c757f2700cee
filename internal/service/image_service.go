package service

import (
	"context"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/harshmehta/portfolio-api/internal/domain"
)

// ImageService orchestrates the upload pipeline: optimize, store, and
// optionally thumbnail. There is no transaction across the steps; a primary
// image stored without its thumbnail is an accepted partial state.
type ImageService struct {
	store     domain.ImageStore
	optimizer domain.ImageOptimizer
}

// NewImageService creates a new image service
func NewImageService(store domain.ImageStore, optimizer domain.ImageOptimizer) *ImageService {
	return &ImageService{
		store:     store,
		optimizer: optimizer,
	}
}

// OptimizedUploadRequest is a single optimized-upload invocation.
// It is request-scoped and never persisted.
type OptimizedUploadRequest struct {
	Data              []byte
	Filename          string
	Folder            string
	Width             int
	Height            int
	Quality           int
	Format            string
	GenerateThumbnail bool
}

// OptimizedUploadResult reports where the pipeline stored the image.
// ThumbnailURL is empty when no thumbnail was requested or when thumbnail
// generation failed (non-fatal).
type OptimizedUploadResult struct {
	Image        *domain.StoredImage
	ThumbnailURL string
	Format       string
	Folder       string
}

// Upload stores a file as-is, without optimization
func (s *ImageService) Upload(ctx context.Context, data []byte, filename, contentType, folder string) (*domain.StoredImage, error) {
	if folder == "" {
		folder = domain.DefaultFolder
	}
	return s.store.Upload(ctx, data, filename, contentType, folder)
}

// OptimizedUpload runs the optimize -> store -> thumbnail pipeline.
//
// Optimization is fail-open: when it fails the original bytes are stored
// unchanged and the degradation is logged, never surfaced as an error.
// The thumbnail is cut from the original (pre-optimization) buffer and is
// only attempted after the primary upload succeeded.
func (s *ImageService) OptimizedUpload(ctx context.Context, req OptimizedUploadRequest) (*OptimizedUploadResult, error) {
	folder := req.Folder
	if folder == "" {
		folder = domain.DefaultFolder
	}
	format := req.Format
	if format == "" {
		format = domain.FormatJPEG
	}

	optimized, err := s.optimizer.Optimize(req.Data, domain.OptimizeOptions{
		Width:   req.Width,
		Height:  req.Height,
		Quality: req.Quality,
		Format:  format,
	})
	if err != nil {
		log.Printf("Warning: image optimization failed, storing original bytes: %v", err)
		optimized = req.Data
	}

	name := baseName(req.Filename) + "." + format
	stored, err := s.store.Upload(ctx, optimized, name, "image/"+format, folder)
	if err != nil {
		return nil, err
	}

	result := &OptimizedUploadResult{
		Image:  stored,
		Format: format,
		Folder: folder,
	}

	if req.GenerateThumbnail {
		result.ThumbnailURL = s.uploadThumbnail(ctx, req.Data, req.Filename, folder)
	}

	return result, nil
}

// uploadThumbnail stores a 300x300 webp thumbnail under {folder}/thumbnails.
// Failures are logged and reported as an empty URL, never as an error.
func (s *ImageService) uploadThumbnail(ctx context.Context, original []byte, filename, folder string) string {
	thumb, err := s.optimizer.Thumbnail(original, 0, 0)
	if err != nil {
		log.Printf("Warning: thumbnail generation failed: %v", err)
		return ""
	}

	name := baseName(filename) + "_thumb.jpeg"
	stored, err := s.store.Upload(ctx, thumb, name, "image/jpeg", folder+"/thumbnails")
	if err != nil {
		log.Printf("Warning: thumbnail upload failed: %v", err)
		return ""
	}

	return stored.URL
}

// List returns the store's objects under folder; empty folder means all
func (s *ImageService) List(ctx context.Context, folder string) ([]domain.StoredImage, error) {
	return s.store.List(ctx, folder)
}

// Delete removes a stored image by its public URL
func (s *ImageService) Delete(ctx context.Context, url string) error {
	if url == "" {
		return domain.ErrMissingURL
	}
	return s.store.Delete(ctx, url)
}

// CategorySummaries lists every category's folder concurrently and returns
// per-category image counts for the admin dashboard.
func (s *ImageService) CategorySummaries(ctx context.Context, categories []domain.ImageCategory) ([]domain.CategorySummary, error) {
	summaries := make([]domain.CategorySummary, len(categories))

	g, ctx := errgroup.WithContext(ctx)
	for i, cat := range categories {
		g.Go(func() error {
			images, err := s.store.List(ctx, cat.Folder)
			if err != nil {
				return err
			}
			summaries[i] = domain.CategorySummary{
				Category: cat,
				Count:    len(images),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// baseName strips everything from the first dot, mirroring how uploaded
// filenames are renamed to the requested format's extension.
func baseName(name string) string {
	if name == "" {
		return "image"
	}
	if i := strings.Index(name, "."); i > 0 {
		return name[:i]
	}
	return name
}
