package domain

import (
	"context"
	"time"
)

// Image formats the optimizer can encode to.
const (
	FormatJPEG = "jpeg"
	FormatJPG  = "jpg"
	FormatPNG  = "png"
	FormatWebP = "webp"
	FormatAVIF = "avif"
)

// DefaultFolder is used when an upload does not name a folder.
const DefaultFolder = "general"

// StoredImage is an object in the blob store. The store itself is the single
// source of truth: listing always re-queries it, nothing is mirrored locally.
type StoredImage struct {
	URL        string    `json:"url"`
	Filename   string    `json:"filename"` // full storage key, includes the folder prefix
	UploadedAt time.Time `json:"uploadedAt"`
	Size       int64     `json:"size"`
}

// ImageStore defines the blob storage operations the image pipeline needs.
// Each call is at-most-once against the store; there is no retry layer.
type ImageStore interface {
	// Upload stores data under the given folder and returns the stored
	// object. filename is the client's name, used as a readable key suffix.
	Upload(ctx context.Context, data []byte, filename, contentType, folder string) (*StoredImage, error)

	// List returns every object whose key starts with folder.
	// An empty folder lists the whole bucket.
	List(ctx context.Context, folder string) ([]StoredImage, error)

	// Delete removes the object identified by its public URL.
	// Returns ErrNotFound when no object matches the URL.
	Delete(ctx context.Context, url string) error
}

// ValidFormat reports whether format is one the optimizer can encode.
func ValidFormat(format string) bool {
	switch format {
	case FormatJPEG, FormatJPG, FormatPNG, FormatWebP, FormatAVIF:
		return true
	}
	return false
}
