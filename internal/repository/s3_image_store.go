package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/oklog/ulid/v2"

	appConfig "github.com/harshmehta/portfolio-api/internal/config"
	"github.com/harshmehta/portfolio-api/internal/domain"
)

// S3ImageStore implements domain.ImageStore using AWS SDK v2.
// It works against AWS S3 and S3-compatible stores (MinIO, SeaweedFS, CEPH).
type S3ImageStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3ImageStore creates a new S3-backed image store
func NewS3ImageStore(ctx context.Context, cfg appConfig.S3Config) (*S3ImageStore, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config, %v", err)
	}

	// We use the functional options pattern for the client to override the endpoint
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = cfg.ForcePathStyle // Required for many S3-compatible stores
	})

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		// Assume public access is via the storage endpoint itself
		publicURL = strings.TrimRight(cfg.Endpoint, "/")
	}

	store := &S3ImageStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
	}

	// Ensure bucket exists
	if err := store.ensureBucket(ctx); err != nil {
		return nil, err
	}

	return store, nil
}

// Upload stores data under folder and returns the stored object.
// Keys are ULID-prefixed so concurrent uploads of the same filename never collide.
func (s *S3ImageStore) Upload(ctx context.Context, data []byte, filename, contentType, folder string) (*domain.StoredImage, error) {
	if folder == "" {
		folder = domain.DefaultFolder
	}

	key := folder + "/" + ulid.Make().String() + "-" + sanitizeFilename(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return &domain.StoredImage{
		URL:        s.objectURL(key),
		Filename:   key,
		UploadedAt: time.Now().UTC(),
		Size:       int64(len(data)),
	}, nil
}

// List returns every object whose key starts with folder, following the
// continuation token to exhaustion so large folders are never truncated.
func (s *S3ImageStore) List(ctx context.Context, folder string) ([]domain.StoredImage, error) {
	prefix := strings.TrimSuffix(folder, "/")
	if prefix != "" {
		prefix += "/"
	}

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	images := []domain.StoredImage{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects under %q: %w", folder, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			images = append(images, domain.StoredImage{
				URL:        s.objectURL(key),
				Filename:   key,
				UploadedAt: aws.ToTime(obj.LastModified),
				Size:       aws.ToInt64(obj.Size),
			})
		}
	}

	return images, nil
}

// Delete resolves the object by its public URL and removes it.
// Returns domain.ErrNotFound when no object matches the URL.
func (s *S3ImageStore) Delete(ctx context.Context, url string) error {
	key := s.KeyFromURL(url)
	if key == "" {
		return domain.ErrNotFound
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to stat object %q: %w", key, err)
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}

	return nil
}

// KeyFromURL extracts the object key from a public URL.
// Returns "" if the URL does not belong to this store.
func (s *S3ImageStore) KeyFromURL(url string) string {
	prefix := s.publicURL + "/" + s.bucket + "/"
	if strings.HasPrefix(url, prefix) {
		return strings.TrimPrefix(url, prefix)
	}
	return ""
}

// objectURL builds the public URL for a key.
// Format: {PublicURL}/{Bucket}/{Key}
func (s *S3ImageStore) objectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key)
}

// ensureBucket checks if bucket exists, creating it if necessary
func (s *S3ImageStore) ensureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})

	if err != nil {
		// Bucket is missing or inaccessible; try to create it
		_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
			Bucket: aws.String(s.bucket),
		})
		if err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}

// sanitizeFilename strips path components and replaces characters that are
// awkward in object keys and URLs.
func sanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
