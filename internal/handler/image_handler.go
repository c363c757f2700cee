package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/harshmehta/portfolio-api/internal/content"
	"github.com/harshmehta/portfolio-api/internal/domain"
	"github.com/harshmehta/portfolio-api/internal/service"
)

// ImageHandler handles HTTP requests for the image pipeline
type ImageHandler struct {
	imageService *service.ImageService
	maxUploadMB  int64
}

// NewImageHandler creates a new image handler
func NewImageHandler(imageService *service.ImageService, maxUploadMB int64) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		maxUploadMB:  maxUploadMB,
	}
}

// Upload handles POST /images/upload — stores the file as-is and echoes the
// caller's metadata back. Nothing besides the blob is persisted.
func (h *ImageHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	maxBytes := h.maxUploadMB * 1024 * 1024
	if file.Size > maxBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("file size exceeds maximum of %dMB", h.maxUploadMB),
		})
	}

	data, err := readUpload(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	folder := c.FormValue("folder")
	contentType := file.Header.Get("Content-Type")

	stored, err := h.imageService.Upload(c.Context(), data, file.Filename, contentType, folder)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"url":        stored.URL,
		"filename":   stored.Filename,
		"uploadedAt": stored.UploadedAt,
		"metadata": fiber.Map{
			"title":       c.FormValue("title"),
			"description": c.FormValue("description"),
			"alt":         c.FormValue("alt"),
		},
	})
}

// OptimizedUpload handles POST /images/optimized-upload — the full
// optimize/store/thumbnail pipeline.
func (h *ImageHandler) OptimizedUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	contentType := file.Header.Get("Content-Type")
	if strings.Split(contentType, "/")[0] != "image" {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
			"error": "Only image uploads are currently supported",
		})
	}

	maxBytes := h.maxUploadMB * 1024 * 1024
	if file.Size > maxBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("file size exceeds maximum of %dMB", h.maxUploadMB),
		})
	}

	format := c.FormValue("format", domain.FormatJPEG)
	if !domain.ValidFormat(format) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("unsupported format %q", format),
		})
	}

	data, err := readUpload(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	result, err := h.imageService.OptimizedUpload(c.Context(), service.OptimizedUploadRequest{
		Data:              data,
		Filename:          file.Filename,
		Folder:            c.FormValue("folder"),
		Width:             formInt(c, "width"),
		Height:            formInt(c, "height"),
		Quality:           formInt(c, "quality"),
		Format:            format,
		GenerateThumbnail: c.FormValue("generateThumbnail") == "true",
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// thumbnail is null when not requested or when generation failed
	var thumbnail interface{}
	if result.ThumbnailURL != "" {
		thumbnail = result.ThumbnailURL
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"url":       result.Image.URL,
		"thumbnail": thumbnail,
		"format":    result.Format,
		"folder":    result.Folder,
		"displayLocation": []string{
			"Experience Cards",
			"Gallery Grid",
			"Hero Backgrounds",
			"Custom Section (Set in Admin)",
		},
		"futureSupport": fiber.Map{
			"videoUploads":           false,
			"cropping":               true,
			"zoomControl":            true,
			"replaceImageLocationUI": true,
		},
	})
}

// List handles GET /images/list?folder=
func (h *ImageHandler) List(c *fiber.Ctx) error {
	folder := c.Query("folder")

	images, err := h.imageService.List(c.Context(), folder)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"images":  images,
	})
}

// Delete handles POST /images/delete
func (h *ImageHandler) Delete(c *fiber.Ctx) error {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}
	if req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No URL provided",
		})
	}

	if err := h.imageService.Delete(c.Context(), req.URL); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "image not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// CategorySummary handles GET /images/categories/summary
func (h *ImageHandler) CategorySummary(c *fiber.Ctx) error {
	summaries, err := h.imageService.CategorySummaries(c.Context(), content.Categories)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"categories": summaries,
	})
}

// readUpload reads a multipart file fully into memory. Uploads are capped by
// the body limit, so buffering is bounded.
func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// formInt parses an optional integer form value; absent or malformed
// values collapse to zero.
func formInt(c *fiber.Ctx, key string) int {
	v, err := strconv.Atoi(c.FormValue(key))
	if err != nil {
		return 0
	}
	return v
}
