package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harshmehta/portfolio-api/internal/repository"
)

// VisitorHandler handles the site visitor counter
type VisitorHandler struct {
	counter *repository.RedisVisitorCounter
}

// NewVisitorHandler creates a new visitor handler
func NewVisitorHandler(counter *repository.RedisVisitorCounter) *VisitorHandler {
	return &VisitorHandler{
		counter: counter,
	}
}

// Hit handles POST /visitors/hit — records a visit and returns the counts
func (h *VisitorHandler) Hit(c *fiber.Ctx) error {
	var req struct {
		Page string `json:"page"`
	}
	// An empty body counts as a homepage visit
	_ = c.BodyParser(&req)

	pageCount, err := h.counter.Hit(c.Context(), req.Page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	total, err := h.counter.Total(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"page":    pageCount,
		"total":   total,
	})
}

// Count handles GET /visitors — returns the site-wide visit count
func (h *VisitorHandler) Count(c *fiber.Ctx) error {
	total, err := h.counter.Total(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"total":   total,
	})
}
