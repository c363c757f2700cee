package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harshmehta/portfolio-api/internal/content"
)

// ContentHandler serves the static site data (experiences, skills,
// image categories). The data lives in the content package and changes
// only with a deploy.
type ContentHandler struct{}

// NewContentHandler creates a new content handler
func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

// Experiences handles GET /content/experiences
func (h *ContentHandler) Experiences(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":     true,
		"experiences": content.Experiences,
	})
}

// Experience handles GET /content/experiences/:slug
func (h *ContentHandler) Experience(c *fiber.Ctx) error {
	exp := content.ExperienceBySlug(c.Params("slug"))
	if exp == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "experience not found",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"experience": exp,
	})
}

// Skills handles GET /content/skills
func (h *ContentHandler) Skills(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"skills":  content.SkillGroups,
	})
}

// Categories handles GET /content/categories
func (h *ContentHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"categories": content.Categories,
	})
}
