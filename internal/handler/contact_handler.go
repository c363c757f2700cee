package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/harshmehta/portfolio-api/internal/domain"
	"github.com/harshmehta/portfolio-api/internal/service"
)

// ContactHandler handles contact form submissions
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit handles POST /contact. Accepts both form and JSON bodies.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name" form:"name"`
		Email   string `json:"email" form:"email"`
		Subject string `json:"subject" form:"subject"`
		Message string `json:"message" form:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	msg := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.contactService.Submit(c.Context(), msg); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Missing required fields",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process contact form",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Contact form submitted successfully",
	})
}

// Recent handles GET /admin/contact — latest submissions for the admin area
func (h *ContactHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	messages, err := h.contactService.Recent(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"messages": messages,
	})
}
