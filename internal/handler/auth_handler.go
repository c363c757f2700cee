package handler

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/harshmehta/portfolio-api/internal/domain"
)

const sessionTTL = 24 * time.Hour

// AuthHandler handles admin authentication
type AuthHandler struct {
	adminToken    string
	sessionSecret string
	secureCookies bool
}

// NewAuthHandler creates a new auth handler.
// secureCookies should be true in production (HTTPS).
func NewAuthHandler(adminToken, sessionSecret string, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		adminToken:    adminToken,
		sessionSecret: sessionSecret,
		secureCookies: secureCookies,
	}
}

// Login handles POST /admin/login. A correct password yields a signed,
// httpOnly session cookie valid for 24 hours.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body: " + err.Error(),
		})
	}

	if h.adminToken == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Admin token not configured on server",
		})
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminToken)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid password",
		})
	}

	now := time.Now()
	claims := domain.AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.sessionSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "failed to create session",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     domain.SessionCookieName,
		Value:    signed,
		Expires:  now.Add(sessionTTL),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: "Strict",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// Logout handles POST /admin/logout by expiring the session cookie
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     domain.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: "Strict",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"success": true,
	})
}
