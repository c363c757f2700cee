package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie carrying the signed admin session token.
const SessionCookieName = "admin_token"

// AdminClaims are the JWT claims embedded in the admin session cookie.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
