package jwtmw

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"task_backend/internal/shared/apperr"
	"task_backend/internal/shared/httpx"
)

// contextIdentity is the gin context key for the resolved caller identity.
const contextIdentity = "identity"

// Identity is the caller resolved for the current request. It lives only in
// the request context.
type Identity struct {
	ID    string
	Email string
}

// TokenVerifier validates access tokens.
type TokenVerifier interface {
	VerifyAccess(token string) (*Claims, error)
}

// IdentityResolver confirms the token's subject still maps to an active
// user. Interface defined here because the middleware is its consumer.
type IdentityResolver interface {
	ResolveGateIdentity(ctx context.Context, userID string) (Identity, error)
}

// AuthRequired returns the gate middleware applied to every protected route
// group. Routes outside the group are public and never reach it.
//
// The gate accepts only the "Bearer <token>" scheme, verifies the token
// against the access secret, re-checks that the user exists and is not
// soft-deleted, and attaches the resolved identity to the request context.
func AuthRequired(verifier TokenVerifier, users IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			httpx.AbortError(c, apperr.New(apperr.KindUnauthorized, "No token provided"))
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		claims, err := verifier.VerifyAccess(tokenStr)
		if err != nil {
			slog.Warn("access token rejected", "error", err, "remote_addr", c.ClientIP())
			httpx.AbortError(c, apperr.New(apperr.KindUnauthorized, "Invalid or expired token"))
			return
		}

		ident, err := users.ResolveGateIdentity(c.Request.Context(), claims.Subject)
		if err != nil {
			slog.Warn("gate identity resolution failed", "error", err, "remote_addr", c.ClientIP())
			httpx.AbortError(c, apperr.New(apperr.KindUnauthorized, "User not found or deleted"))
			return
		}

		c.Set(contextIdentity, ident)
		c.Next()
	}
}

// IdentityFrom returns the identity the gate attached to the request, if any.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(contextIdentity)
	if !ok {
		return Identity{}, false
	}
	ident, ok := v.(Identity)
	return ident, ok
}

// SetIdentity attaches an identity to the request context. Exported for
// handler tests that bypass the middleware.
func SetIdentity(c *gin.Context, ident Identity) {
	c.Set(contextIdentity, ident)
}
