// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"task_backend/internal/feature/auth/transport/http/dto"
	"task_backend/internal/feature/auth/usecase"
	"task_backend/internal/shared/httpx"
)

// AuthUsecase defines the auth orchestration operations the handlers need.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user. No tokens are issued.
	Signup(ctx context.Context, email, password string) error
	// Signin authenticates a user and returns a token pair.
	Signin(ctx context.Context, email, password string) (usecase.TokenPair, error)
	// RefreshTokens exchanges a refresh token for a new pair.
	RefreshTokens(ctx context.Context, refreshToken string) (usecase.TokenPair, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /auth/signup.
// Validation failures return 400 with field detail, duplicates 400, success
// 201.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		httpx.ValidationError(c, err)
		return
	}
	if err := h.auth.Signup(c.Request.Context(), req.Email, req.Password); err != nil {
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		httpx.Error(c, err)
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	httpx.Created(c, "User created successfully")
}

// Login handles POST /auth/login.
// Authentication failures return 401, success 200 with the token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		httpx.ValidationError(c, err)
		return
	}
	pair, err := h.auth.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		httpx.Error(c, err)
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	httpx.OK(c, "User logged in successfully", pair)
}

// RefreshToken handles POST /auth/refreshToken.
// Invalid or rotated-out tokens return 401, a missing session 400, success
// 200 with a new pair.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("refresh validation failed", "error", err, "remote_addr", c.ClientIP())
		httpx.ValidationError(c, err)
		return
	}
	pair, err := h.auth.RefreshTokens(c.Request.Context(), req.RefreshToken)
	if err != nil {
		slog.Warn("token refresh failed", "error", err, "remote_addr", c.ClientIP())
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "", pair)
}
