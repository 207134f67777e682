// Package httpx provides the JSON response envelope shared by every
// endpoint: {"success": bool, "message": ..., "data": ...}.
package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task_backend/internal/shared/apperr"
)

// Response is the standard envelope.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK writes a 200 with a success envelope.
func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

// Created writes a 201 with a success envelope.
func Created(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message})
}

// ValidationError writes a 400 carrying the binding error detail.
func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Message: err.Error()})
}

// Error writes the failure envelope for a domain error, resolving the status
// code and client message through the apperr tables.
func Error(c *gin.Context, err error) {
	c.JSON(apperr.Status(err), Response{Success: false, Message: apperr.Message(err)})
}

// AbortError writes the failure envelope and aborts the handler chain. Meant
// for middleware.
func AbortError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperr.Status(err), Response{Success: false, Message: apperr.Message(err)})
}
