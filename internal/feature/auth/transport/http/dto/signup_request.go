// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer.
package dto

// SignupReq represents the request body for POST /auth/signup.
// Gin's binding tags enforce presence, email format and password length.
type SignupReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
