package dto

// RefreshReq represents the request body for POST /auth/refreshToken.
type RefreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
