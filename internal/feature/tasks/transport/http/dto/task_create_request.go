// Package dto defines data transfer objects for the tasks feature's HTTP
// transport layer.
package dto

// TaskCreateReq represents the request body for POST /task/create.
type TaskCreateReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}
