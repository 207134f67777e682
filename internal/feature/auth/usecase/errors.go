// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned by repositories when no user matches.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when creating a user whose email is
	// already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")
)
