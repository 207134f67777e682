// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account. The user's session state is the hash
// of their single outstanding refresh token: issuing a new token overwrites
// the hash, which is what invalidates the previous one. There is no
// revocation list.
type User struct {
	// ID is the unique identifier, a UUID string assigned on create.
	ID string `gorm:"primaryKey;size:36"`

	// Email is unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the login password. It is never
	// updated after signup.
	Password string `gorm:"size:255;not null"`

	// RefreshTokenHash is the bcrypt hash of the current refresh token,
	// nil until the first signin.
	RefreshTokenHash *string `gorm:"size:255"`

	// IsDeleted soft-deletes the account. Deleted users fail the request
	// gate but keep their record.
	IsDeleted bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns a UUID when none is set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
