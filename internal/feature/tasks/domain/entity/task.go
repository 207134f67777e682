// Package entity defines the domain entities for the tasks feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is a user-owned task. IsDeleted is the archive flag: archived tasks
// stay in the table and remain listable through the isDeleted filter.
type Task struct {
	ID          string `gorm:"primaryKey;size:36"`
	UserID      string `gorm:"index;size:36;not null"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"size:1024;not null"`
	IsDeleted   bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BeforeCreate assigns a UUID when none is set.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
