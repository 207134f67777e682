// Package db opens the GORM database connection used by every repository.
package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "task_backend/internal/feature/auth/domain/entity"
	taskentity "task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/platform/config"
)

// OpenDB connects to Postgres, retrying for up to a minute while the
// database comes up. TranslateError lets repositories match duplicate-key
// failures as gorm.ErrDuplicatedKey regardless of driver.
func OpenDB(cfg *config.Config) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&taskentity.Task{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
