package database

import (
	"loopline/internal/models"

	"gorm.io/gorm"
)

// MigratedModels is the ordered list of models AutoMigrate manages.
// Users first, then posts, then the dependents, so foreign keys resolve.
func MigratedModels() []any {
	return []any{
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	}
}

// Migrate runs schema migration for all persisted models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(MigratedModels()...)
}
