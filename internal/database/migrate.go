package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/pageza/recipe-ai/internal/model"
)

// RunMigrations creates or updates the ingredient and recipe tables
func RunMigrations(db *gorm.DB) error {
	log.Printf("Using GORM auto-migration for %s", db.Dialector.Name())
	return db.AutoMigrate(
		&model.Ingredient{},
		&model.Recipe{},
	)
}
