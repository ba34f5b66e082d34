package db

import (
	"fmt"
	"os"
	"path/filepath"

	"souq/config"
	"souq/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the configured database and migrates the catalog schema.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	case "sqlite":
		if err := ensureSQLiteFile(cfg.DBDSN); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	database, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(database); err != nil {
		return nil, err
	}
	return database, nil
}

// Migrate creates or updates the catalog tables. The category_product
// join table is created by GORM from the many2many tags with no foreign
// key cascade, so deleting a category leaves its link rows behind.
func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(
		&models.Category{}, &models.Product{}, &models.ProductImage{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

func ensureSQLiteFile(dbPath string) error {
	// Ensure the directory exists (create if it doesn't)
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}

	// Create an empty database file if it doesn't exist
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		file, err := os.Create(dbPath)
		if err != nil {
			return fmt.Errorf("create database file: %w", err)
		}
		file.Close()
	}
	return nil
}
