package database

import (
	"fmt"
	"log"

	"github.com/M-odou/forumassirou-sub000/internal/config"
	"github.com/M-odou/forumassirou-sub000/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the primary postgres store. Unlike the fallback this is
// allowed to fail: the caller degrades to local-only operation.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	log.Println("database: primary connected")
	return db, nil
}

// ConnectFallback opens the local sqlite store used when the primary is
// unreachable. Data written here is never synced back to the primary.
func ConnectFallback(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("database: failed to open fallback store %s: %v", path, err)
	}

	log.Printf("database: fallback store ready at %s", path)
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Admin{},
		&models.Participant{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatalf("database: failed to auto-migrate: %v", err)
	}
	log.Println("database: migrated")
}
