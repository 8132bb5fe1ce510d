package config

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// MockMode reports whether the server runs on the in-memory fixture gateway.
// Mirrors the mobile client's rule: no configured URL means mock data.
func MockMode() bool {
	return os.Getenv("DB_URL") == ""
}

func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}
