package database

import (
	"vidstream-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens the process-wide GORM connection. Called once
// at startup; the caller exits on error.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		// TranslateError lets callers detect unique-constraint violations
		// via gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
}
