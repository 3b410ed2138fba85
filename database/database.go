package database

import (
	"errors"
	"fmt"
	"strings"

	"portfolio-api/config"
	"portfolio-api/internal/domain/blog"
	"portfolio-api/internal/domain/films"
	"portfolio-api/internal/domain/galleries"
	"portfolio-api/internal/domain/musicvideos"
	"portfolio-api/internal/logging"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB() {
	db, err := Open(config.DB_DRIVER, config.DB_URL)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}

	DB = db

	if err := Migrate(DB); err != nil {
		logging.Fatal().Err(err).Msg("AutoMigrate error")
	}

	logging.Info().Str("driver", config.DB_DRIVER).Msg("Connected and migrated successfully")
}

// Open connects with the named driver. Errors are translated so duplicate
// primary keys surface as gorm.ErrDuplicatedKey.
func Open(driver, dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("database dsn is empty")
	}

	var dialector gorm.Dialector
	switch driver {
	case "", "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	return db, nil
}

// Migrate creates or extends the four content tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&films.Film{},
		&galleries.Gallery{},
		&musicvideos.MusicVideo{},
		&blog.Post{},
	)
}

// IsDuplicateKey reports whether err is a primary-key or unique violation.
// The message checks cover driver versions that do not translate errors.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
