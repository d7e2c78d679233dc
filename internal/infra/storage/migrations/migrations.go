package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

var ErrMigrate = errors.New("migrations: failed to apply migrations")

// Up применяет все миграции схемы
// Возвращает версию схемы после применения
func Up(db *sql.DB) (uint, error) {
	source, err := iofs.New(files, "sql")
	if err != nil {
		return 0, fmt.Errorf("%w: open embedded source: %v", ErrMigrate, err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return 0, fmt.Errorf("%w: create postgres driver: %v", ErrMigrate, err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return 0, fmt.Errorf("%w: create migrate instance: %v", ErrMigrate, err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("%w: %v", ErrMigrate, err)
	}

	version, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("%w: read version: %v", ErrMigrate, err)
	}

	return version, nil
}
