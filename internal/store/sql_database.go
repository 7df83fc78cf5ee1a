package store

import (
	"database/sql"

	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
