package store

import (
	"context"
	"errors"

	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/models"
)

// settingsRepository is the SQLite-backed implementation of
// [SettingsRepository].
type settingsRepository struct {
	kvRepository
}

// NewSettingsRepository constructs a [SettingsRepository] backed by the
// provided database connection and logger.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{kvRepository{db: db, logger: logger}}
}

func (r *settingsRepository) SaveTheme(ctx context.Context, theme models.Theme) error {
	return r.put(ctx, keyTheme, string(theme))
}

func (r *settingsRepository) LoadTheme(ctx context.Context) (models.Theme, error) {
	raw, err := r.get(ctx, keyTheme)
	if errors.Is(err, ErrKeyNotFound) {
		return models.ThemeLight, nil
	}
	if err != nil {
		return models.ThemeLight, err
	}

	return models.ParseTheme(raw), nil
}
