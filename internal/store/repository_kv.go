package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pkazancev/gamideck/internal/logger"
)

// kvRepository is the low-level accessor for the kv_entries table. The
// session and settings repositories are thin typed views over it.
type kvRepository struct {
	db     *DB
	logger *logger.Logger
}

func (r *kvRepository) put(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, upsertEntry, key, value, time.Now().UTC()); err != nil {
		log.Err(err).Str("func", "*kvRepository.put").Str("key", key).Msg("error upserting entry")
		return fmt.Errorf("upsert %q: %w", key, err)
	}

	return nil
}

func (r *kvRepository) get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := r.db.QueryRowContext(ctx, getEntry, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*kvRepository.get").Str("key", key).Msg("error reading entry")
		return "", fmt.Errorf("get %q: %w", key, err)
	}

	return value, nil
}

func (r *kvRepository) delete(ctx context.Context, keys ...string) error {
	log := logger.FromContext(ctx)

	for _, key := range keys {
		if _, err := r.db.ExecContext(ctx, deleteEntry, key); err != nil {
			log.Err(err).Str("func", "*kvRepository.delete").Str("key", key).Msg("error deleting entry")
			return fmt.Errorf("delete %q: %w", key, err)
		}
	}

	return nil
}
