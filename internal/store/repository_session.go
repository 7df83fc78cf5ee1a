package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/models"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. The token and the user snapshot live under separate
// keys so a resync can refresh the snapshot without rewriting the token.
type sessionRepository struct {
	kvRepository
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{kvRepository{db: db, logger: logger}}
}

func (r *sessionRepository) SaveToken(ctx context.Context, token string) error {
	return r.put(ctx, keyAuthToken, token)
}

func (r *sessionRepository) LoadToken(ctx context.Context) (string, error) {
	return r.get(ctx, keyAuthToken)
}

func (r *sessionRepository) SaveUser(ctx context.Context, user models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user snapshot: %w", err)
	}

	return r.put(ctx, keyAuthUser, string(payload))
}

func (r *sessionRepository) LoadUser(ctx context.Context) (models.User, error) {
	payload, err := r.get(ctx, keyAuthUser)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal([]byte(payload), &user); err != nil {
		return models.User{}, fmt.Errorf("decode user snapshot: %w", err)
	}

	return user, nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.delete(ctx, keyAuthToken, keyAuthUser)
}
