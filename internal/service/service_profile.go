package service

import (
	"context"
	"fmt"

	"github.com/pkazancev/gamideck/internal/adapter"
	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/internal/session"
	"github.com/pkazancev/gamideck/models"
)

type profileService struct {
	adapter adapter.ServerAdapter
	session *session.Store
	logger  *logger.Logger
}

// NewProfileService constructs a [ProfileService].
func NewProfileService(serverAdapter adapter.ServerAdapter, sessionStore *session.Store, logger *logger.Logger) ProfileService {
	return &profileService{adapter: serverAdapter, session: sessionStore, logger: logger}
}

func (p *profileService) Refresh(ctx context.Context) (models.User, error) {
	user, err := p.adapter.Me(ctx)
	if err != nil {
		return models.User{}, err
	}

	if err := p.session.ReplaceUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("update session snapshot: %w", err)
	}

	return user, nil
}

func (p *profileService) Update(ctx context.Context, patch models.UserPatch) (models.User, error) {
	user, err := p.adapter.UpdateMe(ctx, patch)
	if err != nil {
		return models.User{}, err
	}

	// The server record is authoritative after an edit.
	if err := p.session.ReplaceUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("update session snapshot: %w", err)
	}

	p.logger.Info().Msg("profile updated")
	return user, nil
}

func (p *profileService) DeleteAccount(ctx context.Context) error {
	if err := p.adapter.DeleteMe(ctx); err != nil {
		return err
	}

	p.logger.Info().Msg("account deleted, dropping session")
	return p.session.Logout(ctx)
}
