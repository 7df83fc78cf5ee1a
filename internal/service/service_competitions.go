package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkazancev/gamideck/internal/adapter"
	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/internal/session"
	"github.com/pkazancev/gamideck/models"
)

type competitionService struct {
	adapter adapter.ServerAdapter
	session *session.Store
	logger  *logger.Logger
}

// NewCompetitionService constructs a [CompetitionService].
func NewCompetitionService(serverAdapter adapter.ServerAdapter, sessionStore *session.Store, logger *logger.Logger) CompetitionService {
	return &competitionService{adapter: serverAdapter, session: sessionStore, logger: logger}
}

func (c *competitionService) List(ctx context.Context) ([]models.Competition, error) {
	return c.adapter.Competitions(ctx)
}

func (c *competitionService) Get(ctx context.Context, id uuid.UUID) (models.Competition, error) {
	return c.adapter.Competition(ctx, id)
}

func (c *competitionService) Create(ctx context.Context, spec models.CompetitionSpec) (models.Competition, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return models.Competition{}, ErrValidationEmptyName
	}
	if !spec.EndDate.After(spec.StartDate) {
		return models.Competition{}, ErrValidationBadDateRange
	}

	comp, err := c.adapter.CreateCompetition(ctx, spec)
	if err != nil {
		return models.Competition{}, err
	}

	c.logger.Info().Str("competition", comp.Name).Msg("competition created")
	return comp, nil
}

func (c *competitionService) Update(ctx context.Context, id uuid.UUID, patch models.CompetitionPatch) (models.Competition, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return models.Competition{}, ErrValidationEmptyName
	}
	if patch.StartDate != nil && patch.EndDate != nil && !patch.EndDate.After(*patch.StartDate) {
		return models.Competition{}, ErrValidationBadDateRange
	}

	return c.adapter.UpdateCompetition(ctx, id, patch)
}

func (c *competitionService) Delete(ctx context.Context, id uuid.UUID) error {
	return c.adapter.DeleteCompetition(ctx, id)
}

func (c *competitionService) Leaderboard(ctx context.Context, competitionID uuid.UUID) ([]models.LeaderboardEntry, error) {
	return c.adapter.Leaderboard(ctx, competitionID)
}

func (c *competitionService) Users(ctx context.Context) ([]models.User, error) {
	return c.adapter.Users(ctx)
}

func (c *competitionService) PlainUsers(ctx context.Context) ([]models.User, error) {
	return c.adapter.PlainUsers(ctx)
}

func (c *competitionService) Assign(ctx context.Context, userID uuid.UUID, competitionID *uuid.UUID) (models.User, error) {
	user, err := c.adapter.AssignCompetition(ctx, userID, models.CompetitionAssignment{CompetitionID: competitionID})
	if err != nil {
		return models.User{}, err
	}

	// A manager re-assigning themselves must see the change reflected in
	// their own session immediately.
	if snap := c.session.Snapshot(); snap.Authenticated && snap.User.ID == userID {
		if err := c.session.ReplaceUser(ctx, user); err != nil {
			return models.User{}, fmt.Errorf("update session snapshot: %w", err)
		}
	}

	return user, nil
}
