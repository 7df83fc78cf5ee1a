package adapter

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkazancev/gamideck/models"
)

// Competitions implements [CompetitionAPI] via GET /competitions.
func (h *httpServerAdapter) Competitions(ctx context.Context) ([]models.Competition, error) {
	var comps []models.Competition
	if err := h.send(ctx, "GET", "/competitions", nil, &comps); err != nil {
		return nil, err
	}
	return comps, nil
}

// Competition implements [CompetitionAPI] via GET /competitions/{id}.
func (h *httpServerAdapter) Competition(ctx context.Context, id uuid.UUID) (models.Competition, error) {
	var comp models.Competition
	if err := h.send(ctx, "GET", fmt.Sprintf("/competitions/%s", id), nil, &comp); err != nil {
		return models.Competition{}, err
	}
	return comp, nil
}

// CreateCompetition implements [CompetitionAPI] via POST /competitions.
func (h *httpServerAdapter) CreateCompetition(ctx context.Context, spec models.CompetitionSpec) (models.Competition, error) {
	var comp models.Competition
	if err := h.send(ctx, "POST", "/competitions", spec, &comp); err != nil {
		return models.Competition{}, err
	}
	return comp, nil
}

// UpdateCompetition implements [CompetitionAPI] via PUT /competitions/{id}.
func (h *httpServerAdapter) UpdateCompetition(ctx context.Context, id uuid.UUID, patch models.CompetitionPatch) (models.Competition, error) {
	var comp models.Competition
	if err := h.send(ctx, "PUT", fmt.Sprintf("/competitions/%s", id), patch, &comp); err != nil {
		return models.Competition{}, err
	}
	return comp, nil
}

// DeleteCompetition implements [CompetitionAPI] via DELETE /competitions/{id}.
func (h *httpServerAdapter) DeleteCompetition(ctx context.Context, id uuid.UUID) error {
	return h.send(ctx, "DELETE", fmt.Sprintf("/competitions/%s", id), nil, nil)
}

// Leaderboard implements [CompetitionAPI] via GET /leaderboard/{competitionId}.
func (h *httpServerAdapter) Leaderboard(ctx context.Context, competitionID uuid.UUID) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	if err := h.send(ctx, "GET", fmt.Sprintf("/leaderboard/%s", competitionID), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
