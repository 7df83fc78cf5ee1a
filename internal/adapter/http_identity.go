package adapter

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkazancev/gamideck/models"
)

// Me implements [IdentityAPI] via GET /users/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User
	if err := h.send(ctx, "GET", "/users/me", nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateMe implements [IdentityAPI] via PUT /users/me.
func (h *httpServerAdapter) UpdateMe(ctx context.Context, patch models.UserPatch) (models.User, error) {
	var user models.User
	if err := h.send(ctx, "PUT", "/users/me", patch, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DeleteMe implements [IdentityAPI] via DELETE /users/me.
func (h *httpServerAdapter) DeleteMe(ctx context.Context) error {
	return h.send(ctx, "DELETE", "/users/me", nil, nil)
}

// Users implements [IdentityAPI] via GET /users.
func (h *httpServerAdapter) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := h.send(ctx, "GET", "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// PlainUsers implements [IdentityAPI] via GET /users/only.
func (h *httpServerAdapter) PlainUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := h.send(ctx, "GET", "/users/only", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AssignCompetition implements [IdentityAPI] via PUT /users/{id}/competition.
func (h *httpServerAdapter) AssignCompetition(ctx context.Context, userID uuid.UUID, assignment models.CompetitionAssignment) (models.User, error) {
	var user models.User
	path := fmt.Sprintf("/users/%s/competition", userID)
	if err := h.send(ctx, "PUT", path, assignment, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
