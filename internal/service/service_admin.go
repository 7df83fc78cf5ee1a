package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkazancev/gamideck/internal/adapter"
	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/models"
)

type adminService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewAdminService constructs an [AdminService].
func NewAdminService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) AdminService {
	return &adminService{adapter: serverAdapter, logger: logger}
}

func (a *adminService) UpdateUser(ctx context.Context, id uuid.UUID, patch models.UserPatch) (models.User, error) {
	if patch.Role != nil && !patch.Role.Valid() {
		return models.User{}, ErrValidationInvalidRole
	}

	return a.adapter.UpdateUser(ctx, id, patch)
}

func (a *adminService) ChangeRole(ctx context.Context, id uuid.UUID, role models.Role) (models.User, error) {
	if !role.Valid() {
		return models.User{}, ErrValidationInvalidRole
	}

	user, err := a.adapter.UpdateUser(ctx, id, models.UserPatch{Role: &role})
	if err != nil {
		return models.User{}, err
	}

	a.logger.Info().Str("user", id.String()).Str("role", string(role)).Msg("role changed")
	return user, nil
}

func (a *adminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := a.adapter.DeleteUser(ctx, id); err != nil {
		return err
	}

	a.logger.Info().Str("user", id.String()).Msg("user deleted")
	return nil
}
