package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkazancev/gamideck/internal/adapter"
	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/models"
)

type catalogService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewCatalogService constructs a [CatalogService].
func NewCatalogService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) CatalogService {
	return &catalogService{adapter: serverAdapter, logger: logger}
}

func (c *catalogService) RewardTypes(ctx context.Context) ([]models.RewardType, error) {
	return c.adapter.RewardTypes(ctx)
}

func (c *catalogService) CreateRewardType(ctx context.Context, spec models.RewardTypeSpec) (models.RewardType, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return models.RewardType{}, ErrValidationEmptyName
	}
	return c.adapter.CreateRewardType(ctx, spec)
}

func (c *catalogService) UpdateRewardType(ctx context.Context, id uuid.UUID, spec models.RewardTypeSpec) (models.RewardType, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return models.RewardType{}, ErrValidationEmptyName
	}
	return c.adapter.UpdateRewardType(ctx, id, spec)
}

func (c *catalogService) DeleteRewardType(ctx context.Context, id uuid.UUID) error {
	return c.adapter.DeleteRewardType(ctx, id)
}

func (c *catalogService) Tags(ctx context.Context) ([]models.Tag, error) {
	return c.adapter.Tags(ctx)
}

func (c *catalogService) CreateTag(ctx context.Context, spec models.TagSpec) (models.Tag, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return models.Tag{}, ErrValidationEmptyName
	}
	return c.adapter.CreateTag(ctx, spec)
}

func (c *catalogService) UpdateTag(ctx context.Context, id uuid.UUID, spec models.TagSpec) (models.Tag, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return models.Tag{}, ErrValidationEmptyName
	}
	return c.adapter.UpdateTag(ctx, id, spec)
}

func (c *catalogService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return c.adapter.DeleteTag(ctx, id)
}

func (c *catalogService) TaskStatuses(ctx context.Context) ([]models.TaskStatus, error) {
	return c.adapter.TaskStatuses(ctx)
}

func (c *catalogService) CreateTaskStatus(ctx context.Context, spec models.TaskStatusSpec) (models.TaskStatus, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return models.TaskStatus{}, ErrValidationEmptyName
	}
	return c.adapter.CreateTaskStatus(ctx, spec)
}

func (c *catalogService) UpdateTaskStatus(ctx context.Context, id uuid.UUID, spec models.TaskStatusSpec) (models.TaskStatus, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return models.TaskStatus{}, ErrValidationEmptyName
	}
	return c.adapter.UpdateTaskStatus(ctx, id, spec)
}

func (c *catalogService) DeleteTaskStatus(ctx context.Context, id uuid.UUID) error {
	return c.adapter.DeleteTaskStatus(ctx, id)
}

func (c *catalogService) GrantReward(ctx context.Context, grant models.RewardGrant) (models.Reward, error) {
	reward, err := c.adapter.GrantReward(ctx, grant)
	if err != nil {
		return models.Reward{}, err
	}

	c.logger.Info().
		Str("user", grant.UserID.String()).
		Int("points", grant.PointsAmount).
		Msg("reward granted")
	return reward, nil
}
