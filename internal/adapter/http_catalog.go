package adapter

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkazancev/gamideck/models"
)

func (h *httpServerAdapter) RewardTypes(ctx context.Context) ([]models.RewardType, error) {
	var types []models.RewardType
	if err := h.send(ctx, "GET", "/reward-types", nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (h *httpServerAdapter) CreateRewardType(ctx context.Context, spec models.RewardTypeSpec) (models.RewardType, error) {
	var rt models.RewardType
	if err := h.send(ctx, "POST", "/reward-types", spec, &rt); err != nil {
		return models.RewardType{}, err
	}
	return rt, nil
}

func (h *httpServerAdapter) UpdateRewardType(ctx context.Context, id uuid.UUID, spec models.RewardTypeSpec) (models.RewardType, error) {
	var rt models.RewardType
	if err := h.send(ctx, "PUT", fmt.Sprintf("/reward-types/%s", id), spec, &rt); err != nil {
		return models.RewardType{}, err
	}
	return rt, nil
}

func (h *httpServerAdapter) DeleteRewardType(ctx context.Context, id uuid.UUID) error {
	return h.send(ctx, "DELETE", fmt.Sprintf("/reward-types/%s", id), nil, nil)
}

func (h *httpServerAdapter) Tags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := h.send(ctx, "GET", "/tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (h *httpServerAdapter) CreateTag(ctx context.Context, spec models.TagSpec) (models.Tag, error) {
	var tag models.Tag
	if err := h.send(ctx, "POST", "/tags", spec, &tag); err != nil {
		return models.Tag{}, err
	}
	return tag, nil
}

func (h *httpServerAdapter) UpdateTag(ctx context.Context, id uuid.UUID, spec models.TagSpec) (models.Tag, error) {
	var tag models.Tag
	if err := h.send(ctx, "PUT", fmt.Sprintf("/tags/%s", id), spec, &tag); err != nil {
		return models.Tag{}, err
	}
	return tag, nil
}

func (h *httpServerAdapter) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return h.send(ctx, "DELETE", fmt.Sprintf("/tags/%s", id), nil, nil)
}

func (h *httpServerAdapter) TaskStatuses(ctx context.Context) ([]models.TaskStatus, error) {
	var statuses []models.TaskStatus
	if err := h.send(ctx, "GET", "/task-statuses", nil, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

func (h *httpServerAdapter) CreateTaskStatus(ctx context.Context, spec models.TaskStatusSpec) (models.TaskStatus, error) {
	var status models.TaskStatus
	if err := h.send(ctx, "POST", "/task-statuses", spec, &status); err != nil {
		return models.TaskStatus{}, err
	}
	return status, nil
}

func (h *httpServerAdapter) UpdateTaskStatus(ctx context.Context, id uuid.UUID, spec models.TaskStatusSpec) (models.TaskStatus, error) {
	var status models.TaskStatus
	if err := h.send(ctx, "PUT", fmt.Sprintf("/task-statuses/%s", id), spec, &status); err != nil {
		return models.TaskStatus{}, err
	}
	return status, nil
}

func (h *httpServerAdapter) DeleteTaskStatus(ctx context.Context, id uuid.UUID) error {
	return h.send(ctx, "DELETE", fmt.Sprintf("/task-statuses/%s", id), nil, nil)
}

// GrantReward implements [CatalogAPI] via POST /rewards.
func (h *httpServerAdapter) GrantReward(ctx context.Context, grant models.RewardGrant) (models.Reward, error) {
	var reward models.Reward
	if err := h.send(ctx, "POST", "/rewards", grant, &reward); err != nil {
		return models.Reward{}, err
	}
	return reward, nil
}
