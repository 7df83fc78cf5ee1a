package adapter

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkazancev/gamideck/models"
)

// UpdateUser implements [AdminAPI] via PUT /admin/users/{id}.
func (h *httpServerAdapter) UpdateUser(ctx context.Context, id uuid.UUID, patch models.UserPatch) (models.User, error) {
	var user models.User
	if err := h.send(ctx, "PUT", fmt.Sprintf("/admin/users/%s", id), patch, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DeleteUser implements [AdminAPI] via DELETE /admin/users/{id}.
func (h *httpServerAdapter) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return h.send(ctx, "DELETE", fmt.Sprintf("/admin/users/%s", id), nil, nil)
}

// SendChat implements [ChatAPI] via POST /chat.
func (h *httpServerAdapter) SendChat(ctx context.Context, cmd models.ChatCommand) (models.ChatReply, error) {
	var reply models.ChatReply
	if err := h.send(ctx, "POST", "/chat", cmd, &reply); err != nil {
		return models.ChatReply{}, err
	}
	return reply, nil
}
