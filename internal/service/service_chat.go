package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pkazancev/gamideck/internal/adapter"
	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/models"
)

// ErrEmptyChatMessage is returned when the command text is blank.
var ErrEmptyChatMessage = errors.New("chat message must not be empty")

type chatService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewChatService constructs a [ChatService].
func NewChatService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ChatService {
	return &chatService{adapter: serverAdapter, logger: logger}
}

func (c *chatService) Send(ctx context.Context, message string, targets []uuid.UUID) (models.ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.ChatReply{}, ErrEmptyChatMessage
	}

	reply, err := c.adapter.SendChat(ctx, models.ChatCommand{Message: message, UserIDs: targets})
	if err != nil {
		return models.ChatReply{}, err
	}

	if reply.TaskCreated != nil {
		c.logger.Info().Str("task", reply.TaskCreated.Title).Msg("task created via assistant")
	}
	return reply, nil
}
