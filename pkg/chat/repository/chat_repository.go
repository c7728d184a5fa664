package repository

import (
	"context"

	"krishisahay/entities"
)

type ChatRepository interface {
	Append(ctx context.Context, msg *entities.ChatMessage) error
	History(ctx context.Context, sessionID string, panel entities.Panel, limit int) ([]entities.ChatMessage, error)
}
