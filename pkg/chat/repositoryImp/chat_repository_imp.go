package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"krishisahay/entities"
	"krishisahay/pkg/chat/repository"
)

type chatRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ChatRepository { return &chatRepo{db} }

func (r *chatRepo) Append(ctx context.Context, msg *entities.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// History returns the newest limit messages in chronological order.
func (r *chatRepo) History(ctx context.Context, sessionID string, panel entities.Panel, limit int) ([]entities.ChatMessage, error) {
	var out []entities.ChatMessage
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND panel = ?", sessionID, panel).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
