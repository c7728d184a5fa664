package service

import (
	"context"

	"krishisahay/entities"
	"krishisahay/pkg/advisory"
	"krishisahay/pkg/i18n"
)

// Exchange is one question and the answer it produced.
type Exchange struct {
	Question entities.ChatMessage `json:"question"`
	Answer   entities.ChatMessage `json:"answer"`
}

type ChatService interface {
	Send(ctx context.Context, sessionID string, panel entities.Panel, text string, lang i18n.Language) (*Exchange, error)
	History(ctx context.Context, sessionID string, panel entities.Panel) ([]entities.ChatMessage, error)
	Welcome(panel entities.Panel, lang i18n.Language) (*entities.ChatMessage, error)
	Suggestions(panel entities.Panel) ([]advisory.Suggestion, error)
}
