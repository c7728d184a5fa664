package serviceImp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"krishisahay/entities"
	"krishisahay/pkg/advisory"
	"krishisahay/pkg/chat"
	"krishisahay/pkg/chat/repository"
	svc "krishisahay/pkg/chat/service"
	"krishisahay/pkg/i18n"
)

const historyLimit = 100

// Delays simulate the lookup time of each panel.
type Delays struct {
	Expert   time.Duration
	Verified time.Duration
}

type panel struct {
	responder *advisory.Responder
	delay     time.Duration
	role      entities.Role
}

type service struct {
	repo   repository.ChatRepository
	panels map[entities.Panel]panel
	log    *zap.Logger
	now    func() time.Time
}

func New(repo repository.ChatRepository, d Delays, log *zap.Logger) svc.ChatService {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		repo: repo,
		panels: map[entities.Panel]panel{
			entities.PanelExpert:   {responder: advisory.NewExpert(), delay: d.Expert, role: entities.RoleAssistant},
			entities.PanelVerified: {responder: advisory.NewVerified(), delay: d.Verified, role: entities.RoleSystem},
		},
		log: log,
		now: time.Now,
	}
}

func (s *service) panel(p entities.Panel) (panel, error) {
	cfg, ok := s.panels[p]
	if !ok {
		return panel{}, chat.ErrUnknownPanel
	}
	return cfg, nil
}

// Send stores the question, waits out the panel delay and stores the answer.
// A cancelled ctx leaves the question without an answer.
func (s *service) Send(ctx context.Context, sessionID string, p entities.Panel, text string, lang i18n.Language) (*svc.Exchange, error) {
	cfg, err := s.panel(p)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, chat.ErrEmptyMessage
	}

	q := entities.ChatMessage{
		ID:        newID(),
		SessionID: sessionID,
		Panel:     p,
		Role:      entities.RoleUser,
		Content:   text,
		Language:  string(lang),
		CreatedAt: s.now(),
	}
	if err := s.repo.Append(ctx, &q); err != nil {
		return nil, fmt.Errorf("store question: %w", err)
	}

	if cfg.delay > 0 {
		t := time.NewTimer(cfg.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	topic := cfg.responder.Classify(text)
	a := entities.ChatMessage{
		ID:        newID(),
		SessionID: sessionID,
		Panel:     p,
		Role:      cfg.role,
		Content:   cfg.responder.Respond(text, lang),
		Language:  string(lang),
		Source:    cfg.responder.Source(),
		Topic:     string(topic),
		CreatedAt: s.now(),
	}
	if err := s.repo.Append(ctx, &a); err != nil {
		return nil, fmt.Errorf("store answer: %w", err)
	}
	s.log.Debug("chat answered", zap.String("panel", string(p)), zap.String("topic", string(topic)), zap.String("lang", string(lang)))
	return &svc.Exchange{Question: q, Answer: a}, nil
}

func (s *service) History(ctx context.Context, sessionID string, p entities.Panel) ([]entities.ChatMessage, error) {
	if _, err := s.panel(p); err != nil {
		return nil, err
	}
	return s.repo.History(ctx, sessionID, p, historyLimit)
}

func (s *service) Welcome(p entities.Panel, lang i18n.Language) (*entities.ChatMessage, error) {
	cfg, err := s.panel(p)
	if err != nil {
		return nil, err
	}
	return &entities.ChatMessage{
		ID:        "welcome",
		Panel:     p,
		Role:      cfg.role,
		Content:   cfg.responder.Welcome(lang),
		Language:  string(lang),
		Source:    cfg.responder.WelcomeSource(),
		CreatedAt: s.now(),
	}, nil
}

func (s *service) Suggestions(p entities.Panel) ([]advisory.Suggestion, error) {
	cfg, err := s.panel(p)
	if err != nil {
		return nil, err
	}
	return cfg.responder.Suggestions(), nil
}

// newID returns a time-ordered id so equal timestamps still sort by insert.
func newID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
