package serviceImp

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishisahay/database"
	"krishisahay/entities"
	"krishisahay/pkg/chat"
	"krishisahay/pkg/chat/repositoryImp"
	svc "krishisahay/pkg/chat/service"
	"krishisahay/pkg/i18n"
)

func newService(t *testing.T, d Delays) svc.ChatService {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "chat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return New(repositoryImp.New(db), d, nil)
}

func TestSendExpert(t *testing.T) {
	s := newService(t, Delays{})
	ctx := context.Background()

	ex, err := s.Send(ctx, "sess-1", entities.PanelExpert, "  What will be the price of rice next month?  ", i18n.English)
	require.NoError(t, err)
	assert.Equal(t, entities.RoleUser, ex.Question.Role)
	assert.Equal(t, "What will be the price of rice next month?", ex.Question.Content)
	assert.Equal(t, entities.RoleAssistant, ex.Answer.Role)
	assert.Contains(t, ex.Answer.Content, "SELL signal")
	assert.Equal(t, "market", ex.Answer.Topic)
	assert.Empty(t, ex.Answer.Source)
	assert.NotEqual(t, ex.Question.ID, ex.Answer.ID)
}

func TestSendVerified(t *testing.T) {
	s := newService(t, Delays{Verified: 10 * time.Millisecond})

	start := time.Now()
	ex, err := s.Send(context.Background(), "sess-1", entities.PanelVerified, "urea dose?", i18n.Hindi)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	assert.Equal(t, entities.RoleSystem, ex.Answer.Role)
	assert.Equal(t, "FAISS + KCC Database", ex.Answer.Source)
	assert.Contains(t, ex.Answer.Content, "Fertilizer Application Guide")
	assert.Equal(t, "hi", ex.Answer.Language)
}

func TestSendValidation(t *testing.T) {
	s := newService(t, Delays{})
	ctx := context.Background()

	_, err := s.Send(ctx, "sess-1", entities.PanelExpert, "   ", i18n.English)
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)

	_, err = s.Send(ctx, "sess-1", "oracle", "hi", i18n.English)
	assert.ErrorIs(t, err, chat.ErrUnknownPanel)
}

func TestSendCancelledDuringDelay(t *testing.T) {
	s := newService(t, Delays{Expert: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	_, err := s.Send(ctx, "sess-1", entities.PanelExpert, "sell now?", i18n.English)
	require.ErrorIs(t, err, context.Canceled)

	hist, err := s.History(context.Background(), "sess-1", entities.PanelExpert)
	require.NoError(t, err)
	require.Len(t, hist, 1, "question stored, no answer")
	assert.Equal(t, entities.RoleUser, hist[0].Role)
}

func TestHistoryIsPerSessionAndPanel(t *testing.T) {
	s := newService(t, Delays{})
	ctx := context.Background()

	for _, q := range []string{"price?", "yellow leaves", "hello"} {
		_, err := s.Send(ctx, "a", entities.PanelExpert, q, i18n.English)
		require.NoError(t, err)
	}
	_, err := s.Send(ctx, "b", entities.PanelExpert, "other session", i18n.English)
	require.NoError(t, err)
	_, err = s.Send(ctx, "a", entities.PanelVerified, "other panel", i18n.English)
	require.NoError(t, err)

	hist, err := s.History(ctx, "a", entities.PanelExpert)
	require.NoError(t, err)
	require.Len(t, hist, 6)
	assert.Equal(t, "price?", hist[0].Content)
	assert.Equal(t, entities.RoleAssistant, hist[1].Role)
	assert.Equal(t, "hello", hist[4].Content)
	assert.Equal(t, "general", hist[5].Topic)

	_, err = s.History(ctx, "a", "oracle")
	assert.ErrorIs(t, err, chat.ErrUnknownPanel)
}

func TestWelcomeAndSuggestions(t *testing.T) {
	s := newService(t, Delays{})

	w, err := s.Welcome(entities.PanelExpert, i18n.Tamil)
	require.NoError(t, err)
	assert.Contains(t, w.Content, "வணக்கம்")

	w, err = s.Welcome(entities.PanelVerified, i18n.English)
	require.NoError(t, err)
	assert.Equal(t, "FAISS Knowledge Base", w.Source)
	assert.Equal(t, entities.RoleSystem, w.Role)

	sugg, err := s.Suggestions(entities.PanelVerified)
	require.NoError(t, err)
	assert.Len(t, sugg, 4)

	_, err = s.Welcome("oracle", i18n.English)
	assert.ErrorIs(t, err, chat.ErrUnknownPanel)
}
