package telegram

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishisahay/entities"
	"krishisahay/pkg/advisory"
	"krishisahay/pkg/chat/service"
	"krishisahay/pkg/i18n"
)

// fakeAPI serves the handful of Bot API methods the bot calls.
type fakeAPI struct {
	srv *httptest.Server

	mu      sync.Mutex
	pending []string
	sent    map[string]string
	nextID  int
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{sent: make(map[string]string)}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) queue(chatID int64, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.pending = append(f.pending, fmt.Sprintf(
		`{"update_id":%d,"message":{"message_id":%d,"date":0,"chat":{"id":%d,"type":"private"},"text":%q}}`,
		f.nextID, f.nextID, chatID, text))
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/botTEST/getMe":
		fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"KrishiSahay","username":"krishisahay_bot"}}`)
	case "/botTEST/getUpdates":
		f.mu.Lock()
		batch := f.pending
		f.pending = nil
		f.mu.Unlock()
		if len(batch) == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		fmt.Fprint(w, `{"ok":true,"result":[`)
		for i, u := range batch {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprint(w, u)
		}
		fmt.Fprint(w, `]}`)
	case "/botTEST/sendMessage":
		chatID := r.PostForm.Get("chat_id")
		f.mu.Lock()
		f.sent[chatID] = r.PostForm.Get("text")
		f.mu.Unlock()
		fmt.Fprintf(w, `{"ok":true,"result":{"message_id":99,"date":0,"chat":{"id":%s,"type":"private"}}}`, chatID)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeAPI) replies() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.sent))
	for k, v := range f.sent {
		out[k] = v
	}
	return out
}

func (f *fakeAPI) bot(t *testing.T, chat service.ChatService) *Bot {
	t.Helper()
	api, err := tgbotapi.NewBotAPIWithClient("TEST", f.srv.URL+"/bot%s/%s", f.srv.Client())
	require.NoError(t, err)
	return NewBotWithAPI(api, NewReplier(chat, i18n.English), nil)
}

// gatedChat answers only once `want` questions are waiting at the same time,
// or fails them when ctx ends first.
type gatedChat struct {
	want    int32
	waiting atomic.Int32
	release chan struct{}
	once    sync.Once
}

func newGatedChat(want int32) *gatedChat {
	return &gatedChat{want: want, release: make(chan struct{})}
}

func (g *gatedChat) Send(ctx context.Context, sessionID string, panel entities.Panel, text string, lang i18n.Language) (*service.Exchange, error) {
	if g.waiting.Add(1) >= g.want {
		g.once.Do(func() { close(g.release) })
	}
	select {
	case <-g.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &service.Exchange{Answer: entities.ChatMessage{Content: "answer for " + sessionID}}, nil
}

func (g *gatedChat) History(context.Context, string, entities.Panel) ([]entities.ChatMessage, error) {
	return nil, nil
}

func (g *gatedChat) Welcome(entities.Panel, i18n.Language) (*entities.ChatMessage, error) {
	return &entities.ChatMessage{Content: "welcome"}, nil
}

func (g *gatedChat) Suggestions(entities.Panel) ([]advisory.Suggestion, error) { return nil, nil }

func TestRunAnswersChatsConcurrently(t *testing.T) {
	api := newFakeAPI(t)
	b := api.bot(t, newGatedChat(2))

	api.queue(101, "price of wheat?")
	api.queue(202, "blight on tomato?")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	// both questions must be held open together for either to be answered
	assert.Eventually(t, func() bool { return len(api.replies()) == 2 }, 3*time.Second, 10*time.Millisecond)
	got := api.replies()
	assert.Equal(t, "answer for telegram:101", got["101"])
	assert.Equal(t, "answer for telegram:202", got["202"])

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunShutdownSkipsErrorReply(t *testing.T) {
	api := newFakeAPI(t)
	chat := newGatedChat(100)
	b := api.bot(t, chat)

	api.queue(303, "will it rain?")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	require.Eventually(t, func() bool { return chat.waiting.Load() == 1 }, 3*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	// Run waits for the handler, so nothing can be sent after it returns
	assert.Empty(t, api.replies())
}
