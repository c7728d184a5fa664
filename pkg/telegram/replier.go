package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"krishisahay/entities"
	"krishisahay/pkg/chat"
	"krishisahay/pkg/chat/service"
	"krishisahay/pkg/i18n"
)

const helpText = "Available commands:\n" +
	"/start - Start the bot\n" +
	"/lang [code] - Choose en, hi, te or ta\n" +
	"/verified [question] - Answer from the verified knowledge base\n" +
	"/help - Show this help message\n\n" +
	"Any other message goes to the AI expert."

// Replier turns one incoming message into reply text. Language choice is
// remembered per chat.
type Replier struct {
	chat service.ChatService
	def  i18n.Language

	mu    sync.Mutex
	langs map[int64]i18n.Language
}

func NewReplier(chat service.ChatService, def i18n.Language) *Replier {
	return &Replier{chat: chat, def: def, langs: make(map[int64]i18n.Language)}
}

func (r *Replier) lang(chatID int64) i18n.Language {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.langs[chatID]; ok {
		return l
	}
	return r.def
}

func (r *Replier) setLang(chatID int64, l i18n.Language) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.langs[chatID] = l
}

func sessionID(chatID int64) string { return fmt.Sprintf("telegram:%d", chatID) }

func (r *Replier) Reply(ctx context.Context, m *tgbotapi.Message) (string, error) {
	if m.IsCommand() {
		return r.command(ctx, m)
	}
	return r.ask(ctx, m.Chat.ID, entities.PanelExpert, m.Text)
}

func (r *Replier) command(ctx context.Context, m *tgbotapi.Message) (string, error) {
	chatID := m.Chat.ID
	args := strings.TrimSpace(m.CommandArguments())

	switch m.Command() {
	case "start":
		w, err := r.chat.Welcome(entities.PanelExpert, r.lang(chatID))
		if err != nil {
			return "", err
		}
		return w.Content + "\n\n" + helpText, nil

	case "help":
		return helpText, nil

	case "lang":
		if args == "" {
			return "Current language: " + string(r.lang(chatID)) + "\n" + languageList(), nil
		}
		l, ok := i18n.ParseLanguage(args)
		if !ok {
			return fmt.Sprintf("Unsupported language '%s'.\n%s", args, languageList()), nil
		}
		r.setLang(chatID, l)
		for _, o := range i18n.Supported() {
			if o.Code == l {
				return "Language set to " + o.Native, nil
			}
		}
		return "Language set to " + string(l), nil

	case "verified":
		if args == "" {
			return "Please add a question. Example: /verified How to control pests in my crops?", nil
		}
		return r.ask(ctx, chatID, entities.PanelVerified, args)

	default:
		return "Unknown command. Use /help to see available commands.", nil
	}
}

func (r *Replier) ask(ctx context.Context, chatID int64, p entities.Panel, text string) (string, error) {
	ex, err := r.chat.Send(ctx, sessionID(chatID), p, text, r.lang(chatID))
	if errors.Is(err, chat.ErrEmptyMessage) {
		return "Please send your question as text.", nil
	}
	if err != nil {
		return "", err
	}
	return ex.Answer.Content, nil
}

func languageList() string {
	var b strings.Builder
	b.WriteString("Available languages:")
	for _, o := range i18n.Supported() {
		fmt.Fprintf(&b, "\n• %s - %s", o.Code, o.Native)
	}
	return b.String()
}
