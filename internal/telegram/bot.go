package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"peacey/internal/analytics"
	"peacey/internal/catalog"
	"peacey/internal/conversation"
	"peacey/internal/history"
	"peacey/internal/storage"
)

const (
	resetCmd    = "reset_conversation"
	packagesCmd = "show_packages"
)

const stillTypingText = "One moment, I'm still answering your previous message."

// Options wires the bot to its collaborators.
type Options struct {
	Responder     conversation.Responder
	Catalog       *catalog.Catalog
	AssistantName string
	TypingDelay   time.Duration
	Recorder      storage.Recorder
	AdminUserID   int64
}

// Bot serves the assistant over Telegram, one conversation per chat.
type Bot struct {
	api         *tgbotapi.BotAPI
	s           sender
	responder   conversation.Responder
	cat         *catalog.Catalog
	name        string
	delay       time.Duration
	history     *history.Manager
	recorder    storage.Recorder
	adminUserID int64
	now         func() time.Time
}

func New(botToken string, opts Options) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("init telegram api: %w", err)
	}
	b := newBot(botAPISender{api: api}, opts)
	b.api = api
	return b, nil
}

func newBot(s sender, opts Options) *Bot {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.AssistantName == "" {
		opts.AssistantName = "Peacey"
	}
	b := &Bot{
		s:           s,
		responder:   opts.Responder,
		cat:         opts.Catalog,
		name:        opts.AssistantName,
		delay:       opts.TypingDelay,
		recorder:    opts.Recorder,
		adminUserID: opts.AdminUserID,
		now:         func() time.Time { return time.Now().UTC() },
	}
	b.history = history.NewManager(b.newConversation)
	return b
}

func (b *Bot) newConversation(chatID int64) *conversation.Conversation {
	return conversation.New(b.responder, conversation.Greeting(b.name),
		conversation.WithDelay(b.delay),
		conversation.WithOnReply(func(user, reply conversation.Message) {
			b.deliverReply(chatID, user, reply)
		}),
	)
}

// Start polls for updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.history.CloseAll()

	logrus.WithField("bot", b.api.Self.UserName).Info("telegram bot started")
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message != nil {
				b.handleIncomingMessage(ctx, update.Message)
				continue
			}
			if update.CallbackQuery != nil {
				b.handleCallback(update.CallbackQuery)
			}
		}
	}
}

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}
	if strings.TrimSpace(msg.Text) == "" {
		return
	}

	chatID := msg.Chat.ID
	log := logrus.WithField("chat_id", chatID)
	if msg.From != nil {
		log = log.WithField("user_id", msg.From.ID)
	}
	log.Debugf("incoming message: %q", msg.Text)

	conv := b.history.Conversation(chatID)
	_, err := conv.Submit(msg.Text)
	switch {
	case err == nil:
		if _, err := b.s.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
			log.Debugf("failed to send typing action: %v", err)
		}
	case errors.Is(err, conversation.ErrReplyPending):
		b.sendMessage(chatID, stillTypingText)
	case errors.Is(err, conversation.ErrEmptyInput):
	default:
		log.Warnf("failed to submit message: %v", err)
	}
}

// deliverReply runs on the conversation timer once the assistant reply is appended.
func (b *Bot) deliverReply(chatID int64, user, reply conversation.Message) {
	msg := tgbotapi.NewMessage(chatID, reply.Content)
	msg.ReplyMarkup = b.menuKeyboard()
	if _, err := b.s.Send(msg); err != nil {
		logrus.WithField("chat_id", chatID).Errorf("failed to send reply: %v", err)
	}
	logrus.WithFields(logrus.Fields{"chat_id": chatID, "intent": reply.Intent}).Info("answered")

	if b.recorder == nil {
		return
	}
	ev := storage.NewEvent(chatID, user.Content, reply.Content, reply.Intent, reply.Matched)
	ev.Timestamp = b.now()
	if err := b.recorder.AppendInteraction(ev); err != nil {
		logrus.WithField("chat_id", chatID).Errorf("failed to record interaction: %v", err)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start":
		b.history.Reset(chatID)
		conv := b.history.Conversation(chatID)
		b.sendWithMenu(chatID, conv.Messages()[0].Content)
	case "help":
		b.sendWithMenu(chatID, b.helpText())
	case "packages":
		b.sendWithMenu(chatID, b.packagesText())
	case "reset":
		b.history.Reset(chatID)
		b.sendWithMenu(chatID, "Conversation cleared. "+conversation.Greeting(b.name))
	case "report":
		if msg.From == nil || b.adminUserID == 0 || msg.From.ID != b.adminUserID {
			logrus.WithField("chat_id", chatID).Warn("report requested by non-admin")
			return
		}
		text, err := b.dailyReport(b.now())
		if err != nil {
			b.sendMessage(chatID, "Report failed: "+err.Error())
			return
		}
		b.sendMessage(chatID, text)
	default:
		b.sendMessage(chatID, "Unknown command. Try /help.")
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if _, err := b.s.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		logrus.Debugf("failed to answer callback: %v", err)
	}
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	switch cb.Data {
	case resetCmd:
		b.history.Reset(chatID)
		b.sendWithMenu(chatID, "Conversation cleared. "+conversation.Greeting(b.name))
	case packagesCmd:
		b.sendWithMenu(chatID, b.packagesText())
	}
}

// SendDailyReport sends today's usage summary to the admin. It is the scheduler's job.
func (b *Bot) SendDailyReport(ctx context.Context) error {
	if b.adminUserID == 0 {
		logrus.Warn("ADMIN_USER not set, skipping daily report")
		return nil
	}
	text, err := b.dailyReport(b.now())
	if err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(b.adminUserID, text)
	if _, err := b.s.Send(msg); err != nil {
		return fmt.Errorf("send report: %w", err)
	}
	return nil
}

func (b *Bot) dailyReport(day time.Time) (string, error) {
	if b.recorder == nil {
		return "", errors.New("interaction log is not configured")
	}
	events, err := b.recorder.LoadInteractions()
	if err != nil {
		return "", fmt.Errorf("load interactions: %w", err)
	}
	return analytics.AnalyzeDailyLogs(events, day).GenerateReportSummary(), nil
}

func (b *Bot) helpText() string {
	return fmt.Sprintf("I'm %s. Just type your question, for example:\n"+
		"• How many packages do you have?\n"+
		"• Price of Package C\n"+
		"• What themes are available?\n"+
		"• What documents do I need?\n\n"+
		"Commands: /packages, /reset, /help", b.name)
}

func (b *Bot) packagesText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "We offer %d packages:\n", len(b.cat.Packages))
	for _, p := range b.cat.Packages {
		fmt.Fprintf(&sb, "- %s (%s)\n", p.Name, b.cat.Price(p))
	}
	sb.WriteString("Ask me about any of them, e.g. \"price of package A\".")
	return sb.String()
}

func (b *Bot) menuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Packages", packagesCmd),
			tgbotapi.NewInlineKeyboardButtonData("Start over", resetCmd),
		),
	)
}

func (b *Bot) sendWithMenu(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = b.menuKeyboard()
	if _, err := b.s.Send(msg); err != nil {
		logrus.WithField("chat_id", chatID).Errorf("failed to send message: %v", err)
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.s.Send(msg); err != nil {
		logrus.WithField("chat_id", chatID).Errorf("failed to send message: %v", err)
	}
}
