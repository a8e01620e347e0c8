package bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"github.com/folyaev/FTGB/internal/game"
	"github.com/folyaev/FTGB/internal/logger"
	"github.com/folyaev/FTGB/internal/phrases"
	"github.com/folyaev/FTGB/internal/storage"
)

// Bot is the Telegram side of the game: it pulls updates, routes them
// to the Manager and renders the Manager's keyboard specs.
type Bot struct {
	api     *tgbotapi.BotAPI
	manager *game.Manager
	store   *phrases.Store
	log     *storage.UsageLog

	locker   sync.Mutex
	limiters map[int64]*rate.Limiter
	// pending maps inline add-to-base keys to submitted phrases.
	pending map[string]string
}

// New builds the bot plus the transport the Manager talks back
// through. The Manager is created here so both sides share one
// transport.
func New(token string, store, challenges *phrases.Store, log *storage.UsageLog) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	transport := &telegramTransport{api: api}
	manager := game.NewManager(store, challenges, log, transport, game.NewTickerGen())

	return &Bot{
		api:      api,
		manager:  manager,
		store:    store,
		log:      log,
		limiters: make(map[int64]*rate.Limiter),
		pending:  make(map[string]string),
	}, nil
}

// Manager exposes the round state manager for shared wiring.
func (b *Bot) Manager() *game.Manager {
	return b.manager
}

// Run pulls updates until the channel closes. Updates for one chat are
// handled in arrival order.
func (b *Bot) Run() {
	logger.Infof("bot authorized as %s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	for update := range b.api.GetUpdatesChan(u) {
		b.dispatch(update)
	}
}

func (b *Bot) dispatch(update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		if !b.allow(update.Message.Chat.ID) {
			logger.Debugf("rate limited chat %d", update.Message.Chat.ID)
			return
		}
		if update.Message.IsCommand() {
			b.handleCommand(update.Message)
			return
		}
		b.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.InlineQuery != nil:
		b.handleInlineQuery(update.InlineQuery)
	}
}

// allow applies the per-chat token bucket.
func (b *Bot) allow(chatID int64) bool {
	b.locker.Lock()
	limiter, ok := b.limiters[chatID]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(2), 5)
		b.limiters[chatID] = limiter
	}
	b.locker.Unlock()
	return limiter.Allow()
}
