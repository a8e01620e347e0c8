package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/folyaev/FTGB/internal/game"
	"github.com/folyaev/FTGB/internal/logger"
)

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.reply(msg.Chat.ID, game.WelcomeText, startGameMarkup())
	case "help":
		b.reply(msg.Chat.ID, game.HelpText, game.StartKeyboard(game.HelpStartButtonText))
	case "leaderboard":
		text, err := b.manager.LeaderboardText()
		if err != nil {
			logger.Criticalf("leaderboard read failed: %v", err)
			return
		}
		b.reply(msg.Chat.ID, text, game.StartKeyboard(game.RetryButtonText))
	case "settings":
		b.reply(msg.Chat.ID, "Настройки:", settingsKeyboard(b.manager.SettingsFor(msg.Chat.ID)))
	case "timer":
		b.handleTimerCommand(msg)
	case "add_phrase":
		b.handleAddPhraseCommand(msg)
	default:
		b.reply(msg.Chat.ID, "Чё?", nil)
	}
}

func (b *Bot) handleTimerCommand(msg *tgbotapi.Message) {
	seconds, err := strconv.Atoi(strings.TrimSpace(msg.CommandArguments()))
	if err != nil {
		b.reply(msg.Chat.ID, "Usage: /timer <seconds>", nil)
		return
	}
	if err := b.manager.SetShuffleInterval(msg.Chat.ID, seconds); err != nil {
		b.reply(msg.Chat.ID, fmt.Sprintf("Please enter a number greater than %d.", game.MinShuffleInterval), nil)
		return
	}
	b.reply(msg.Chat.ID, fmt.Sprintf("Shuffle interval updated to %d seconds.", seconds), nil)
}

func (b *Bot) handleAddPhraseCommand(msg *tgbotapi.Message) {
	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		b.reply(msg.Chat.ID, "Введите фразу после команды /add_phrase.", nil)
		return
	}
	for _, phrase := range strings.Split(args, ",") {
		if err := b.store.Add(phrase); err != nil {
			logger.Criticalf("phrase append failed: %v", err)
			return
		}
	}
	b.reply(msg.Chat.ID, "Добавлено!", nil)
}

// handleMessage treats free text as a round answer. In groups only
// replies to the bot's own messages count; everything else is chatter.
func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.Text == "" || msg.From == nil {
		return
	}
	if msg.Chat.IsGroup() || msg.Chat.IsSuperGroup() {
		if msg.ReplyToMessage == nil || msg.ReplyToMessage.From == nil || msg.ReplyToMessage.From.ID != b.api.Self.ID {
			return
		}
	} else if !msg.Chat.IsPrivate() {
		return
	}

	replyToID := 0
	if msg.ReplyToMessage != nil {
		replyToID = msg.ReplyToMessage.MessageID
	}

	key := game.SessionKey{ChatID: msg.Chat.ID, UserID: msg.From.ID}
	if err := b.manager.HandleAnswer(key, msg.From.FirstName, msg.Text, replyToID); err != nil {
		logger.Criticalf("answer handling failed: %v", err)
	}
}

func (b *Bot) handleCallback(q *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(q.ID, "")); err != nil {
		logger.Warningf("callback ack failed: %v", err)
	}
	if q.Message == nil || q.From == nil {
		return
	}

	chatID := q.Message.Chat.ID
	messageID := q.Message.MessageID
	key := game.SessionKey{ChatID: chatID, UserID: q.From.ID}

	action, arg := decodeCallback(q.Data)
	var err error
	switch {
	case action == game.ActionStartGame, action == game.ActionChangePhrase:
		err = b.manager.Advance(key, messageID)
	case action == game.ActionShuffle:
		err = b.manager.StartShuffle(key)
	case action == game.ActionStopShuffle:
		err = b.manager.StopShuffle(key)
	case action == game.ActionShowExample:
		if err = b.manager.ShowExample(key, messageID, arg); err == game.ErrNoExamples {
			err = nil
		}
	case action == game.ActionBackToMain:
		err = b.manager.BackToMain(key, messageID, arg)
	case action == game.ActionAcceptChallenge:
		err = b.manager.AcceptChallenge(key, messageID)
	case action == game.ActionLeaderboard:
		b.handleLeaderboardCallback(chatID, messageID)
	case action == game.ActionAddPhrase:
		b.handleAddPhraseCallback(chatID, messageID, arg)
	case strings.HasPrefix(action, game.ActionTogglePrefix):
		settings := b.manager.ToggleSetting(chatID, strings.TrimPrefix(action, game.ActionTogglePrefix))
		b.edit(chatID, messageID, "Настройки:", settingsKeyboard(settings))
	}
	if err != nil && err != game.ErrNotModified {
		logger.Criticalf("callback %q failed: %v", action, err)
	}
}

func (b *Bot) handleLeaderboardCallback(chatID int64, messageID int) {
	text, err := b.manager.LeaderboardText()
	if err != nil {
		logger.Criticalf("leaderboard read failed: %v", err)
		return
	}
	b.edit(chatID, messageID, text, game.StartKeyboard(game.RetryButtonText))
}

func (b *Bot) handleAddPhraseCallback(chatID int64, messageID int, pendingKey string) {
	b.locker.Lock()
	phrase, ok := b.pending[pendingKey]
	delete(b.pending, pendingKey)
	b.locker.Unlock()
	if !ok {
		b.edit(chatID, messageID, "Произошла ошибка. Попробуйте еще раз.", nil)
		return
	}
	if err := b.store.Add(phrase); err != nil {
		logger.Criticalf("phrase append failed: %v", err)
		return
	}
	b.edit(chatID, messageID, fmt.Sprintf("«%s» добавлено в базу и скоро будет доступно!", phrase), nil)
}

func (b *Bot) reply(chatID int64, text string, kb *game.Keyboard) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if kb != nil {
		msg.ReplyMarkup = renderKeyboard(kb)
	}
	if _, err := b.api.Send(msg); err != nil {
		logger.Criticalf("send failed for chat %d: %v", chatID, err)
	}
}

func (b *Bot) edit(chatID int64, messageID int, text string, kb *game.Keyboard) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	if kb != nil {
		markup := renderKeyboard(kb)
		edit.ReplyMarkup = &markup
	}
	if _, err := b.api.Send(edit); err != nil && classify(err) != game.ErrNotModified {
		logger.Criticalf("edit failed for chat %d: %v", chatID, err)
	}
}

func startGameMarkup() *game.Keyboard {
	return &game.Keyboard{Rows: [][]game.Button{
		{{Text: game.StartButtonText, Action: game.ActionStartGame}},
		{{Text: game.LeaderboardButtonText, Action: game.ActionLeaderboard}},
	}}
}

func settingsKeyboard(s game.Settings) *game.Keyboard {
	return &game.Keyboard{Rows: [][]game.Button{
		{{Text: "Подсказки: " + checkbox(s.Hint), Action: "toggle_hint"}},
		{{Text: "Сменить фразу: " + checkbox(s.ChangePhrase), Action: "toggle_change_phrase"}},
		{{Text: "Таймер: " + checkbox(s.Shuffle), Action: "toggle_shuffle"}},
		{{Text: "Additional Challenge: " + checkbox(s.AdditionalChallenge), Action: "toggle_additional_challenge"}},
	}}
}

func checkbox(on bool) string {
	if on {
		return "✅"
	}
	return "⬜️"
}
