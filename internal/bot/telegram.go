package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/folyaev/FTGB/internal/game"
)

// telegramTransport adapts the bot API to the game's Transport
// boundary. The platform's "message is not modified" failure is mapped
// to game.ErrNotModified so the core can treat it as a no-op.
type telegramTransport struct {
	api *tgbotapi.BotAPI
}

func (t *telegramTransport) Send(chatID int64, text string, kb *game.Keyboard) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if kb != nil {
		msg.ReplyMarkup = renderKeyboard(kb)
	}
	sent, err := t.api.Send(msg)
	if err != nil {
		return 0, classify(err)
	}
	return sent.MessageID, nil
}

func (t *telegramTransport) Edit(chatID int64, messageID int, text string, kb *game.Keyboard) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	if kb != nil {
		markup := renderKeyboard(kb)
		edit.ReplyMarkup = &markup
	}
	_, err := t.api.Send(edit)
	return classify(err)
}

func (t *telegramTransport) EditKeyboard(chatID int64, messageID int, kb *game.Keyboard) error {
	markup := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
	if kb != nil {
		markup = renderKeyboard(kb)
	}
	_, err := t.api.Send(tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, markup))
	return classify(err)
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "message is not modified") {
		return game.ErrNotModified
	}
	return err
}

func renderKeyboard(kb *game.Keyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(kb.Rows))
	for _, row := range kb.Rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Text, encodeCallback(b)))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func encodeCallback(b game.Button) string {
	if b.Data == "" {
		return b.Action
	}
	return fmt.Sprintf("%s:%s", b.Action, b.Data)
}

func decodeCallback(data string) (action, arg string) {
	parts := strings.SplitN(data, ":", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}
