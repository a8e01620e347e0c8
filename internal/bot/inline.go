package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/folyaev/FTGB/internal/game"
	"github.com/folyaev/FTGB/internal/logger"
)

// handleInlineQuery offers logged rhymes for the queried phrase, or an
// add-to-base prompt when nobody has rhymed it yet. Submitted phrases
// wait in the pending map under an opaque key until the button press
// confirms them.
func (b *Bot) handleInlineQuery(q *tgbotapi.InlineQuery) {
	query := strings.TrimSpace(q.Query)
	if query == "" {
		return
	}

	records, err := b.log.ReadAll()
	if err != nil {
		logger.Criticalf("usage log read failed: %v", err)
		return
	}

	var results []interface{}
	for i, rec := range records {
		if !strings.EqualFold(rec.CurrentPhrase, query) {
			continue
		}
		article := tgbotapi.NewInlineQueryResultArticle(strconv.Itoa(i), rec.UserMessage, rec.UserMessage)
		article.Description = "Выбрать рифму"
		results = append(results, article)
	}

	if len(results) == 0 {
		pendingKey := uuid.NewString()
		b.locker.Lock()
		b.pending[pendingKey] = query
		b.locker.Unlock()

		article := tgbotapi.NewInlineQueryResultArticle(
			"0",
			fmt.Sprintf("На «%s» рифм нет", query),
			fmt.Sprintf("На «%s» рифм нет, добавить в базу?", query),
		)
		article.Description = "Добавить в базу"
		markup := renderKeyboard(&game.Keyboard{Rows: [][]game.Button{
			{{Text: "Добавить в базу", Action: game.ActionAddPhrase, Data: pendingKey}},
		}})
		article.ReplyMarkup = &markup
		results = append(results, article)
	}

	if _, err := b.api.Request(tgbotapi.InlineConfig{
		InlineQueryID: q.ID,
		Results:       results,
	}); err != nil {
		logger.Warningf("inline answer failed: %v", err)
	}
}
