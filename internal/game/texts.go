package game

import (
	"fmt"
	"strings"

	"github.com/folyaev/FTGB/internal/storage"
)

// The bot's voice. User-facing strings kept in one place.

const (
	WelcomeText = "Йау! Это бот Фоляйф!\n" +
		"Значит время играть.\n" +
		"Я выдаю тебе слова –\n" +
		"Надо их срифмовать!\n"

	HelpText = "При игре в чате – отвечай реплаем\n\n" +
		"Это игра для рифм гурмана:\n" +
		"Получаешь слово – срифмовать надо!\n" +
		"Оступишься раз и всё – конец раунда\n" +
		"Удачи там!"

	NearMissText = "Хорошая попытка, но нет."

	StartButtonText       = "🦅 Вперёд!"
	RetryButtonText       = "Сделать лучше 😎"
	HelpStartButtonText   = "🚀 Полетели"
	LeaderboardButtonText = "🏆 Чемпионы"
	AcceptButtonText      = "Accept ⬜️"
	AcceptedButtonText    = "Accepted ✅"
)

func PhraseText(phrase string) string {
	return fmt.Sprintf("<b>%s</b>", phrase)
}

func ChallengeText(challenge string) string {
	return fmt.Sprintf("<i>%s</i>", challenge)
}

func GameOverText(name string, score int) string {
	return fmt.Sprintf("%s, ты сделал всё, что мог!\nТвой счёт: %d", name, score)
}

func NoExamplesText(phrase string) string {
	return fmt.Sprintf("Чёт никто ничего не придумал на %s!", phrase)
}

// LeaderboardText renders the top list as a ranked block.
func LeaderboardText(entries []storage.LeaderboardEntry) string {
	var b strings.Builder
	b.WriteString("🏆 Чемпионы 🏆\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %s - %d\n", i+1, e.Username, e.Score)
	}
	return b.String()
}
