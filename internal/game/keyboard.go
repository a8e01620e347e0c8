package game

// Callback actions carried on keyboard buttons. The transport renders
// them into whatever the chat platform uses for button payloads.
const (
	ActionStartGame       = "start_game"
	ActionLeaderboard     = "leaderboard"
	ActionChangePhrase    = "change_phrase"
	ActionShuffle         = "shuffle"
	ActionStopShuffle     = "stop_shuffle"
	ActionShowExample     = "show_example"
	ActionBackToMain      = "back_to_main"
	ActionAcceptChallenge = "accept_challenge"
	ActionAddPhrase       = "add_phrase"
	ActionTogglePrefix    = "toggle_"
)

// Button is one labeled action. Data rides along with the action for
// callbacks that need an argument (the current phrase, a pending key).
type Button struct {
	Text   string
	Action string
	Data   string
}

// Keyboard is a transport-neutral inline keyboard spec.
type Keyboard struct {
	Rows [][]Button
}

// RoundKeyboard builds the controls attached to a phrase message:
// hint, change-phrase and the shuffle toggle, each present only when
// the chat's settings enable it.
func RoundKeyboard(settings Settings, phrase string, shuffleActive bool) *Keyboard {
	row := []Button{}

	if settings.Hint {
		row = append(row, Button{Text: "🔥", Action: ActionShowExample, Data: phrase})
	}
	if settings.ChangePhrase {
		row = append(row, Button{Text: "🔄", Action: ActionChangePhrase})
	}
	if settings.Shuffle {
		if shuffleActive {
			row = append(row, Button{Text: "⏹️", Action: ActionStopShuffle})
		} else {
			row = append(row, Button{Text: "▶️", Action: ActionShuffle})
		}
	}

	return &Keyboard{Rows: [][]Button{row}}
}

// StartKeyboard is the single "play again" button under the game-over
// and leaderboard messages.
func StartKeyboard(label string) *Keyboard {
	return &Keyboard{Rows: [][]Button{{{Text: label, Action: ActionStartGame}}}}
}

// ExampleKeyboard drives the hint flow: another example, or back to
// the phrase.
func ExampleKeyboard(phrase string) *Keyboard {
	return &Keyboard{Rows: [][]Button{{
		{Text: "Ещё", Action: ActionShowExample, Data: phrase},
		{Text: "Назад", Action: ActionBackToMain, Data: phrase},
	}}}
}
