package game

import (
	"strings"
	"unicode/utf8"
)

// Verdict classifies a player's reply to the current phrase.
type Verdict int

const (
	Reject Verdict = iota
	NearMiss
	Accept
)

const acceptCoverage = 50

// Validate decides whether userMessage is an acceptable answer to
// currentPhrase. The reply is accepted when at least half of the
// phrase's distinct characters appear somewhere in it. A reply of
// exactly the phrase's length that still fails is a near miss.
// Matching folds case; lengths are in runes. An empty phrase always
// rejects — that is an upstream configuration error, not a game-over
// the player earned.
func Validate(userMessage, currentPhrase string) Verdict {
	phrase := strings.ToLower(currentPhrase)
	message := strings.ToLower(userMessage)

	phraseLen := utf8.RuneCountInString(phrase)
	if phraseLen == 0 {
		return Reject
	}
	messageLen := utf8.RuneCountInString(message)

	if messageLen >= phraseLen {
		distinct := make(map[rune]struct{}, phraseLen)
		for _, r := range phrase {
			distinct[r] = struct{}{}
		}

		matching := 0
		for r := range distinct {
			if strings.ContainsRune(message, r) {
				matching++
			}
		}

		if matching*100 >= acceptCoverage*len(distinct) {
			return Accept
		}
	}

	if messageLen == phraseLen {
		return NearMiss
	}
	return Reject
}
