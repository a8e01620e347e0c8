package game

// SessionKey identifies a player's session within a chat.
type SessionKey struct {
	ChatID int64
	UserID int64
}

// ChallengeStatus tracks the lifecycle of the optional bonus challenge.
type ChallengeStatus int

const (
	ChallengeNone ChallengeStatus = iota
	ChallengeSent
	ChallengeAccepted
)

// Session is one player's round state. It is plain data owned by the
// Manager and mutated only under the Manager's lock.
type Session struct {
	CurrentPhrase       string
	UsedPhrases         map[string]struct{}
	Score               int
	ShuffleActive       bool
	ShownExamples       map[string]struct{}
	ChallengeStatus     ChallengeStatus
	AcceptedChallengeID int
	GameOverSent        bool

	// MessageID is the standing phrase message, the one shuffle edits.
	MessageID int

	shuffle *shuffleHandle
}

func newSession() *Session {
	return &Session{
		UsedPhrases:   make(map[string]struct{}),
		ShownExamples: make(map[string]struct{}),
	}
}

// Settings is the per-chat configuration surface.
type Settings struct {
	Hint                bool
	ChangePhrase        bool
	Shuffle             bool
	ShuffleInterval     int
	AdditionalChallenge bool
}

// MinShuffleInterval is the interval floor, in seconds.
const MinShuffleInterval = 10

// DefaultSettings applies whenever a chat has none stored.
func DefaultSettings() Settings {
	return Settings{
		Hint:            true,
		ChangePhrase:    true,
		Shuffle:         true,
		ShuffleInterval: MinShuffleInterval,
	}
}
