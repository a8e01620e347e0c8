package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/folyaev/FTGB/internal/logger"
	"github.com/folyaev/FTGB/internal/phrases"
	"github.com/folyaev/FTGB/internal/storage"
)

// candidateWindow caps the phrase pool considered for a draw to the
// least-used entries, so a large phrase base never gets shuffled whole.
const candidateWindow = 1000

// Manager owns every session and settings record and runs the round
// state machine. All session mutation happens under its lock, which
// linearizes answer handling against shuffle ticks.
type Manager struct {
	locker sync.Mutex

	store      *phrases.Store
	challenges *phrases.Store
	log        *storage.UsageLog
	transport  Transport
	tickers    TickerFactory
	rng        *rand.Rand

	sessions map[SessionKey]*Session
	settings map[int64]*Settings
}

func NewManager(store, challenges *phrases.Store, log *storage.UsageLog, transport Transport, tickers TickerFactory) *Manager {
	return &Manager{
		store:      store,
		challenges: challenges,
		log:        log,
		transport:  transport,
		tickers:    tickers,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		sessions:   make(map[SessionKey]*Session),
		settings:   make(map[int64]*Settings),
	}
}

func (m *Manager) session(key SessionKey) *Session {
	sess, ok := m.sessions[key]
	if !ok {
		sess = newSession()
		m.sessions[key] = sess
	}
	return sess
}

func (m *Manager) settingsFor(chatID int64) *Settings {
	s, ok := m.settings[chatID]
	if !ok {
		def := DefaultSettings()
		s = &def
		m.settings[chatID] = s
	}
	return s
}

// SettingsFor returns a copy of the chat's settings, defaults applied.
func (m *Manager) SettingsFor(chatID int64) Settings {
	m.locker.Lock()
	defer m.locker.Unlock()
	return *m.settingsFor(chatID)
}

// ToggleSetting flips one boolean setting and returns the new state.
func (m *Manager) ToggleSetting(chatID int64, key string) Settings {
	m.locker.Lock()
	defer m.locker.Unlock()

	s := m.settingsFor(chatID)
	switch key {
	case "hint":
		s.Hint = !s.Hint
	case "change_phrase":
		s.ChangePhrase = !s.ChangePhrase
	case "shuffle":
		s.Shuffle = !s.Shuffle
	case "additional_challenge":
		s.AdditionalChallenge = !s.AdditionalChallenge
	}
	return *s
}

// SetShuffleInterval updates the shuffle period. Values below the
// floor are rejected, never clamped.
func (m *Manager) SetShuffleInterval(chatID int64, seconds int) error {
	if seconds < MinShuffleInterval {
		return ErrIntervalTooShort
	}
	m.locker.Lock()
	defer m.locker.Unlock()
	m.settingsFor(chatID).ShuffleInterval = seconds
	return nil
}

// Advance starts the next round: picks a fresh phrase, resets round
// flags, cancels any running shuffle and delivers the phrase message.
// When editMessageID is non-zero the standing message is edited in
// place instead of sending a new one.
func (m *Manager) Advance(key SessionKey, editMessageID int) error {
	m.locker.Lock()
	defer m.locker.Unlock()
	return m.advanceLocked(key, editMessageID)
}

func (m *Manager) advanceLocked(key SessionKey, editMessageID int) error {
	sess := m.session(key)
	settings := m.settingsFor(key.ChatID)

	sess.GameOverSent = false
	sess.ChallengeStatus = ChallengeNone
	sess.AcceptedChallengeID = 0

	universe := m.store.All()
	available := m.availableLocked(sess, universe)

	records, err := m.log.ReadAll()
	if err != nil {
		logger.Warningf("usage log read failed, skipping frequency bias: %v", err)
	}
	ranked := storage.Rank(available, storage.Frequencies(records))
	pool := ranked
	if len(pool) > candidateWindow {
		pool = pool[:candidateWindow]
	}

	phrase := m.draw(pool, sess.CurrentPhrase)

	sess.UsedPhrases[phrase] = struct{}{}
	sess.CurrentPhrase = phrase
	sess.ShownExamples = make(map[string]struct{})
	m.stopShuffleLocked(sess)

	kb := RoundKeyboard(*settings, phrase, false)
	if editMessageID != 0 {
		if err := m.transport.Edit(key.ChatID, editMessageID, PhraseText(phrase), kb); err != nil && err != ErrNotModified {
			return err
		}
		sess.MessageID = editMessageID
	} else {
		id, err := m.transport.Send(key.ChatID, PhraseText(phrase), kb)
		if err != nil {
			return err
		}
		sess.MessageID = id
	}

	if settings.AdditionalChallenge {
		m.sendChallengeLocked(key, sess)
	}
	return nil
}

// availableLocked applies the exhaustion rule: once every phrase has
// been used, the used set clears and the whole universe is back in
// play.
func (m *Manager) availableLocked(sess *Session, universe []string) []string {
	available := make([]string, 0, len(universe))
	for _, p := range universe {
		if _, used := sess.UsedPhrases[p]; !used {
			available = append(available, p)
		}
	}
	if len(available) == 0 {
		sess.UsedPhrases = make(map[string]struct{})
		available = append(available, universe...)
	}
	return available
}

// draw picks uniformly from pool, resampling while the pick equals
// avoid. Retries are bounded by the pool size so a one-element pool
// terminates by accepting the repeat.
func (m *Manager) draw(pool []string, avoid string) string {
	phrase := pool[m.rng.Intn(len(pool))]
	for retries := 0; phrase == avoid && retries < len(pool)-1; retries++ {
		phrase = pool[m.rng.Intn(len(pool))]
	}
	return phrase
}

func (m *Manager) sendChallengeLocked(key SessionKey, sess *Session) {
	pool := m.challenges.All()
	if len(pool) == 0 {
		return
	}
	challenge := pool[m.rng.Intn(len(pool))]
	kb := &Keyboard{Rows: [][]Button{{{Text: AcceptButtonText, Action: ActionAcceptChallenge}}}}
	if _, err := m.transport.Send(key.ChatID, ChallengeText(challenge), kb); err != nil {
		logger.Criticalf("challenge send failed: %v", err)
		return
	}
	sess.ChallengeStatus = ChallengeSent
}

// AcceptChallenge marks the bonus challenge as taken and remembers the
// challenge message so the answering reply can be matched to it.
func (m *Manager) AcceptChallenge(key SessionKey, messageID int) error {
	m.locker.Lock()
	defer m.locker.Unlock()

	sess := m.session(key)
	sess.ChallengeStatus = ChallengeAccepted
	sess.AcceptedChallengeID = messageID

	kb := &Keyboard{Rows: [][]Button{{{Text: AcceptedButtonText, Action: ActionAcceptChallenge}}}}
	if err := m.transport.EditKeyboard(key.ChatID, messageID, kb); err != nil && err != ErrNotModified {
		return err
	}
	return nil
}

// HandleAnswer runs the answer-submission transition. replyToID is the
// message the player replied to (0 when none).
func (m *Manager) HandleAnswer(key SessionKey, username, text string, replyToID int) error {
	m.locker.Lock()
	defer m.locker.Unlock()

	sess := m.session(key)

	switch Validate(text, sess.CurrentPhrase) {
	case Accept:
		return m.acceptLocked(key, sess, username, text, replyToID)
	case NearMiss:
		_, err := m.transport.Send(key.ChatID, NearMissText, nil)
		return err
	default:
		return m.gameOverLocked(key, sess, username)
	}
}

func (m *Manager) acceptLocked(key SessionKey, sess *Session, username, text string, replyToID int) error {
	phrase := sess.CurrentPhrase
	sess.Score++
	if sess.ChallengeStatus == ChallengeAccepted && replyToID != 0 && replyToID == sess.AcceptedChallengeID {
		sess.Score++
	}
	sess.ChallengeStatus = ChallengeNone
	sess.AcceptedChallengeID = 0

	if err := m.log.Append(storage.Record{
		Username:      username,
		CurrentPhrase: phrase,
		UserMessage:   text,
		Score:         sess.Score,
	}); err != nil {
		logger.Criticalf("usage log append failed: %v", err)
	}

	m.stopShuffleLocked(sess)

	if err := m.advanceLocked(key, 0); err != nil {
		return err
	}

	// The answered message keeps its text but loses its buttons.
	if replyToID != 0 {
		if err := m.transport.EditKeyboard(key.ChatID, replyToID, nil); err != nil && err != ErrNotModified {
			logger.Warningf("strip keyboard failed: %v", err)
		}
	}
	return nil
}

func (m *Manager) gameOverLocked(key SessionKey, sess *Session, username string) error {
	m.stopShuffleLocked(sess)

	score := sess.Score
	sess.Score = 0

	if sess.GameOverSent {
		return nil
	}
	sess.GameOverSent = true

	_, err := m.transport.Send(key.ChatID, GameOverText(username, score), StartKeyboard(RetryButtonText))
	return err
}

// ShowExample edits the phrase message into a random logged answer for
// phrase, cycling through distinct examples before repeating any.
func (m *Manager) ShowExample(key SessionKey, messageID int, phrase string) error {
	m.locker.Lock()
	defer m.locker.Unlock()

	sess := m.session(key)

	records, err := m.log.ReadAll()
	if err != nil {
		return err
	}
	var matching []string
	for _, rec := range records {
		if rec.CurrentPhrase == phrase {
			matching = append(matching, rec.UserMessage)
		}
	}
	if len(matching) == 0 {
		if err := m.transport.Edit(key.ChatID, messageID, NoExamplesText(phrase), nil); err != nil && err != ErrNotModified {
			return err
		}
		return ErrNoExamples
	}

	if len(sess.ShownExamples) >= len(matching) {
		sess.ShownExamples = make(map[string]struct{})
	}
	unshown := make([]string, 0, len(matching))
	for _, ex := range matching {
		if _, shown := sess.ShownExamples[ex]; !shown {
			unshown = append(unshown, ex)
		}
	}
	if len(unshown) == 0 {
		// Duplicate answers in the log can exhaust the distinct set
		// early; cycle over.
		sess.ShownExamples = make(map[string]struct{})
		unshown = matching
	}
	example := unshown[m.rng.Intn(len(unshown))]
	sess.ShownExamples[example] = struct{}{}

	if err := m.transport.Edit(key.ChatID, messageID, example, ExampleKeyboard(phrase)); err != nil && err != ErrNotModified {
		return err
	}
	return nil
}

// BackToMain restores the phrase message after the hint flow.
func (m *Manager) BackToMain(key SessionKey, messageID int, phrase string) error {
	m.locker.Lock()
	defer m.locker.Unlock()

	settings := m.settingsFor(key.ChatID)
	sess := m.session(key)
	kb := RoundKeyboard(*settings, phrase, sess.ShuffleActive)
	if err := m.transport.Edit(key.ChatID, messageID, PhraseText(phrase), kb); err != nil && err != ErrNotModified {
		return err
	}
	return nil
}

// LeaderboardText renders the current top list from the usage log.
func (m *Manager) LeaderboardText() (string, error) {
	records, err := m.log.ReadAll()
	if err != nil {
		return "", err
	}
	return LeaderboardText(storage.BuildLeaderboard(records)), nil
}
