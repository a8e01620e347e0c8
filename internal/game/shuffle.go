package game

import (
	"sync"
	"time"

	"github.com/folyaev/FTGB/internal/logger"
)

// shuffleHandle is one armed shuffle timer. stop is idempotent; the
// loop goroutine exits on done.
type shuffleHandle struct {
	ticks      <-chan time.Time
	stopTicker func()
	done       chan struct{}
	once       sync.Once
}

func (h *shuffleHandle) stop() {
	h.once.Do(func() {
		h.stopTicker()
		close(h.done)
	})
}

// StartShuffle arms the repeating phrase swap for a session. Any
// previously armed timer is cancelled first, so at most one timer ever
// runs per session. The shuffle button on the standing message flips
// to its stop form.
func (m *Manager) StartShuffle(key SessionKey) error {
	m.locker.Lock()
	defer m.locker.Unlock()

	sess := m.session(key)
	settings := m.settingsFor(key.ChatID)

	m.stopShuffleLocked(sess)

	ticks, stopTicker := m.tickers.Create(time.Duration(settings.ShuffleInterval) * time.Second)
	h := &shuffleHandle{ticks: ticks, stopTicker: stopTicker, done: make(chan struct{})}
	sess.shuffle = h
	sess.ShuffleActive = true

	go m.shuffleLoop(key, h)

	kb := RoundKeyboard(*settings, sess.CurrentPhrase, true)
	if err := m.transport.EditKeyboard(key.ChatID, sess.MessageID, kb); err != nil && err != ErrNotModified {
		return err
	}
	return nil
}

// StopShuffle cancels the session's timer. Stopping an idle or
// already-stopped shuffle is a no-op.
func (m *Manager) StopShuffle(key SessionKey) error {
	m.locker.Lock()
	defer m.locker.Unlock()

	sess := m.session(key)
	wasActive := sess.shuffle != nil
	m.stopShuffleLocked(sess)
	if !wasActive {
		return nil
	}

	settings := m.settingsFor(key.ChatID)
	kb := RoundKeyboard(*settings, sess.CurrentPhrase, false)
	if err := m.transport.EditKeyboard(key.ChatID, sess.MessageID, kb); err != nil && err != ErrNotModified {
		return err
	}
	return nil
}

func (m *Manager) stopShuffleLocked(sess *Session) {
	if sess.shuffle != nil {
		sess.shuffle.stop()
		sess.shuffle = nil
	}
	sess.ShuffleActive = false
}

func (m *Manager) shuffleLoop(key SessionKey, h *shuffleHandle) {
	for {
		select {
		case <-h.done:
			return
		case <-h.ticks:
			m.shuffleTick(key, h)
		}
	}
}

// shuffleTick swaps the displayed phrase in place. A tick from a
// handle that is no longer the session's current one is stale and
// ignored — a cancelled timer must never commit a phrase.
func (m *Manager) shuffleTick(key SessionKey, h *shuffleHandle) {
	m.locker.Lock()
	defer m.locker.Unlock()

	sess := m.session(key)
	if sess.shuffle != h {
		return
	}

	available := m.availableLocked(sess, m.store.All())
	phrase := m.draw(available, sess.CurrentPhrase)
	sess.CurrentPhrase = phrase

	settings := m.settingsFor(key.ChatID)
	kb := RoundKeyboard(*settings, phrase, true)
	if err := m.transport.Edit(key.ChatID, sess.MessageID, PhraseText(phrase), kb); err != nil && err != ErrNotModified {
		logger.Criticalf("shuffle edit failed for chat %d: %v", key.ChatID, err)
	}
}
