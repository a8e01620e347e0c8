package game

import "time"

// Transport delivers and edits chat messages. Texts are HTML-formatted.
// Implementations must return ErrNotModified (possibly wrapped) for the
// platform's "content unchanged" edit failure.
type Transport interface {
	// Send delivers a message and returns its id.
	Send(chatID int64, text string, kb *Keyboard) (int, error)
	// Edit replaces a message's text and keyboard in place.
	Edit(chatID int64, messageID int, text string, kb *Keyboard) error
	// EditKeyboard replaces only the keyboard. A nil keyboard strips
	// the controls.
	EditKeyboard(chatID int64, messageID int, kb *Keyboard) error
}

// TickerFactory creates the repeating channels that drive shuffle.
// Tests substitute channel-backed fakes to step ticks by hand.
type TickerFactory interface {
	Create(d time.Duration) (ticks <-chan time.Time, stop func())
}

type tickerGen struct{}

// NewTickerGen returns the real time.Ticker-backed factory.
func NewTickerGen() TickerFactory {
	return tickerGen{}
}

func (tickerGen) Create(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}
