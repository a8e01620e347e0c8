package game

import (
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Send(chatID int64, text string, kb *Keyboard) (int, error) {
	args := m.Called(chatID, text, kb)
	return args.Int(0), args.Error(1)
}

func (m *MockTransport) Edit(chatID int64, messageID int, text string, kb *Keyboard) error {
	args := m.Called(chatID, messageID, text, kb)
	return args.Error(0)
}

func (m *MockTransport) EditKeyboard(chatID int64, messageID int, kb *Keyboard) error {
	args := m.Called(chatID, messageID, kb)
	return args.Error(0)
}

// PermissiveTransport answers every call with success and records it,
// for tests that assert on state rather than traffic.
func PermissiveTransport() *MockTransport {
	t := &MockTransport{}
	t.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(1, nil)
	t.On("Edit", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	t.On("EditKeyboard", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	return t
}

// fakeTickerFactory hands out bare channels so tests deliver ticks by
// hand and observe stops.
type fakeTickerFactory struct {
	locker  sync.Mutex
	created []chan time.Time
	stopped []bool
}

func (f *fakeTickerFactory) Create(d time.Duration) (<-chan time.Time, func()) {
	f.locker.Lock()
	defer f.locker.Unlock()
	ch := make(chan time.Time)
	idx := len(f.created)
	f.created = append(f.created, ch)
	f.stopped = append(f.stopped, false)
	return ch, func() {
		f.locker.Lock()
		defer f.locker.Unlock()
		f.stopped[idx] = true
	}
}

func (f *fakeTickerFactory) stopCount() int {
	f.locker.Lock()
	defer f.locker.Unlock()
	n := 0
	for _, s := range f.stopped {
		if s {
			n++
		}
	}
	return n
}
