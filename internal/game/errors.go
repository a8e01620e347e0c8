package game

import "errors"

var (
	// ErrNotModified is the benign edit conflict: the message already
	// holds the requested content. Callers treat it as a no-op.
	ErrNotModified = errors.New("message is not modified")

	// ErrIntervalTooShort rejects shuffle intervals below the floor.
	ErrIntervalTooShort = errors.New("shuffle interval below minimum")

	// ErrNoExamples means the usage log holds no answers for a phrase.
	ErrNoExamples = errors.New("no examples for phrase")
)
