package phrases

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"github.com/folyaev/FTGB/internal/logger"
)

// DefaultPhrases is used when the backing file is missing or empty.
var DefaultPhrases = []string{
	"apple", "banana", "cherry", "pineapple", "grape",
	"I love programming", "Chatbot is fun", "Go is great",
}

// Store holds a line-delimited phrase list backed by a file.
// Player-submitted phrases are appended to both the file and memory.
type Store struct {
	path    string
	locker  sync.RWMutex
	phrases []string
}

// Open loads path, one phrase per line, skipping blank lines.
// A missing or empty file falls back to DefaultPhrases.
func Open(path string) *Store {
	s := &Store{path: path}
	s.phrases = loadLines(path)
	if len(s.phrases) == 0 {
		logger.Warningf("file %s not found or empty, using default phrases", path)
		s.phrases = append([]string(nil), DefaultPhrases...)
	}
	logger.Infof("phrases loaded from %s: %d", path, len(s.phrases))
	return s
}

func loadLines(path string) []string {
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		logger.Criticalf("error while reading file %s: %v", path, err)
	}
	return lines
}

// All returns a copy of the current phrase list.
func (s *Store) All() []string {
	s.locker.RLock()
	defer s.locker.RUnlock()
	return append([]string(nil), s.phrases...)
}

// Len reports the number of phrases.
func (s *Store) Len() int {
	s.locker.RLock()
	defer s.locker.RUnlock()
	return len(s.phrases)
}

// Add appends a phrase to the backing file and the in-memory list.
func (s *Store) Add(phrase string) error {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return nil
	}

	s.locker.Lock()
	defer s.locker.Unlock()

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.WriteString(phrase + "\n"); err != nil {
		return err
	}
	s.phrases = append(s.phrases, phrase)
	return nil
}
