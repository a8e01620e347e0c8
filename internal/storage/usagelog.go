package storage

import (
	"encoding/csv"
	"os"
	"strconv"
	"sync"
)

// Record is one accepted answer: who answered what to which phrase,
// and the score they held right after.
type Record struct {
	Username      string
	CurrentPhrase string
	UserMessage   string
	Score         int
}

// UsageLog is the append-only CSV history of accepted answers. Records
// are never rewritten; the log doubles as the leaderboard source and
// the phrase-frequency signal.
type UsageLog struct {
	path   string
	locker sync.Mutex
}

func NewUsageLog(path string) *UsageLog {
	return &UsageLog{path: path}
}

// Append writes one record. The write is serialized and flushed before
// returning, so concurrent sessions never interleave partial rows.
func (l *UsageLog) Append(rec Record) error {
	l.locker.Lock()
	defer l.locker.Unlock()

	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{rec.Username, rec.CurrentPhrase, rec.UserMessage, strconv.Itoa(rec.Score)}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// ReadAll returns every well-formed record in append order. Rows with
// fewer than four fields are skipped; a missing file reads as empty.
func (l *UsageLog) ReadAll() ([]Record, error) {
	l.locker.Lock()
	defer l.locker.Unlock()

	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	var records []Record
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		score, err := strconv.Atoi(row[3])
		if err != nil {
			continue
		}
		records = append(records, Record{
			Username:      row[0],
			CurrentPhrase: row[1],
			UserMessage:   row[2],
			Score:         score,
		})
	}
	return records, nil
}
