package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempLog(t *testing.T) *UsageLog {
	t.Helper()
	return NewUsageLog(filepath.Join(t.TempDir(), "user_data.csv"))
}

func TestUsageLog_AppendAndReadBack(t *testing.T) {
	t.Parallel()
	log := tempLog(t)

	records := []Record{
		{Username: "Вася", CurrentPhrase: "кот", UserMessage: "бегемот", Score: 1},
		{Username: "Петя", CurrentPhrase: "дом", UserMessage: "объём, запятая", Score: 2},
	}
	for _, rec := range records {
		require.NoError(t, log.Append(rec))
	}

	got, err := log.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, records, got, "log order must be append order")
}

func TestUsageLog_MissingFileReadsEmpty(t *testing.T) {
	t.Parallel()
	got, err := tempLog(t).ReadAll()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUsageLog_SkipsMalformedRows(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "user_data.csv")
	require.NoError(t, os.WriteFile(path, []byte("Вася,кот,бегемот,3\nоборванная строка\nПетя,дом,том,not-a-number\nПетя,дом,том,2\n"), 0o644))

	got, err := NewUsageLog(path).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{Username: "Вася", CurrentPhrase: "кот", UserMessage: "бегемот", Score: 3},
		{Username: "Петя", CurrentPhrase: "дом", UserMessage: "том", Score: 2},
	}, got)
}

func TestUsageLog_ConcurrentAppendsKeepRowsWhole(t *testing.T) {
	t.Parallel()
	log := tempLog(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, log.Append(Record{Username: "Вася", CurrentPhrase: "кот", UserMessage: "бегемот", Score: 1}))
		}()
	}
	wg.Wait()

	got, err := log.ReadAll()
	require.NoError(t, err)
	require.Len(t, got, 20)
	for _, rec := range got {
		assert.Equal(t, Record{Username: "Вася", CurrentPhrase: "кот", UserMessage: "бегемот", Score: 1}, rec)
	}
}
