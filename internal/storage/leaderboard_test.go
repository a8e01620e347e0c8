package storage

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLeaderboard(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc    string
		records []Record
		want    []LeaderboardEntry
	}{
		{
			desc: "keeps the maximum score, not the sum or the latest",
			records: []Record{
				{Username: "A", CurrentPhrase: "x", UserMessage: "y", Score: 3},
				{Username: "A", CurrentPhrase: "x", UserMessage: "z", Score: 5},
				{Username: "B", CurrentPhrase: "x", UserMessage: "y", Score: 4},
				{Username: "A", CurrentPhrase: "x", UserMessage: "w", Score: 1},
			},
			want: []LeaderboardEntry{{Username: "A", Score: 5}, {Username: "B", Score: 4}},
		},
		{
			desc: "ties keep first-encounter order",
			records: []Record{
				{Username: "B", Score: 4},
				{Username: "A", Score: 4},
			},
			want: []LeaderboardEntry{{Username: "B", Score: 4}, {Username: "A", Score: 4}},
		},
		{
			desc:    "empty log yields an empty board",
			records: nil,
			want:    []LeaderboardEntry{},
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert.Equal(t, tC.want, BuildLeaderboard(tC.records))
		})
	}
}

func TestBuildLeaderboard_TopFiveOnly(t *testing.T) {
	t.Parallel()

	var records []Record
	for i := 1; i <= 8; i++ {
		records = append(records, Record{Username: "user" + strconv.Itoa(i), Score: i})
	}

	got := BuildLeaderboard(records)
	assert.Len(t, got, 5)
	assert.Equal(t, LeaderboardEntry{Username: "user8", Score: 8}, got[0])
	assert.Equal(t, LeaderboardEntry{Username: "user4", Score: 4}, got[4])
}
