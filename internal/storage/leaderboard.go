package storage

import "sort"

const leaderboardSize = 5

// LeaderboardEntry is one ranked row, best score per player.
type LeaderboardEntry struct {
	Username string
	Score    int
}

// BuildLeaderboard keeps each username's maximum logged score (not the
// sum), sorts descending and returns the top five. Ties keep the order
// usernames were first encountered in the log.
func BuildLeaderboard(records []Record) []LeaderboardEntry {
	best := make(map[string]int)
	order := make([]string, 0)

	for _, rec := range records {
		if _, seen := best[rec.Username]; !seen {
			order = append(order, rec.Username)
			best[rec.Username] = rec.Score
			continue
		}
		if rec.Score > best[rec.Username] {
			best[rec.Username] = rec.Score
		}
	}

	entries := make([]LeaderboardEntry, 0, len(order))
	for _, username := range order {
		entries = append(entries, LeaderboardEntry{Username: username, Score: best[username]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}
	return entries
}
