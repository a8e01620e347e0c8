package storage

import (
	"sort"
	"strings"
)

// Frequencies counts how many times each phrase appears in the log,
// folded to lower case.
func Frequencies(records []Record) map[string]int {
	freq := make(map[string]int, len(records))
	for _, rec := range records {
		freq[strings.ToLower(rec.CurrentPhrase)]++
	}
	return freq
}

// Rank orders phrases ascending by usage count so rarely-used phrases
// come first. The sort is stable: ties keep their input order, and
// never-used phrases (count 0) lead.
func Rank(phrases []string, freq map[string]int) []string {
	ranked := append([]string(nil), phrases...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return freq[strings.ToLower(ranked[i])] < freq[strings.ToLower(ranked[j])]
	})
	return ranked
}
