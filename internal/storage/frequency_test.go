package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencies_FoldCase(t *testing.T) {
	t.Parallel()
	freq := Frequencies([]Record{
		{CurrentPhrase: "Кот"},
		{CurrentPhrase: "кот"},
		{CurrentPhrase: "дом"},
	})
	assert.Equal(t, map[string]int{"кот": 2, "дом": 1}, freq)
}

func TestRank(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc    string
		phrases []string
		records []Record
		want    []string
	}{
		{
			desc:    "unused phrase ranks before a used one",
			phrases: []string{"cat", "dog"},
			records: []Record{{CurrentPhrase: "cat"}, {CurrentPhrase: "cat"}},
			want:    []string{"dog", "cat"},
		},
		{
			desc:    "ties keep input order",
			phrases: []string{"a", "b", "c"},
			records: nil,
			want:    []string{"a", "b", "c"},
		},
		{
			desc:    "ascending by count",
			phrases: []string{"x", "y", "z"},
			records: []Record{
				{CurrentPhrase: "x"}, {CurrentPhrase: "x"}, {CurrentPhrase: "x"},
				{CurrentPhrase: "z"},
			},
			want: []string{"y", "z", "x"},
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got := Rank(tC.phrases, Frequencies(tC.records))
			assert.Equal(t, tC.want, got)
		})
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	phrases := []string{"b", "a"}
	Rank(phrases, map[string]int{"b": 5})
	assert.Equal(t, []string{"b", "a"}, phrases)
}
