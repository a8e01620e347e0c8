package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc    string
		message string
		phrase  string
		want    Verdict
	}{
		{
			desc:    "identical text always accepts",
			message: "пирог",
			phrase:  "пирог",
			want:    Accept,
		},
		{
			desc:    "shorter reply never accepts",
			message: "пир",
			phrase:  "пирог",
			want:    Reject,
		},
		{
			desc:    "half the distinct characters is enough",
			message: "порог",
			phrase:  "пирог",
			want:    Accept,
		},
		{
			desc:    "case folds before matching",
			message: "ПИРОГ",
			phrase:  "пирог",
			want:    Accept,
		},
		{
			desc:    "same length but unrelated is a near miss",
			message: "ёжик",
			phrase:  "стул",
			want:    NearMiss,
		},
		{
			desc:    "longer and unrelated rejects",
			message: "ёжики",
			phrase:  "стул",
			want:    Reject,
		},
		{
			desc:    "empty phrase rejects any reply",
			message: "что угодно",
			phrase:  "",
			want:    Reject,
		},
		{
			desc:    "empty reply to empty phrase still rejects",
			message: "",
			phrase:  "",
			want:    Reject,
		},
		{
			desc:    "single repeated character phrase",
			message: "aaa",
			phrase:  "aa",
			want:    Accept,
		},
		{
			desc:    "below-half coverage at equal length is a near miss",
			message: "xxxxx",
			phrase:  "abcde",
			want:    NearMiss,
		},
		{
			desc:    "below-half coverage with a longer reply rejects",
			message: "axxxx",
			phrase:  "abcd",
			want:    Reject,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert.Equal(t, tC.want, Validate(tC.message, tC.phrase))
		})
	}
}

func TestValidate_IdenticalAlwaysAccepts(t *testing.T) {
	t.Parallel()
	for _, phrase := range []string{"a", "кот", "длинная фраза с пробелами", "Chatbot is fun"} {
		assert.Equal(t, Accept, Validate(phrase, phrase), "phrase %q", phrase)
	}
}
