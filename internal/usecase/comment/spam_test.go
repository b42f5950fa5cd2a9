package comment_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Guyuepp/Go-Blog-Moderation/internal/usecase/comment"
)

func TestHeuristicScore(t *testing.T) {
	d := comment.NewHeuristicDetector()

	tests := []struct {
		name    string
		content string
		want    float64
	}{
		{
			name:    "clean-text",
			content: "I really enjoyed this article, thanks for writing it.",
			want:    0,
		},
		{
			name:    "single-url",
			content: "More context over at https://example.com/background for anyone curious.",
			want:    0.4,
		},
		{
			name:    "two-urls",
			content: "See https://example.com/a and also www.example.com/b for the full series of posts.",
			want:    0.8,
		},
		{
			name:    "url-count-capped",
			content: "http://a.example http://b.example http://c.example http://d.example padding text",
			want:    0.8,
		},
		{
			name:    "repeated-chars",
			content: "this is soooooo good" + strings.Repeat("!", 3),
			want:    0.3,
		},
		{
			name:    "short-link-bait",
			content: "go http://x.example",
			want:    0.5,
		},
		{
			name:    "everything-capped-at-one",
			content: "WOWWWWWWW http://a.example http://b.example http://c.example buy buy buy",
			want:    1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, d.Score(tc.content), 0.001)
		})
	}
}

func TestHeuristicScoreBounds(t *testing.T) {
	d := comment.NewHeuristicDetector()
	for _, content := range []string{
		"",
		strings.Repeat("a", 500),
		"http://a.example http://b.example http://c.example aaaaaaaaaa",
	} {
		score := d.Score(content)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}
