package comment

import (
	"regexp"
	"strings"
)

// SpamDetector scores comment content in [0, 1]. Higher means more likely
// spam. The scoring formula is a replaceable policy, not a fixed contract.
type SpamDetector interface {
	Score(content string) float64
}

// SpamThreshold is the score at or above which a comment is never
// auto-approved.
const SpamThreshold = 0.5

var urlPattern = regexp.MustCompile(`(?i)(https?://|www\.)\S+`)

// heuristicDetector is the default policy: URL-like substrings and long
// same-character runs are the signals.
type heuristicDetector struct{}

// NewHeuristicDetector returns the default spam policy.
func NewHeuristicDetector() SpamDetector {
	return heuristicDetector{}
}

func (heuristicDetector) Score(content string) float64 {
	score := 0.0

	urls := len(urlPattern.FindAllString(content, -1))
	if urls > 2 {
		urls = 2
	}
	score += 0.4 * float64(urls)

	if maxRun(content) >= 6 {
		score += 0.3
	}

	// Very short link-bait bodies score a little extra.
	if urls > 0 && len(strings.TrimSpace(content)) < 30 {
		score += 0.1
	}

	if score > 1 {
		score = 1
	}
	return score
}

// maxRun returns the length of the longest run of one repeated rune.
func maxRun(s string) int {
	var prev rune
	run, best := 0, 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			run = 1
			prev = r
		}
		if run > best {
			best = run
		}
	}
	return best
}
