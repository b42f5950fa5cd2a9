package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		expected string
	}{
		{"simple", "Technology", "technology"},
		{"spaces", "Web Development", "web-development"},
		{"punctuation", "Tips & Tricks (2024)!", "tips-tricks-2024"},
		{"accents", "Café Culture", "cafe-culture"},
		{"leading trailing", "  --Go--  ", "go"},
		{"collapsed hyphens", "a   b", "a-b"},
		{"mixed case digits", "Top 10 IDEs", "top-10-ides"},
		{"apostrophe", "Editor's Picks", "editor-s-picks"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := From(tc.in)
			assert.Equal(t, tc.expected, got)
			assert.True(t, IsValid(got), "derived slug %q must match the pattern", got)
		})
	}
}

func TestFromDeterministic(t *testing.T) {
	assert.Equal(t, From("Technology"), From("Technology"))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("technology"))
	assert.True(t, IsValid("web-development-101"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("-leading"))
	assert.False(t, IsValid("trailing-"))
	assert.False(t, IsValid("UPPER"))
	assert.False(t, IsValid("double--hyphen"))
}
