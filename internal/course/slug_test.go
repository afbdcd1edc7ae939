package course

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "already canonical",
			input: "html-basics",
			want:  "html-basics",
		},
		{
			name:  "mixed case and punctuation",
			input: "  HTML Basics for Kids!!  ",
			want:  "html-basics-for-kids",
		},
		{
			name:  "runs collapse to single hyphen",
			input: "python -- the   easy way",
			want:  "python-the-easy-way",
		},
		{
			name:  "leading and trailing junk",
			input: "***scratch 101***",
			want:  "scratch-101",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			input: "!?!?",
			want:  "",
		},
		{
			name:  "truncated to fifty characters",
			input: strings.Repeat("abcde ", 20),
			want:  "abcde-abcde-abcde-abcde-abcde-abcde-abcde-abcde-ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"  HTML Basics for Kids!!  ",
		"CSS&Animations",
		"--already-hyphenated--",
		strings.Repeat("x!", 100),
		"",
		"日本語 course",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_Shape(t *testing.T) {
	inputs := []string{
		"Intro to JavaScript (2024 Edition)",
		strings.Repeat("a b", 60),
		"-leading-and-trailing-",
		"\t\nwhitespace everywhere\t\n",
	}
	for _, in := range inputs {
		got := Normalize(in)
		assert.LessOrEqual(t, len(got), 50)
		assert.False(t, strings.HasPrefix(got, "-"), "got %q", got)
		assert.False(t, strings.HasSuffix(got, "-"), "got %q", got)
		for _, r := range got {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			assert.True(t, ok, "unexpected rune %q in %q", r, got)
		}
	}
}

func TestLooseTokens(t *testing.T) {
	assert.Equal(t, "html basics for kids", LooseTokens("HTML Basics for Kids!"))
	assert.Equal(t, "python 101", LooseTokens("python-101"))
	assert.Equal(t, "", LooseTokens("  !!  "))
}
