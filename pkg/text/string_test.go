package text_test

import (
	"strings"
	"testing"

	"github.com/julien-sobczak/the-dreamwriter/pkg/text"
	"github.com/stretchr/testify/assert"
)

func TestLower(t *testing.T) {
	var tests = []struct {
		name     string // name
		input    string // input
		expected string // expected result
	}{
		{"ASCII", "I Was FLYING", "i was flying"},
		{"Accents", "ÉTAIT Calme", "était calme"},
		{"FinalSigma", "ΟΔΟΣ", "οδος"},
		{"Empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.Lower(tt.input))
		})
	}
}

func TestContainsAny(t *testing.T) {
	assert.True(t, text.ContainsAny("i was running away", "chase", "running"))
	assert.True(t, text.ContainsAny("a chaser", "chase"))
	assert.False(t, text.ContainsAny("a quiet night", "chase", "running"))
	assert.False(t, text.ContainsAny("anything"))
}

func TestCountContained(t *testing.T) {
	assert.Equal(t, 2, text.CountContained("so happy and joyful", "happy", "joy", "calm"))
	// "joy" is contained in "joyful" and counted once
	assert.Equal(t, 1, text.CountContained("joy joy joyful", "joy"))
	assert.Equal(t, 0, text.CountContained("", "joy"))
}

func TestLength(t *testing.T) {
	assert.Equal(t, 0, text.Length(""))
	assert.Equal(t, 5, text.Length("calme"))
	assert.Equal(t, 5, text.Length("rêvée"))
	assert.Equal(t, 1, text.Length("🌙"))
}

func TestFirstWords(t *testing.T) {
	assert.Equal(t, "I was flying", text.FirstWords("  I was\nflying over the sea", 3))
	assert.Equal(t, "short", text.FirstWords("short", 3))
	assert.Equal(t, "", text.FirstWords("   ", 3))
}

func TestSquashBlankLines(t *testing.T) {
	var tests = []struct {
		name     string // name
		input    string // input
		expected string // expected result
	}{
		{
			"TwoLines",
			`
This is a paragrah.


This is a second paragraph.

This is a third paragraph.

`,
			`
This is a paragrah.

This is a second paragraph.

This is a third paragraph.

`,
		},
		{
			"NoTrailingNewline",
			"A\n\n\nB",
			"A\n\nB\n",
		},
		{
			"Empty",
			"",
			"",
		},
		{
			"VeryLongLine",
			strings.Repeat("dream ", 20000) + "\n\n\nThe end.\n",
			strings.Repeat("dream ", 20000) + "\n\nThe end.\n",
		},
		{
			"NoEmptyLines",
			`
A
B
C
`,
			`
A
B
C
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := text.SquashBlankLines(tt.input)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestIsBlank(t *testing.T) {
	var tests = []struct {
		name  string
		input string
		blank bool
	}{
		{
			name:  "Empty",
			input: "",
			blank: true,
		},
		{
			name:  "Only spaces",
			input: "   ",
			blank: true,
		},
		{
			name:  "Leading spaces",
			input: " Not blank",
			blank: false,
		},
		{
			name:  "EOL",
			input: "\n",
			blank: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := text.IsBlank(tt.input)
			assert.Equal(t, actual, tt.blank)
		})
	}
}

func TestTrimExtension(t *testing.T) {
	assert.Equal(t, "2023-01-01-flying", text.TrimExtension("2023-01-01-flying.md"))
	assert.Equal(t, "journal/2023/2023-01-01-flying", text.TrimExtension("journal/2023/2023-01-01-flying.md"))
	assert.Equal(t, "journal", text.TrimExtension("journal"))
}
