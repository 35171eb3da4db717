package text

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower lowercases a text using the full Unicode case mapping rules
// (ex: a final sigma is handled depending on its position).
func Lower(text string) string {
	// Casers are stateful and not safe for concurrent use
	return cases.Lower(language.Und).String(text)
}

// ContainsAny returns if the text contains at least one of the given substrings.
func ContainsAny(text string, substrings ...string) bool {
	for _, substring := range substrings {
		if strings.Contains(text, substring) {
			return true
		}
	}
	return false
}

// CountContained returns how many of the given substrings are contained in the text.
// A substring present several times is counted once.
func CountContained(text string, substrings ...string) int {
	count := 0
	for _, substring := range substrings {
		if strings.Contains(text, substring) {
			count++
		}
	}
	return count
}

// Length returns the number of characters (= Unicode code points) in a text.
func Length(text string) int {
	return utf8.RuneCountInString(text)
}

// FirstWords returns the first n words of a text separated by a single space.
func FirstWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// SquashBlankLines replaces successive blank lines by a single empty one.
// Lines can be of any length.
func SquashBlankLines(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text))

	previousLineEmpty := false
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if len(strings.TrimSpace(line)) == 0 {
			if previousLineEmpty {
				continue
			}
			previousLineEmpty = true
		} else {
			previousLineEmpty = false
		}
		result.WriteString(line)
		result.WriteRune('\n')
	}

	return result.String()
}

// IsBlank returns if a text is blank.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// TrimExtension removes the extension from a file name or file path.
func TrimExtension(path string) string {
	path = strings.TrimSuffix(path, string(filepath.Separator))
	return strings.TrimSuffix(path, filepath.Ext(path))
}
