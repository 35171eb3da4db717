package markdown

import (
	"fmt"
	"strings"

	"github.com/julien-sobczak/the-dreamwriter/pkg/text"
)

// ToMarkdown normalizes a generated Markdown document.
func ToMarkdown(markdownText string) string {
	markdownText = text.SquashBlankLines(markdownText)
	return strings.TrimSpace(markdownText)
}

// Heading returns a Markdown heading of the given level.
func Heading(level int, title string) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return fmt.Sprintf("%s %s", strings.Repeat("#", level), title)
}

// HardBreaks makes every single newline significant when rendered.
// Paragraph separators (blank lines) are kept untouched.
func HardBreaks(md string) string {
	lines := strings.Split(md, "\n")
	for i := 0; i < len(lines)-1; i++ {
		if text.IsBlank(lines[i]) || text.IsBlank(lines[i+1]) {
			continue
		}
		lines[i] = strings.TrimRight(lines[i], " ") + "  "
	}
	return strings.Join(lines, "\n")
}
