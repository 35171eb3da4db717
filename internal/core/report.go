package core

import (
	"fmt"
	"strings"

	"github.com/julien-sobczak/the-dreamwriter/pkg/markdown"
	"gopkg.in/yaml.v3"
)

// Titles of the three sections of an analysis
const (
	TitleInterpretation        = "Dream Interpretation"
	TitleEmotionalSignificance = "Emotional Analysis"
	TitleAdvice                = "Professional Recommendations"
)

// Format is an output format for an analysis.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatYAML     Format = "yaml"
)

var Formats = []Format{FormatText, FormatMarkdown, FormatHTML, FormatYAML}

func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(value) {
	case "text", "txt", "":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %q", value)
}

// Sections returns the titles and contents of the analysis in display order.
func (a *Analysis) Sections() [][2]string {
	return [][2]string{
		{TitleInterpretation, a.Interpretation},
		{TitleEmotionalSignificance, a.EmotionalSignificance},
		{TitleAdvice, a.Advice},
	}
}

// Markdown renders the analysis as a standalone Markdown document.
func (a *Analysis) Markdown() string {
	var sb strings.Builder
	sb.WriteString(markdown.Heading(1, "Dream Analysis") + "\n\n")
	sb.WriteString(fmt.Sprintf("**Dominant emotion:** %s\n\n", a.DominantEmotion))

	sb.WriteString(markdown.Heading(2, "Dream") + "\n\n")
	sb.WriteString(quote(a.Dream) + "\n\n")
	sb.WriteString(markdown.Heading(2, "Emotions") + "\n\n")
	sb.WriteString(quote(a.Emotions) + "\n\n")

	for _, section := range a.Sections() {
		sb.WriteString(markdown.Heading(2, section[0]) + "\n\n")
		sb.WriteString(markdown.HardBreaks(strings.TrimSpace(section[1])) + "\n\n")
	}
	return markdown.ToMarkdown(sb.String())
}

// HTML renders the Markdown document as HTML.
func (a *Analysis) HTML() string {
	return markdown.ToHTML(a.Markdown())
}

// YAML serializes the analysis.
func (a *Analysis) YAML() (string, error) {
	out, err := yaml.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("unable to serialize analysis: %v", err)
	}
	return string(out), nil
}

func quote(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("> "+line, " ")
	}
	return strings.Join(lines, "\n")
}
