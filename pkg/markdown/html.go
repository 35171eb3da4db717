package markdown

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
)

// ToHTML renders Markdown as HTML. Raw HTML present in the Markdown is dropped.
func ToHTML(md string) string {
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})
	out := markdown.ToHTML([]byte(md), nil, renderer)
	return strings.TrimSpace(string(out))
}
