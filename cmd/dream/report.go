package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/julien-sobczak/the-dreamwriter/internal/core"
)

var (
	titleColor   = color.New(color.FgHiYellow, color.Bold)
	sectionColor = color.New(color.FgHiMagenta, color.Bold)
	emotionColor = map[core.Emotion]*color.Color{
		core.EmotionNeutral: color.New(color.FgHiBlue),
		core.EmotionHappy:   color.New(color.FgHiYellow),
		core.EmotionSad:     color.New(color.FgBlue),
		core.EmotionFear:    color.New(color.FgRed),
		core.EmotionAnxiety: color.New(color.FgHiRed),
	}
)

// RenderAnalysis writes the analysis in the given format.
func RenderAnalysis(w io.Writer, analysis *core.Analysis, format core.Format) error {
	switch format {
	case core.FormatText:
		RenderText(w, analysis)
	case core.FormatMarkdown:
		fmt.Fprintln(w, analysis.Markdown())
	case core.FormatHTML:
		fmt.Fprintln(w, analysis.HTML())
	case core.FormatYAML:
		out, err := analysis.YAML()
		if err != nil {
			return err
		}
		fmt.Fprint(w, out)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}

// RenderText writes the analysis for a terminal.
func RenderText(w io.Writer, analysis *core.Analysis) {
	titleColor.Fprintln(w, "🌙 Dream Analyzer")
	fmt.Fprint(w, "Dominant emotion: ")
	emotionColor[analysis.DominantEmotion].Fprintln(w, analysis.DominantEmotion)

	for _, section := range analysis.Sections() {
		fmt.Fprintln(w)
		sectionColor.Fprintln(w, section[0])
		fmt.Fprintln(w, strings.TrimSpace(section[1]))
	}
}
