package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julien-sobczak/the-dreamwriter/internal/core"
)

/*
 * The command dream uses Bubble Tea under the hood to provide the interactive form.
 * All BubbleTea-related code is present in this file to make easy to switch to another library someday.
 */

const (
	defaultWidth = 80
	inputHeight  = 4
	// Lines used by the banner, the form, and the help
	formHeight = 22
)

var (
	bannerTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)
	bannerSubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)
	bannerImageStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#F5F5F5")).Padding(0, 1)

	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170")).MarginTop(1)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
	buttonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#7C3AED")).Padding(0, 2).MarginTop(1)
	disabledStyle = buttonStyle.Copy().Background(lipgloss.Color("240"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))
	emphasisStyle = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

// RunDreamForm starts the interactive form and blocks until the user quits.
func RunDreamForm(analyzer *core.Analyzer, rotation *core.Rotation) error {
	p := tea.NewProgram(
		NewDreamModel(analyzer, rotation),
		tea.WithAltScreen(), // use the full size of the terminal in its "alternate screen buffer"
	)
	_, err := p.Run()
	return err
}

// analysisDoneMsg is sent when the thinking delay of a submission expires.
type analysisDoneMsg struct {
	seq      int
	analysis *core.Analysis
}

// rotateMsg is sent at every background interval.
type rotateMsg struct {
	seq int
}

type DreamModel struct {
	dream    textarea.Model
	emotions textarea.Model
	spinner  spinner.Model
	result   viewport.Model

	analyzer *core.Analyzer
	rotation *core.Rotation

	state    core.State
	message  string
	analysis *core.Analysis
	// Identifies the latest submission to ignore outdated results
	seq int
	// Identifies the current rotation timer. Restarted when the emotion changes.
	rotationSeq int

	width    int
	quitting bool
}

func NewDreamModel(analyzer *core.Analyzer, rotation *core.Rotation) DreamModel {
	dream := textarea.New()
	dream.Placeholder = "I was flying over a calm ocean..."
	dream.ShowLineNumbers = false
	dream.CharLimit = 0 // No limit
	dream.MaxHeight = 0
	dream.SetWidth(defaultWidth)
	dream.SetHeight(inputHeight)
	dream.Focus()

	emotions := textarea.New()
	emotions.Placeholder = "I felt peaceful but a bit anxious..."
	emotions.ShowLineNumbers = false
	emotions.CharLimit = 0
	emotions.MaxHeight = 0
	emotions.SetWidth(defaultWidth)
	emotions.SetHeight(inputHeight)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))

	return DreamModel{
		dream:    dream,
		emotions: emotions,
		spinner:  s,
		result:   viewport.New(defaultWidth, 10),
		analyzer: analyzer,
		rotation: rotation,
		state:    core.StateIdle,
		width:    defaultWidth,
	}
}

func (m DreamModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, rotateCmd(m.rotationSeq, m.rotation.Interval))
}

func (m DreamModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.dream.SetWidth(msg.Width)
		m.emotions.SetWidth(msg.Width)
		m.result.Width = msg.Width
		m.result.Height = max(5, msg.Height-formHeight)
		if m.analysis != nil {
			m.result.SetContent(renderAnalysis(m.analysis, m.width))
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "shift+tab":
			return m.switchFocus()
		case "ctrl+s":
			return m.submit()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.result, cmd = m.result.Update(msg)
			return m, cmd
		}

	case analysisDoneMsg:
		if msg.seq != m.seq {
			// Superseded by another submission
			return m, nil
		}
		m.analysis = msg.analysis
		m.state = core.StateDisplaying
		m.result.SetContent(renderAnalysis(m.analysis, m.width))
		m.result.GotoTop()
		cmd := m.classify()
		return m, cmd

	case rotateMsg:
		if msg.seq != m.rotationSeq {
			// Timer replaced after an emotion change
			return m, nil
		}
		m.rotation.Next()
		return m, rotateCmd(m.rotationSeq, m.rotation.Interval)

	case spinner.TickMsg:
		if m.state != core.StateAnalyzing {
			// Stop ticking
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Forward remaining messages (keys, cursor blinks) to the focused input
	var cmd tea.Cmd
	if m.dream.Focused() {
		m.dream, cmd = m.dream.Update(msg)
	} else {
		previous := m.emotions.Value()
		m.emotions, cmd = m.emotions.Update(msg)
		if m.emotions.Value() != previous {
			cmd = tea.Batch(cmd, m.classify())
		}
	}
	return m, cmd
}

func (m DreamModel) switchFocus() (tea.Model, tea.Cmd) {
	if m.dream.Focused() {
		m.dream.Blur()
		return m, m.emotions.Focus()
	}
	m.emotions.Blur()
	return m, m.dream.Focus()
}

// submit validates the inputs and starts the thinking delay.
func (m DreamModel) submit() (tea.Model, tea.Cmd) {
	dream := m.dream.Value()
	emotions := m.emotions.Value()
	if !core.CanSubmit(m.state, dream, emotions) {
		return m, nil
	}

	m.state = core.StateValidating
	if err := core.Validate(dream, emotions); err != nil {
		m.state = core.StateRejected
		m.message = err.Error()
		return m, nil
	}
	m.message = ""
	m.state = core.StateAnalyzing
	m.seq++

	delay := m.analyzer.ThinkingDelay()
	core.CurrentLogger().Debugf("Thinking for %s", delay)
	return m, tea.Batch(m.spinner.Tick, thinkCmd(m.seq, dream, emotions, delay))
}

// classify updates the background from the emotions once an analysis is displayed.
// A new background restarts the rotation timer.
func (m *DreamModel) classify() tea.Cmd {
	if m.analysis == nil {
		return nil
	}
	emotion := core.DetectDominantEmotion(m.emotions.Value())
	if !m.rotation.SetEmotion(emotion) {
		return nil
	}
	core.CurrentLogger().Debugf("Switching background to %s", emotion)
	m.rotationSeq++
	return rotateCmd(m.rotationSeq, m.rotation.Interval)
}

func thinkCmd(seq int, dream, emotions string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		analysis, err := core.Analyze(dream, emotions)
		if err != nil {
			// Inputs were validated before
			core.CurrentLogger().Warnf("Unexpected analysis failure: %v", err)
			return nil
		}
		return analysisDoneMsg{seq: seq, analysis: analysis}
	})
}

func rotateCmd(seq int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return rotateMsg{seq: seq}
	})
}

func (m DreamModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.bannerView())
	sb.WriteString("\n")

	sb.WriteString(labelStyle.Render("Describe your dream") + "\n")
	sb.WriteString(m.dream.View() + "\n")
	sb.WriteString(labelStyle.Render("How did you feel during the dream?") + "\n")
	sb.WriteString(m.emotions.View() + "\n")

	if m.message != "" {
		sb.WriteString(errorStyle.Render(m.message) + "\n")
	}
	sb.WriteString(m.buttonView() + "\n")

	if m.analysis != nil {
		sb.WriteString("\n" + m.result.View() + "\n")
	}

	sb.WriteString(helpStyle.Render("tab: switch field • ctrl+s: analyze • pgup/pgdown: scroll • esc: quit"))
	return sb.String()
}

// bannerView renders the title over the gradient of the current emotion.
func (m DreamModel) bannerView() string {
	background := m.rotation.Background()
	from := lipgloss.Color(background.Gradient[0])
	via := lipgloss.Color(background.Gradient[1])
	to := lipgloss.Color(background.Gradient[2])

	image := fmt.Sprintf("🖼  %d/%d %s", m.rotation.Index()+1, len(background.Images), m.rotation.Image())

	return lipgloss.JoinVertical(lipgloss.Left,
		bannerTitleStyle.Copy().Width(m.width).Background(from).Render("🌙 Dream Analyzer"),
		bannerSubtitleStyle.Copy().Width(m.width).Background(via).Render("Unlock the hidden meanings of your dreams"),
		bannerImageStyle.Copy().Width(m.width).Background(to).Render(image),
	)
}

func (m DreamModel) buttonView() string {
	if m.state == core.StateAnalyzing {
		return m.spinner.View() + " Analyzing Dream Pattern..."
	}
	if !core.CanSubmit(m.state, m.dream.Value(), m.emotions.Value()) {
		return disabledStyle.Render("✨ Analyze Dream")
	}
	return buttonStyle.Render("✨ Analyze Dream")
}

func renderAnalysis(analysis *core.Analysis, width int) string {
	body := lipgloss.NewStyle().Width(width)

	var sb strings.Builder
	sb.WriteString(emphasisStyle.Render("Dominant emotion: ") + string(analysis.DominantEmotion) + "\n\n")
	for _, section := range analysis.Sections() {
		sb.WriteString(sectionStyle.Render(section[0]) + "\n")
		sb.WriteString(body.Render(strings.TrimSpace(section[1])) + "\n\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
