// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/guesstimate/internal/estimator"
	"github.com/verte-zerg/guesstimate/internal/practice"
	"github.com/verte-zerg/guesstimate/internal/report"
	"github.com/verte-zerg/guesstimate/internal/trivia"
)

type phase int

const (
	phaseAnswer phase = iota
	phaseResult
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5AD27D"))
	excellentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	worksheetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea practice UI.
type Model struct {
	cfg    practice.Config
	method estimator.Method
	src    trivia.Source
	clock  practice.Clock

	input textinput.Model
	phase phase

	width  int
	height int

	guesses   []uint64
	active    *practice.ActiveSession
	result    practice.Result
	worksheet []string
	inputErr  string

	rounds    int
	correct   int
	excellent int
	incorrect int
}

// NewModel constructs a practice TUI model and draws the first problem.
func NewModel(cfg practice.Config, method estimator.Method, src trivia.Source, clock practice.Clock) (*Model, error) {
	input := textinput.New()
	input.Prompt = "Enter your estimated geometric mean: "
	input.CharLimit = 24
	input.Width = 24
	input.Focus()

	m := &Model{
		cfg:    cfg,
		method: method,
		src:    src,
		clock:  clock,
		input:  input,
	}
	if err := m.nextProblem(); err != nil {
		return nil, err
	}
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.phase {
		case phaseAnswer:
			return m.updateAnswer(msg)
		case phaseResult:
			return m.updateResult(msg)
		}
	}
	return m, nil
}

func (m *Model) updateAnswer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		answer, err := parseAnswer(m.input.Value())
		if err != nil {
			m.inputErr = fmt.Sprintf("Invalid input: %v. Please try again.", err)
			return m, nil
		}
		m.submit(answer)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.inputErr = ""
	return m, cmd
}

func (m *Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		if err := m.nextProblem(); err != nil {
			logErrf("failed to generate problem: %v\n", err)
			return m, tea.Quit
		}
		return m, textinput.Blink
	case "n", "q", "esc":
		return m, tea.Quit
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Practice Mode - %s geometric mean", m.method.Name())))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseAnswer:
		if err := report.RenderGuesses(&b, m.guesses); err != nil {
			return err.Error()
		}
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.inputErr != "" {
			b.WriteString(incorrectStyle.Render(m.inputErr))
			b.WriteString("\n")
		}
	case phaseResult:
		m.renderResult(&b)
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.footer()))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
	}
	return b.String()
}

func (m *Model) renderResult(b *strings.Builder) {
	if err := report.RenderResult(b, m.result); err != nil {
		b.WriteString(err.Error())
		return
	}
	if m.result.Verdict == practice.Incorrect && len(m.worksheet) > 0 {
		b.WriteString("\nStep-by-step calculation:\n")
		b.WriteString("========================\n")
		for _, line := range m.worksheet {
			b.WriteString(worksheetStyle.Render(line))
			b.WriteString("\n")
		}
	}
	b.WriteString("\nContinue with another problem? (y/n)\n")
}

func (m *Model) footer() string {
	return fmt.Sprintf("Round %d · %d correct · %d excellent · %d incorrect · Ctrl+C quits",
		m.rounds, m.correct, m.excellent, m.incorrect)
}

func (m *Model) nextProblem() error {
	session := practice.NewSession(m.method, m.src, m.clock)
	guesses, active, err := session.Start(m.cfg)
	if err != nil {
		return err
	}
	m.guesses = guesses
	m.active = active
	m.rounds++
	m.worksheet = nil
	m.inputErr = ""
	m.input.SetValue("")
	m.phase = phaseAnswer
	return nil
}

func (m *Model) submit(answer uint64) {
	result, err := m.active.Submit(answer)
	if err != nil {
		logErrf("failed to submit answer: %v\n", err)
		return
	}
	m.result = result
	switch result.Verdict {
	case practice.Correct:
		m.correct++
	case practice.Excellent:
		m.excellent++
	case practice.Incorrect:
		m.incorrect++
		m.worksheet = m.buildWorksheet(result)
	}
	m.phase = phaseResult
}

func (m *Model) buildWorksheet(result practice.Result) []string {
	ws, ok := m.method.(estimator.Worksheeter)
	if !ok {
		return nil
	}
	values := make([]float64, len(result.Guesses))
	for i, g := range result.Guesses {
		values[i] = float64(g)
	}
	lines, err := ws.Worksheet(values)
	if err != nil {
		return []string{"Error calculating step-by-step display"}
	}
	return lines
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
