package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rnwolfe/lovetest/internal/love"
	"github.com/rnwolfe/lovetest/internal/tips"
	"github.com/rnwolfe/lovetest/internal/ui"
)

// frameInterval is the tick rate of the score animation.
const frameInterval = 30 * time.Millisecond

type screen int

const (
	screenHome screen = iota
	screenResult
)

const (
	fieldYou = iota
	fieldCrush
)

var fieldLabels = [2]string{"Your name", "Crush name"}

// Options configures the interactive love test.
type Options struct {
	// YourName prefills the first field.
	YourName string
	// Animation is how long the score bar takes to fill. Zero shows the
	// final score immediately.
	Animation time.Duration
}

// Outcome is returned when the interactive session ends.
type Outcome struct {
	// Last is the most recent result shown, valid when Tested is true.
	Last   love.Result
	Tested bool
	// Shared is true when the share text was opened for Last.
	Shared bool
}

// Model is the Bubbletea model for the two-screen love test.
type Model struct {
	screen screen
	names  [2]string
	focus  int

	result  love.Result
	tested  bool
	shown   int
	started time.Time
	anim    time.Duration
	animID  int
	sharing bool
	shared  bool
	err     error

	width  int
	height int
}

type animTickMsg struct {
	id int
	at time.Time
}

// NewModel creates a Model on the home screen.
func NewModel(opts Options) *Model {
	m := &Model{
		anim:   opts.Animation,
		width:  80,
		height: 24,
	}
	m.names[fieldYou] = opts.YourName
	if strings.TrimSpace(opts.YourName) != "" {
		m.focus = fieldCrush
	}
	return m
}

// Run launches the full-screen love test.
func Run(opts Options) (Outcome, error) {
	prog := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return Outcome{}, fmt.Errorf("love test tui: %w", err)
	}
	m := final.(*Model)
	if m.err != nil {
		return Outcome{}, m.err
	}
	return m.outcome(), nil
}

func (m *Model) outcome() Outcome {
	return Outcome{Last: m.result, Tested: m.tested, Shared: m.tested && m.shared}
}

func animTick(id int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return animTickMsg{id: id, at: t}
	})
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case animTickMsg:
		if m.screen != screenResult || msg.id != m.animID {
			return m, nil
		}
		if m.advance(msg.at) {
			return m, nil
		}
		return m, animTick(m.animID)

	case tea.KeyMsg:
		if m.screen == screenResult {
			return m.updateResult(msg)
		}
		return m.updateHome(msg)
	}
	return m, nil
}

func (m *Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down":
		m.focus = fieldCrush
		return m, nil

	case "shift+tab", "up":
		m.focus = fieldYou
		return m, nil

	case "enter":
		if m.focus == fieldYou {
			m.focus = fieldCrush
			return m, nil
		}
		if !love.CanTest(m.names[fieldYou], m.names[fieldCrush]) {
			return m, nil
		}
		return m, m.runTest(time.Now())

	case "backspace":
		r := []rune(m.names[m.focus])
		if len(r) > 0 {
			m.names[m.focus] = string(r[:len(r)-1])
		}
		return m, nil

	case "ctrl+u":
		m.names[m.focus] = ""
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.names[m.focus] += string(msg.Runes)
	case tea.KeySpace:
		m.names[m.focus] += " "
	}
	return m, nil
}

func (m *Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc", "b":
		m.screen = screenHome
		m.sharing = false
		return m, nil

	case "r":
		m.names = [2]string{}
		m.focus = fieldYou
		m.screen = screenHome
		m.sharing = false
		return m, nil

	case "s":
		m.sharing = !m.sharing
		if m.sharing {
			m.shared = true
		}
		return m, nil
	}
	return m, nil
}

// runTest scores the current names and switches to the result screen.
func (m *Model) runTest(now time.Time) tea.Cmd {
	r, err := love.Test(m.names[fieldYou], m.names[fieldCrush])
	if err != nil {
		m.err = err
		return tea.Quit
	}
	m.result = r
	m.tested = true
	m.screen = screenResult
	m.sharing = false
	m.shared = false
	m.started = now
	m.animID++

	if m.anim <= 0 {
		m.shown = r.Score
		return nil
	}
	m.shown = 0
	return animTick(m.animID)
}

// advance moves the animated score toward the result and reports whether
// the animation has finished.
func (m *Model) advance(now time.Time) bool {
	elapsed := now.Sub(m.started)
	if elapsed >= m.anim {
		m.shown = m.result.Score
		return true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	m.shown = int(float64(m.result.Score) * float64(elapsed) / float64(m.anim))
	return false
}

func (m *Model) View() string {
	if m.screen == screenResult {
		return m.viewResult()
	}
	return m.viewHome()
}

func (m *Model) viewHome() string {
	var b strings.Builder

	b.WriteString("\n  " + ui.Title.Render(ui.IconHeart+" Love Test") + "\n")
	b.WriteString("  " + ui.Muted.Render("Enter two names and get a fun compatibility score "+ui.IconSpark) + "\n\n")

	for i, label := range fieldLabels {
		b.WriteString(m.renderField(i, label) + "\n\n")
	}

	button := "[ Test compatibility ]"
	if love.CanTest(m.names[fieldYou], m.names[fieldCrush]) {
		button = lipgloss.NewStyle().Bold(true).Foreground(ui.Bright).Background(ui.Violet).Padding(0, 1).Render("Test compatibility")
	} else {
		button = ui.Muted.Render(button)
	}
	b.WriteString("  " + button + "\n\n")

	b.WriteString("  " + ui.Muted.Render("Tip: "+tips.All()[0]) + "\n")
	b.WriteString(ui.Muted.Render("  tab switch field · enter next/test · esc quit") + "\n")
	return b.String()
}

func (m *Model) renderField(i int, label string) string {
	pointer := "  "
	labelStyle := ui.Muted
	value := m.names[i]
	if i == m.focus {
		pointer = ui.Accent.Render(ui.IconArrow + " ")
		labelStyle = ui.KeyStyle
		value += lipgloss.NewStyle().Foreground(ui.Pink).Render("▎")
	}
	return "  " + pointer + labelStyle.Render(fmt.Sprintf("%-11s", label)) + " " + ui.IconPerson + " " + value
}

func (m *Model) viewResult() string {
	var b strings.Builder

	width := m.width - 4
	if width > 72 {
		width = 72
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(ui.ResultCard(m.result, m.shown, width)) + "\n\n")

	if m.sharing {
		b.WriteString("  " + ui.Accent.Render("Share: ") + m.result.Share + "\n\n")
	}

	b.WriteString(ui.Muted.Render("  b back · r try again · s share · q quit") + "\n")
	return b.String()
}
