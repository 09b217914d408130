// Package ui hosts the interactive template playground behind
// "printfmt live": a Bubble Tea program with a template input and an
// argument input, re-rendering on every keystroke and showing the
// diagnostics the template produces.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"printfmt"
	"printfmt/internal/diag"
	"printfmt/internal/driver"
	"printfmt/internal/jobs"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	countStyle  = lipgloss.NewStyle().Faint(true)
)

type liveModel struct {
	template textinput.Model
	argsIn   textinput.Model
	focused  int // 0 = template, 1 = args

	output string
	count  int
	failed bool
	diags  []string
}

// NewLiveModel builds the playground, optionally pre-seeded with a
// template and arguments.
func NewLiveModel(template, argsLine string) tea.Model {
	ti := textinput.New()
	ti.Placeholder = `%-8s %05.2d`
	ti.Prompt = "template> "
	ti.SetValue(template)
	ti.Focus()

	ai := textinput.New()
	ai.Placeholder = "hello, 42"
	ai.Prompt = "args>     "
	ai.SetValue(argsLine)

	m := &liveModel{template: ti, argsIn: ai}
	m.refresh()
	return m
}

func (m *liveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.focused = 1 - m.focused
			if m.focused == 0 {
				m.argsIn.Blur()
				return m, m.template.Focus()
			}
			m.template.Blur()
			return m, m.argsIn.Focus()
		}
	}

	var cmd tea.Cmd
	if m.focused == 0 {
		m.template, cmd = m.template.Update(msg)
	} else {
		m.argsIn, cmd = m.argsIn.Update(msg)
	}
	m.refresh()
	return m, cmd
}

// refresh re-renders the template against the current arguments and
// re-collects diagnostics.
func (m *liveModel) refresh() {
	template := m.template.Value()
	vals := splitArgs(m.argsIn.Value())

	m.diags = m.diags[:0]
	res := driver.Inspect(template, 32)
	for _, d := range res.Bag.Items() {
		line := fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
		if d.Severity == diag.SevError {
			m.diags = append(m.diags, errStyle.Render(line))
		} else {
			m.diags = append(m.diags, warnStyle.Render(line))
		}
	}

	var out []byte
	n, err := printfmt.Asprintf(&out, template, vals...)
	if err != nil {
		m.failed = true
		m.output = err.Error()
		m.count = -1
		return
	}
	m.failed = false
	m.output = string(out)
	m.count = n
}

func (m *liveModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("printfmt playground"))
	b.WriteString("  ")
	b.WriteString(countStyle.Render("(tab switches fields, esc quits)"))
	b.WriteString("\n\n")
	b.WriteString(m.template.View())
	b.WriteString("\n")
	b.WriteString(m.argsIn.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("output"))
	b.WriteString("\n")
	if m.failed {
		b.WriteString(errStyle.Render(m.output))
	} else {
		b.WriteString(outputStyle.Render(fmt.Sprintf("%q", m.output)))
		b.WriteString(countStyle.Render(fmt.Sprintf("  (%d characters)", m.count)))
	}
	b.WriteString("\n")

	if len(m.diags) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("diagnostics"))
		b.WriteString("\n")
		for _, d := range m.diags {
			b.WriteString(d)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// splitArgs turns the comma-separated args line into values with the
// same interpretation the render command uses.
func splitArgs(line string) []any {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	parts := strings.Split(line, ",")
	vals := make([]any, 0, len(parts))
	for _, p := range parts {
		vals = append(vals, jobs.ParseValue(strings.TrimSpace(p)))
	}
	return vals
}

// RunLive starts the playground and blocks until the user quits.
func RunLive(template, argsLine string) error {
	_, err := tea.NewProgram(NewLiveModel(template, argsLine)).Run()
	return err
}
