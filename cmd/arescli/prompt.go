package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RenTrieu/Ares/internal/types"
)

// confirmModel is a tiny bubbletea program asking a single yes/no
// question about one candidate plaintext (spec §4.2 Human Checker),
// mirroring the teacher's small single-purpose TUI models (e.g.
// cmd/nerd/ui) rather than its full chat Model.
type confirmModel struct {
	result   types.CheckResult
	answer   bool
	answered bool

	question lipgloss.Style
	text     lipgloss.Style
	hint     lipgloss.Style
}

func newConfirmModel(result types.CheckResult) confirmModel {
	return confirmModel{
		result:   result,
		question: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		text:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		hint:     lipgloss.NewStyle().Faint(true),
	}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		m.answer, m.answered = true, true
		return m, tea.Quit
	case "n", "N", "esc", "ctrl+c":
		m.answer, m.answered = false, true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		return ""
	}
	return fmt.Sprintf(
		"%s\n\n%s\n%s\n\n%s\n",
		m.question.Render(fmt.Sprintf("Is this the plaintext? (%s)", m.result.CheckerDesc)),
		m.text.Render(string(m.result.Text)),
		m.text.Render(m.result.Description),
		m.hint.Render("[y] yes   [n] no"),
	)
}

// TUIPrompter implements checkers.Prompter via a one-shot bubbletea
// program per confirmation (spec §4.2 "confirm(result) -> yes/no"). It
// is the only piece of this repository that knows about a terminal.
type TUIPrompter struct{}

func (TUIPrompter) Confirm(result types.CheckResult) (bool, error) {
	m := newConfirmModel(result)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, fmt.Errorf("arescli: prompt failed: %w", err)
	}
	return final.(confirmModel).answer, nil
}
