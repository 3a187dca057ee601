package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/AbateG/deutsche-ubungen/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. Correctness is decided by the
// engine after submission; the component only reports the chosen option
// text and paints the outcome it is told about.
type MultiChoice struct {
	Prompt    string
	Options   []string
	Selected  int
	Submitted bool
	Chosen    int
	CorrectAt int // index of the correct option, set after grading; -1 before
}

// NewMultiChoice creates a selector over the given options.
func NewMultiChoice(prompt string, options []string) MultiChoice {
	return MultiChoice{
		Prompt:    prompt,
		Options:   options,
		Chosen:    -1,
		CorrectAt: -1,
	}
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.Chosen = m.Selected
	}

	return m, nil
}

// Value returns the chosen option text, or "" before submission.
func (m MultiChoice) Value() string {
	if m.Chosen < 0 || m.Chosen >= len(m.Options) {
		return ""
	}
	return m.Options[m.Chosen]
}

// MarkCorrect records which option the engine graded as correct.
func (m *MultiChoice) MarkCorrect(answer string) {
	for i, opt := range m.Options {
		if opt == answer {
			m.CorrectAt = i
			return
		}
	}
}

// View renders the selector.
func (m MultiChoice) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(m.Prompt) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%c)  %s", prefix, 'a'+i, opt)

		switch {
		case m.Submitted && i == m.CorrectAt:
			s += theme.Correct.Render(line) + "\n"
		case m.Submitted && i == m.Chosen:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
