// Package app renders an interactive quiz session in the terminal.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/AbateG/deutsche-ubungen/internal/session"
	"github.com/AbateG/deutsche-ubungen/internal/ui/layout"
)

// Options carries the dependencies for a TUI run.
type Options struct {
	// Session must already be InProgress.
	Session *session.Session

	// Scores persists the best score on completion and restart.
	Scores session.ScoreStore

	// Title is shown in the header, e.g. "Wortschatz A1".
	Title string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	quiz   quizModel
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	return AppModel{quiz: newQuizModel(opts)}
}

func (m AppModel) Init() tea.Cmd {
	return m.quiz.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.quiz, cmd = m.quiz.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.quiz.title, m.quiz.sess.Score(), m.quiz.sess.BestScore(), m.width)
	footer := layout.RenderFooter(m.quiz.keyHints(), m.width)
	content := m.quiz.View()

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program over an already-started session.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
