package app

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/AbateG/deutsche-ubungen/internal/exercise"
	"github.com/AbateG/deutsche-ubungen/internal/session"
	"github.com/AbateG/deutsche-ubungen/internal/ui/components"
	"github.com/AbateG/deutsche-ubungen/internal/ui/layout"
	"github.com/AbateG/deutsche-ubungen/internal/ui/theme"
)

// quizPhase is the screen-local presentation state.
type quizPhase int

const (
	phaseAnswering quizPhase = iota
	phaseFeedback
	phaseDone
)

// quizModel drives one session through the ask/answer/feedback loop.
type quizModel struct {
	sess   *session.Session
	scores session.ScoreStore
	title  string

	phase   quizPhase
	choice  components.MultiChoice
	input   components.TextInput
	result  session.Result
	summary *session.Summary
}

func newQuizModel(opts Options) quizModel {
	m := quizModel{
		sess:   opts.Session,
		scores: opts.Scores,
		title:  opts.Title,
	}
	m.loadQuestion()
	return m
}

// loadQuestion rebuilds the answer component for the current question.
func (m *quizModel) loadQuestion() {
	ex, err := m.sess.Current()
	if err != nil {
		m.phase = phaseDone
		return
	}
	m.phase = phaseAnswering
	if ex.Kind == exercise.KindMultipleChoice {
		m.choice = components.NewMultiChoice(ex.Prompt, ex.Options)
	} else {
		m.input = components.NewTextInput("Antwort eingeben…")
	}
}

func (m quizModel) Init() tea.Cmd {
	ex, err := m.sess.Current()
	if err == nil && ex.Kind.IsFreeText() {
		return m.input.Init()
	}
	return nil
}

func (m quizModel) Update(msg tea.Msg) (quizModel, tea.Cmd) {
	switch m.phase {
	case phaseAnswering:
		return m.updateAnswering(msg)
	case phaseFeedback:
		return m.updateFeedback(msg)
	default:
		return m.updateDone(msg)
	}
}

func (m quizModel) updateAnswering(msg tea.Msg) (quizModel, tea.Cmd) {
	ex, err := m.sess.Current()
	if err != nil {
		m.phase = phaseDone
		return m, nil
	}

	if ex.Kind == exercise.KindMultipleChoice {
		var cmd tea.Cmd
		m.choice, cmd = m.choice.Update(msg)
		if m.choice.Submitted {
			return m.submit(m.choice.Value()), cmd
		}
		return m, cmd
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		if strings.TrimSpace(m.input.Value()) == "" {
			return m, nil
		}
		return m.submit(m.input.Value()), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit grades the answer and moves to the feedback view.
func (m quizModel) submit(answer string) quizModel {
	result, err := m.sess.Submit(answer)
	if err != nil {
		return m
	}
	m.result = result

	ex, _ := m.sess.Current()
	if ex != nil && ex.Kind == exercise.KindMultipleChoice {
		m.choice.MarkCorrect(result.Answer)
	} else {
		m.input.Submit(result.Correct)
	}

	m.phase = phaseFeedback
	return m
}

func (m quizModel) updateFeedback(msg tea.Msg) (quizModel, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || kmsg.String() != "enter" {
		return m, nil
	}

	summary, err := m.sess.Advance(context.Background(), m.scores)
	if err != nil && summary == nil {
		return m, nil
	}
	if summary != nil {
		m.summary = summary
		m.phase = phaseDone
		return m, nil
	}

	m.loadQuestion()
	ex, _ := m.sess.Current()
	if ex != nil && ex.Kind.IsFreeText() {
		return m, m.input.Init()
	}
	return m, nil
}

func (m quizModel) updateDone(msg tea.Msg) (quizModel, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch kmsg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "r":
		if err := m.sess.Restart(context.Background(), m.scores); err != nil {
			return m, tea.Quit
		}
		m.summary = nil
		m.loadQuestion()
		ex, _ := m.sess.Current()
		if ex != nil && ex.Kind.IsFreeText() {
			return m, m.input.Init()
		}
	}
	return m, nil
}

func (m quizModel) View() string {
	if m.phase == phaseDone {
		return m.doneView()
	}

	var b strings.Builder

	b.WriteString(theme.Hint.Render(progressLine(m.sess)) + "\n\n")

	ex, err := m.sess.Current()
	if err == nil && ex.Kind == exercise.KindMultipleChoice {
		b.WriteString(m.choice.View())
	} else if err == nil {
		b.WriteString(theme.Body.Bold(true).Render(ex.Prompt) + "\n\n")
		b.WriteString(m.input.View() + "\n")
	}

	if m.phase == phaseFeedback {
		b.WriteString("\n")
		if m.result.Correct {
			b.WriteString(theme.Correct.Render("Perfekt!") + "\n")
		} else {
			b.WriteString(theme.Incorrect.Render("Falsch. Richtig ist: "+m.result.Answer) + "\n")
		}
		if m.result.Explanation != "" {
			b.WriteString(theme.Hint.Render(m.result.Explanation) + "\n")
		}
	}

	return b.String()
}

func (m quizModel) doneView() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Fantastisch! Du hast alle Übungen abgeschlossen!") + "\n\n")
	if m.summary != nil {
		b.WriteString(theme.Body.Render(progressScore(m.summary)) + "\n")
		if m.summary.NewBest {
			b.WriteString(theme.Correct.Render("Neuer Highscore!") + "\n")
		}
	}
	return b.String()
}

func (m quizModel) keyHints() []layout.KeyHint {
	switch m.phase {
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Weiter"},
			{Key: "Ctrl+C", Description: "Beenden"},
		}
	case phaseDone:
		return []layout.KeyHint{
			{Key: "R", Description: "Nochmal spielen"},
			{Key: "Q", Description: "Beenden"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Auswahl"},
			{Key: "Enter", Description: "Antwort prüfen"},
			{Key: "Ctrl+C", Description: "Beenden"},
		}
	}
}

func progressLine(s *session.Session) string {
	return fmt.Sprintf("Frage %d von %d", s.Position(), s.Len())
}

func progressScore(sum *session.Summary) string {
	return fmt.Sprintf("Endstand: %d Punkte (Highscore: %d)", sum.FinalScore, sum.BestScore)
}
