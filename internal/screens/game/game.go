// Package game is the quiz screen. It owns a quiz.Session and translates
// Bubble Tea messages into session events: level picks start fetches,
// option picks become answers, and timers deliver the deferred advance.
package game

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/yuhsin-liao/bopomo/internal/quiz"
	"github.com/yuhsin-liao/bopomo/internal/quizgen"
	"github.com/yuhsin-liao/bopomo/internal/screen"
	"github.com/yuhsin-liao/bopomo/internal/speech"
	"github.com/yuhsin-liao/bopomo/internal/ui/components"
	"github.com/yuhsin-liao/bopomo/internal/ui/layout"
)

// GameScreen implements screen.Screen for the whole quiz flow: level
// menu, loading, play, game over and the load-failure screen.
type GameScreen struct {
	session *quiz.Session
	source  quizgen.Source
	speaker speech.Speaker

	menu    components.Menu
	options components.OptionList
	spin    components.Spinner

	// Points granted by the most recent correct answer, for the
	// feedback line.
	lastPoints int

	// advanceAfter schedules the deferred advance for an accepted
	// answer. Tests swap it to fire immediately.
	advanceAfter func(res quiz.AnswerResult) tea.Cmd
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)
var _ screen.StatsProvider = (*GameScreen)(nil)

// New creates the quiz screen with injected collaborators.
func New(source quizgen.Source, speaker speech.Speaker) *GameScreen {
	g := &GameScreen{
		session: quiz.NewSession(),
		source:  source,
		speaker: speaker,
		menu:    newLevelMenu(),
		spin:    components.NewSpinner(),
	}
	g.advanceAfter = g.advanceTick
	return g
}

// advanceTick delivers the advance after the feedback delay.
func (g *GameScreen) advanceTick(res quiz.AnswerResult) tea.Cmd {
	token := res.Token
	return tea.Tick(res.Delay, func(_ time.Time) tea.Msg {
		return advanceMsg{Token: token}
	})
}

func newLevelMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(quiz.Levels))
	for _, lvl := range quiz.Levels {
		items = append(items, components.MenuItem{
			Label: lvl.String(),
			Action: func() tea.Cmd {
				return func() tea.Msg { return levelChosenMsg{Level: lvl} }
			},
		})
	}
	return components.NewMenu(items)
}

func (g *GameScreen) Init() tea.Cmd {
	return nil
}

func (g *GameScreen) Title() string {
	switch g.session.Phase() {
	case quiz.PhasePlaying, quiz.PhaseLoading:
		return g.session.Level().String()
	case quiz.PhaseGameOver:
		return "Results"
	default:
		return "Quiz"
	}
}

// Stats feeds the header's score and streak.
func (g *GameScreen) Stats() (int, int) {
	return g.session.Score(), g.session.Streak()
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	switch g.session.Phase() {
	case quiz.PhaseMenu:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Level"},
			{Key: "Enter", Description: "Start"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case quiz.PhasePlaying:
		if _, answered := g.session.Selected(); answered {
			return []layout.KeyHint{
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "↑↓ Enter", Description: "Pick"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case quiz.PhaseGameOver, quiz.PhaseError:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Menu"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case levelChosenMsg:
		return g.handleLevelChosen(msg)

	case questionsMsg:
		return g.handleQuestions(msg)

	case advanceMsg:
		if g.session.Advance(msg.Token) && g.session.Phase() == quiz.PhasePlaying {
			g.options = components.NewOptionList(g.session.Options())
		}
		return g, nil

	case tea.KeyMsg:
		return g.handleKey(msg)
	}

	if g.session.Phase() == quiz.PhaseLoading {
		var cmd tea.Cmd
		g.spin, cmd = g.spin.Update(msg)
		return g, cmd
	}

	return g, nil
}

func (g *GameScreen) handleLevelChosen(msg levelChosenMsg) (screen.Screen, tea.Cmd) {
	token, ok := g.session.SelectLevel(msg.Level)
	if !ok {
		return g, nil
	}
	return g, tea.Batch(g.spin.Init(), g.fetchQuestions(token, msg.Level))
}

// fetchQuestions asks the source for a batch asynchronously. The token
// rides along so a superseded fetch can be recognized on arrival.
func (g *GameScreen) fetchQuestions(token uint64, level quiz.Level) tea.Cmd {
	source := g.source
	return func() tea.Msg {
		questions, err := source.Fetch(context.Background(), level)
		return questionsMsg{Token: token, Questions: questions, Err: err}
	}
}

func (g *GameScreen) handleQuestions(msg questionsMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		g.session.FailFetch(msg.Token)
		return g, nil
	}
	if g.session.Begin(msg.Token, msg.Questions) {
		g.options = components.NewOptionList(g.session.Options())
	}
	return g, nil
}

func (g *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch g.session.Phase() {
	case quiz.PhaseMenu:
		var cmd tea.Cmd
		g.menu, cmd = g.menu.Update(msg)
		return g, cmd

	case quiz.PhasePlaying:
		if _, answered := g.session.Selected(); answered {
			// Locked until the advance timer fires.
			return g, nil
		}
		var cmd tea.Cmd
		g.options, cmd = g.options.Update(msg)
		if chosen := g.options.Chosen(); chosen != "" {
			return g, g.submitAnswer(chosen)
		}
		return g, cmd

	case quiz.PhaseGameOver, quiz.PhaseError:
		if key := msg.String(); key == "enter" || key == "r" {
			if g.session.Restart() {
				g.menu = newLevelMenu()
				g.lastPoints = 0
			}
		}
		return g, nil
	}

	return g, nil
}

// submitAnswer records the pick, reveals the outcome, vocalizes the
// character on a hit and schedules the advance timer.
func (g *GameScreen) submitAnswer(chosen string) tea.Cmd {
	scoreBefore := g.session.Score()
	res, ok := g.session.Answer(chosen)
	if !ok {
		return nil
	}
	g.lastPoints = g.session.Score() - scoreBefore

	if q, live := g.session.Current(); live {
		g.options = g.options.Reveal(correctIndex(g.options.Options, q.Zhuyin))
		if res.Correct {
			g.speaker.Speak(q.Character)
		}
	}

	return g.advanceAfter(res)
}

func correctIndex(options []string, zhuyin string) int {
	for i, opt := range options {
		if opt == zhuyin {
			return i
		}
	}
	return -1
}
