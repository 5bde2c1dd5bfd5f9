package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/yuhsin-liao/bopomo/internal/quiz"
	"github.com/yuhsin-liao/bopomo/internal/ui/components"
	"github.com/yuhsin-liao/bopomo/internal/ui/theme"
)

func (g *GameScreen) View(width, height int) string {
	switch g.session.Phase() {
	case quiz.PhaseMenu:
		return g.renderMenu(width)
	case quiz.PhaseLoading:
		return g.renderLoading(width)
	case quiz.PhasePlaying:
		return g.renderPlaying(width)
	case quiz.PhaseGameOver:
		return g.renderGameOver(width)
	case quiz.PhaseError:
		return g.renderError(width)
	}
	return ""
}

func (g *GameScreen) renderMenu(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Width(width).Render("ㄅ ㄆ ㄇ ㄈ"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Match each character to its zhuyin"))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, g.menu.View()))

	return b.String()
}

func (g *GameScreen) renderLoading(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n\n")

	line := g.spin.View() + " " +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("Creating your %s quiz...", g.session.Level()))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))

	return b.String()
}

func (g *GameScreen) renderPlaying(width int) string {
	q, ok := g.session.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	progress := components.NewProgressBar(
		fmt.Sprintf("  Question %d/%d", g.session.Index()+1, g.session.Len()),
		float64(g.session.Index())/float64(g.session.Len()),
		min(width-4, 60),
	)
	b.WriteString(progress.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// The character under quiz, oversized.
	b.WriteString(theme.Glyph.Width(width).Render(q.Character))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(q.Meaning))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, g.options.View()))
	b.WriteString("\n")

	if _, answered := g.session.Selected(); answered {
		b.WriteString(g.renderFeedback(width, q))
	}

	return b.String()
}

func (g *GameScreen) renderFeedback(width int, q quiz.Question) string {
	if g.session.LastCorrect() {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("Correct! +%d", g.lastPoints))
	}

	wrong := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Not quite")
	reveal := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s is read %s", q.Character, q.Zhuyin))
	return wrong + "\n" + reveal
}

func (g *GameScreen) renderGameOver(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Width(width).Render("Quiz complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("◆ %d points", g.session.Score())))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d of %d correct", g.session.CorrectCount(), g.session.Len())))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
		Render("Press Enter to play again"))

	return b.String()
}

func (g *GameScreen) renderError(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Something went wrong"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(g.session.ErrorMessage()))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
		Render("Press Enter to return to the menu"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
