package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(1, 4).
			Align(lipgloss.Center)

	gameOverPanelStyle = panelStyle.BorderForeground(lipgloss.Color("9"))

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	gameOverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	scoreStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	recordStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Padding(0, 2)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

// spaced renders "JUMPER" as "J U M P E R".
func spaced(s string) string {
	return strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
}

// place centers a panel and the help line in the terminal.
func (m Model) place(panel string) string {
	body := lipgloss.JoinVertical(lipgloss.Center, panel, "", m.help.View(m.keys))
	w, h := m.screen.Width(), m.screen.Height()
	if w <= 0 || h <= 0 {
		return body
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) startView() string {
	lines := []string{
		titleStyle.Render(spaced(m.game.Title())),
		"",
		"Bounce from platform to platform and climb as high as you can.",
		"",
		hintStyle.Render("enter to play  ·  ? for how to play"),
	}
	if m.scores.Best() > 0 {
		lines = append(lines, "",
			labelStyle.Render("RECORD"),
			scoreStyle.Render(strconv.Itoa(m.scores.Best())),
		)
	}
	return m.place(panelStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...)))
}

func (m Model) gameOverView() string {
	lines := []string{
		gameOverStyle.Render("GAME OVER"),
		"",
		labelStyle.Render("DISTANCE"),
		scoreStyle.Render(strconv.Itoa(m.gameState.Score)),
	}
	if m.scores.NewRecord() {
		lines = append(lines, "", recordStyle.Render("NEW RECORD!"))
	} else if m.scores.Best() > 0 {
		lines = append(lines, "", labelStyle.Render("BEST ")+scoreStyle.Render(strconv.Itoa(m.scores.Best())))
	}
	lines = append(lines, "", hintStyle.Render("r to retry  ·  b for the main menu"))
	return m.place(gameOverPanelStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...)))
}

func (m Model) manualView() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Controls"),
		"←/→ or a/d   steer",
		"mouse        hold a screen half",
		"p / esc      pause",
		"",
		sectionStyle.Render("Power-ups"),
		"!  rocket   fly up for two seconds",
		"O  shield   survive one fall",
		"^  spring   super jump",
		"$  coin     +500 points",
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Platforms"),
		"═  normal    solid",
		"═  moving    slides (cyan)",
		"┄  breaking  one bounce only",
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
	panel := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("HOW TO PLAY"),
		"",
		body,
		"",
		hintStyle.Render("enter to start now  ·  esc to go back"),
	)
	return m.place(panelStyle.Render(panel))
}
