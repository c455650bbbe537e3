package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tatakaukohdai/todotui/internal/theme"
)

// styleSet holds the lipgloss styles for one frame. Styles are rebuilt
// from the active scheme on every render so a toggle takes effect on
// the next frame without invalidation bookkeeping.
type styleSet struct {
	app       lipgloss.Style
	statusBar lipgloss.Style
	title     lipgloss.Style
	titleEnd  lipgloss.Style
	card      lipgloss.Style
	task      lipgloss.Style
	taskDone  lipgloss.Style
	selected  lipgloss.Style
	empty     lipgloss.Style
	input     lipgloss.Style
	status    lipgloss.Style
	help      lipgloss.Style
}

func newStyleSet(colors theme.ColorScheme) styleSet {
	statusFg := colors.Text
	if colors.StatusBar == theme.StatusBarLightContent {
		statusFg = colors.TextMuted
	}

	return styleSet{
		app: lipgloss.NewStyle().
			Background(colors.Background).
			Foreground(colors.Text).
			Padding(0, 1),

		statusBar: lipgloss.NewStyle().
			Background(colors.Surface).
			Foreground(statusFg).
			Padding(0, 1),

		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.PrimaryGradient.Start),

		titleEnd: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.PrimaryGradient.End),

		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Background(colors.Surface).
			Padding(0, 1),

		task: lipgloss.NewStyle().
			Foreground(colors.Text),

		taskDone: lipgloss.NewStyle().
			Foreground(colors.TextMuted).
			Strikethrough(true),

		selected: lipgloss.NewStyle().
			Foreground(colors.Primary).
			Bold(true),

		empty: lipgloss.NewStyle().
			Foreground(colors.EmptyGradient.End).
			Italic(true),

		input: lipgloss.NewStyle().
			Background(colors.InputBackground).
			Foreground(colors.Text).
			Border(lipgloss.NormalBorder()).
			BorderForeground(colors.Primary).
			Padding(0, 1),

		status: lipgloss.NewStyle().
			Foreground(colors.Success),

		help: lipgloss.NewStyle().
			Foreground(colors.TextMuted),
	}
}
