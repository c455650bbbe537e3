package theme

import "github.com/charmbracelet/lipgloss"

// StatusBarStyle selects how the status bar renders its content for a
// scheme. Exactly two values exist.
type StatusBarStyle string

const (
	StatusBarLightContent StatusBarStyle = "light-content"
	StatusBarDarkContent  StatusBarStyle = "dark-content"
)

// Gradient is a two-stop color ramp used for banners and accents.
type Gradient struct {
	Start lipgloss.Color
	End   lipgloss.Color
}

// ColorScheme is the complete set of presentation values for one mode.
// Every field is populated in both variants; consumers never receive a
// partial scheme.
type ColorScheme struct {
	Background      lipgloss.Color
	Surface         lipgloss.Color
	Text            lipgloss.Color
	TextMuted       lipgloss.Color
	Border          lipgloss.Color
	Primary         lipgloss.Color
	Success         lipgloss.Color
	Warning         lipgloss.Color
	Danger          lipgloss.Color
	Shadow          lipgloss.Color
	InputBackground lipgloss.Color

	BackgroundGradient Gradient
	SurfaceGradient    Gradient
	PrimaryGradient    Gradient
	SuccessGradient    Gradient
	WarningGradient    Gradient
	DangerGradient     Gradient
	MutedGradient      Gradient
	EmptyGradient      Gradient

	StatusBar StatusBarStyle
}

// LightScheme returns the scheme used when dark mode is off.
func LightScheme() ColorScheme {
	return ColorScheme{
		Background:      "#f8fafc",
		Surface:         "#ffffff",
		Text:            "#1e293b",
		TextMuted:       "#64748b",
		Border:          "#e2e8f0",
		Primary:         "#6366f1",
		Success:         "#22c55e",
		Warning:         "#f59e0b",
		Danger:          "#ef4444",
		Shadow:          "#0f172a",
		InputBackground: "#f1f5f9",

		BackgroundGradient: Gradient{Start: "#f8fafc", End: "#e0e7ff"},
		SurfaceGradient:    Gradient{Start: "#ffffff", End: "#f1f5f9"},
		PrimaryGradient:    Gradient{Start: "#6366f1", End: "#8b5cf6"},
		SuccessGradient:    Gradient{Start: "#22c55e", End: "#16a34a"},
		WarningGradient:    Gradient{Start: "#f59e0b", End: "#d97706"},
		DangerGradient:     Gradient{Start: "#ef4444", End: "#dc2626"},
		MutedGradient:      Gradient{Start: "#94a3b8", End: "#64748b"},
		EmptyGradient:      Gradient{Start: "#e2e8f0", End: "#cbd5e1"},

		StatusBar: StatusBarDarkContent,
	}
}

// DarkScheme returns the scheme used when dark mode is on.
func DarkScheme() ColorScheme {
	return ColorScheme{
		Background:      "#0f172a",
		Surface:         "#1e293b",
		Text:            "#f1f5f9",
		TextMuted:       "#94a3b8",
		Border:          "#334155",
		Primary:         "#818cf8",
		Success:         "#4ade80",
		Warning:         "#fbbf24",
		Danger:          "#f87171",
		Shadow:          "#020617",
		InputBackground: "#1e293b",

		BackgroundGradient: Gradient{Start: "#0f172a", End: "#1e1b4b"},
		SurfaceGradient:    Gradient{Start: "#1e293b", End: "#0f172a"},
		PrimaryGradient:    Gradient{Start: "#818cf8", End: "#a78bfa"},
		SuccessGradient:    Gradient{Start: "#4ade80", End: "#22c55e"},
		WarningGradient:    Gradient{Start: "#fbbf24", End: "#f59e0b"},
		DangerGradient:     Gradient{Start: "#f87171", End: "#ef4444"},
		MutedGradient:      Gradient{Start: "#64748b", End: "#475569"},
		EmptyGradient:      Gradient{Start: "#334155", End: "#1e293b"},

		StatusBar: StatusBarLightContent,
	}
}
