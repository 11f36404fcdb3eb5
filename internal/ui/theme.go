package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for status output and the live view.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Keyed by status label (DOWNLOADING, PAUSED, ...).
	StatusColors map[string]string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	Title      lipgloss.Style
	Footer     lipgloss.Style

	statusColors map[string]string
	background   string
	fallback     string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		statusColors: t.StatusColors,
		background:   t.Background,
		fallback:     t.Muted,
	}
}

// StatusColor returns the color for a status label.
func (s Styles) StatusColor(status string) string {
	if color := s.statusColors[strings.ToUpper(strings.TrimSpace(status))]; color != "" {
		return color
	}
	return s.fallback
}

// StatusStyle returns a badge style for the given status.
func (s Styles) StatusStyle(status string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(s.StatusColor(status))).
		Bold(true).
		Padding(0, 1)
}

// StatusText colors a status label without changing its width, for use in
// plain line output.
func (s Styles) StatusText(status string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.StatusColor(status))).
		Bold(true).
		Render(status)
}

// Theme definitions

var themes = map[string]Theme{
	"Dracula": draculaTheme(),
	"Slate":   slateTheme(),
}

var themeOrder = []string{"Dracula", "Slate"}

// GetTheme returns a theme by name, falling back to Dracula.
func GetTheme(name string) Theme {
	for _, candidate := range themeOrder {
		if strings.EqualFold(candidate, strings.TrimSpace(name)) {
			return themes[candidate]
		}
	}
	return draculaTheme()
}

// NextTheme returns the theme after current in display order.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if strings.EqualFold(name, strings.TrimSpace(current)) {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

func draculaTheme() Theme {
	// Official Dracula palette: https://draculatheme.com/spec
	return Theme{
		Name: "Dracula",

		Background: "#191A21", // BGDarker
		Surface:    "#282A36", // Background

		Text:    "#F8F8F2", // Foreground
		Muted:   "#6272A4", // Comment
		Faint:   "#44475A", // Selection
		Accent:  "#BD93F9", // Purple
		Success: "#50FA7B", // Green
		Warning: "#FFB86C", // Orange
		Danger:  "#FF5555", // Red
		Info:    "#8BE9FD", // Cyan

		StatusColors: map[string]string{
			"DOWNLOADING":    "#50FA7B", // Green (active)
			"RUNNING_UPDATE": "#8BE9FD", // Cyan (active)
			"PAUSED":         "#FFB86C", // Orange (attention)
			"IDLE":           "#6272A4", // Comment (muted)
			"DONE":           "#BD93F9", // Purple (finished)
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		StatusColors: map[string]string{
			"DOWNLOADING":    "#22c55e", // green-500
			"RUNNING_UPDATE": "#06b6d4", // cyan-500
			"PAUSED":         "#f59e0b", // amber-500
			"IDLE":           "#64748b", // slate-500
			"DONE":           "#38bdf8", // sky-400
		},
	}
}
