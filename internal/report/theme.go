package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used to decorate a report.
type Theme struct {
	Name string

	Surface string // Pager footer background
	Border  string // Rule lines

	Text    string
	Muted   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Rule    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
	Footer  lipgloss.Style
}

// Styles returns styles bound to r so color output follows r's profile.
func (t Theme) Styles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Heading: r.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Rule: r.NewStyle().
			Foreground(lipgloss.Color(t.Border)),

		Muted: r.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Success: r.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Warning: r.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		Danger: r.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Footer: r.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
	}
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:    "Nightfox",
		Surface: "#192330", // bg1
		Border:  "#39506d", // bg4
		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name:    "Kanagawa",
		Surface: "#1F1F28", // sumiInk3
		Border:  "#54546D", // sumiInk6
		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name:    "Slate",
		Surface: "#0f172a", // slate-900
		Border:  "#334155", // slate-700
		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
	}
}
