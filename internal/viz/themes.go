package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name     string
	Marked   lipgloss.Color
	Unmarked lipgloss.Color
	Pulse    lipgloss.Color
	Accent   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Success  lipgloss.Color
	Error    lipgloss.Color
}

// Available themes
var (
	ThemeOrange = Theme{
		Name:     "orange",
		Marked:   lipgloss.Color("#ff8c1a"), // orange cube
		Unmarked: lipgloss.Color("#eeeeee"), // white cube
		Pulse:    lipgloss.Color("#ffff00"),
		Accent:   lipgloss.Color("#00cccc"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#666688"),
		Success:  lipgloss.Color("#00ff88"),
		Error:    lipgloss.Color("#ff4444"),
	}

	ThemeRetroGreen = Theme{
		Name:     "retro",
		Marked:   lipgloss.Color("#00ff00"), // Green phosphor
		Unmarked: lipgloss.Color("#005500"),
		Pulse:    lipgloss.Color("#88ff88"),
		Accent:   lipgloss.Color("#00cc00"),
		Text:     lipgloss.Color("#00ff00"),
		Muted:    lipgloss.Color("#005500"),
		Success:  lipgloss.Color("#88ff88"),
		Error:    lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Marked:   lipgloss.Color("#ffffff"),
		Unmarked: lipgloss.Color("#555555"),
		Pulse:    lipgloss.Color("#0088ff"),
		Accent:   lipgloss.Color("#0088ff"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#888888"),
		Success:  lipgloss.Color("#00ff00"),
		Error:    lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:     "ocean",
		Marked:   lipgloss.Color("#00a8cc"),
		Unmarked: lipgloss.Color("#4488aa"),
		Pulse:    lipgloss.Color("#ffd700"),
		Accent:   lipgloss.Color("#0077be"),
		Text:     lipgloss.Color("#e0f0ff"),
		Muted:    lipgloss.Color("#4488aa"),
		Success:  lipgloss.Color("#00ff88"),
		Error:    lipgloss.Color("#ff4444"),
	}

	// All available themes
	Themes = []Theme{
		ThemeOrange,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to orange
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeOrange
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
