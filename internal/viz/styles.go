package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	cubeGlyph  = "■"
	emptyGlyph = "□"
	indent     = "    "
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Marked   lipgloss.Style
	Unmarked lipgloss.Style
	Pulse    lipgloss.Style
	Cursor   lipgloss.Style
	Key      lipgloss.Style
	Hint     lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Panel    lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(t.Muted),
		Marked:   lipgloss.NewStyle().Foreground(t.Marked),
		Unmarked: lipgloss.NewStyle().Foreground(t.Unmarked),
		Pulse:    lipgloss.NewStyle().Foreground(t.Pulse).Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Key:      lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Hint:     lipgloss.NewStyle().Foreground(t.Muted),
		Success:  lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}

// Header renders a title block the way every screen opens.
func (s Styles) Header(title, subtitle string) string {
	var b strings.Builder
	b.WriteString("\n\n" + indent + s.Title.Render(title) + "\n")
	if subtitle != "" {
		b.WriteString(indent + s.Subtitle.Render(subtitle) + "\n")
	}
	b.WriteString(indent + s.Subtitle.Render("─────────────────────────") + "\n\n")
	return b.String()
}

// Keys renders alternating key/description pairs as a hint line.
func (s Styles) Keys(pairs ...string) string {
	var b strings.Builder
	b.WriteString(indent)
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(s.Key.Render(pairs[i]))
		b.WriteString(s.Hint.Render(" " + pairs[i+1] + "  "))
	}
	return strings.TrimRight(b.String(), " ") + "\n"
}
