package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/skilldrill/internal/sched"
	"github.com/san-kum/skilldrill/internal/templates"
	"github.com/san-kum/skilldrill/internal/widget"
	"github.com/san-kum/skilldrill/internal/wizard"
)

// RenderStrip draws one cube per step. Pulsing cells are bracketed and drawn
// in the pulse color.
func RenderStrip(strip *wizard.Strip, done []bool, st Styles) string {
	cells := make([]string, strip.Len())
	for i := range cells {
		glyph := emptyGlyph
		style := st.Unmarked
		if i < len(done) && done[i] {
			glyph = cubeGlyph
			style = st.Marked
		}
		if strip.Step(i).HasClass(wizard.AnimatedClass) {
			style = st.Pulse
			glyph = "[" + glyph + "]"
		} else {
			glyph = " " + glyph + " "
		}
		cells[i] = style.Render(glyph)
	}
	return strings.Join(cells, "")
}

// WizardModel is the stand-alone progress wizard: the learner toggles steps
// and watches them pulse.
type WizardModel struct {
	tpl      templates.Template
	styles   Styles
	progress *wizard.Progress[bool]
	strip    *wizard.Strip
	anim     *wizard.Animator[bool]
	sched    *sched.Tea
	cursor   int
	err      error
}

func NewWizardModel(tpl templates.Template, steps int, delay time.Duration, theme Theme) (WizardModel, error) {
	if steps <= 0 {
		return WizardModel{}, widget.Invalid("wizard", "steps must be positive, got %d", steps)
	}
	progress := wizard.NewProgress(make([]bool, steps))
	strip := wizard.NewStrip(steps)
	s := sched.NewTea()
	anim := wizard.New[bool](strip, s, wizard.WithPulseDelay(delay))
	if err := anim.Watch(progress); err != nil {
		return WizardModel{}, err
	}
	return WizardModel{
		tpl:      tpl,
		styles:   NewStyles(theme),
		progress: progress,
		strip:    strip,
		anim:     anim,
		sched:    s,
	}, nil
}

func (m WizardModel) Init() tea.Cmd { return nil }

func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.sched.Run(msg) {
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < m.progress.Len()-1 {
			m.cursor++
		}
	case " ", "enter":
		m.toggle(m.cursor)
	case "r":
		m.err = m.progress.Replace(make([]bool, m.progress.Len()))
	case "a":
		all := make([]bool, m.progress.Len())
		for i := range all {
			all[i] = true
		}
		m.err = m.progress.Replace(all)
	default:
		s := key.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); i < m.progress.Len() {
				m.cursor = i
				m.toggle(i)
			}
		}
	}
	return m, m.sched.Drain()
}

func (m *WizardModel) toggle(i int) {
	m.err = m.progress.Set(i, !m.progress.At(i))
}

func (m WizardModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header(m.tpl.Title, m.tpl.Help))
	b.WriteString(indent + RenderStrip(m.strip, m.progress.Snapshot(), m.styles) + "\n")

	marker := make([]string, m.progress.Len())
	for i := range marker {
		marker[i] = "   "
		if i == m.cursor {
			marker[i] = " ▴ "
		}
	}
	b.WriteString(indent + m.styles.Cursor.Render(strings.Join(marker, "")) + "\n\n")

	done := 0
	for _, v := range m.progress.Snapshot() {
		if v {
			done++
		}
	}
	b.WriteString(indent + m.styles.Subtitle.Render(fmt.Sprintf("%d/%d steps", done, m.progress.Len())) + "\n")
	if m.err != nil {
		b.WriteString(indent + m.styles.Error.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n" + m.styles.Keys("h/l", "move", "space", "toggle", "1-9", "jump", "a/r", "all/reset", "q", "quit"))
	return b.String()
}

// Progress exposes the bound sequence.
func (m WizardModel) Progress() *wizard.Progress[bool] { return m.progress }

// Strip exposes the rendered cells.
func (m WizardModel) Strip() *wizard.Strip { return m.strip }

func RunWizard(m WizardModel) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
