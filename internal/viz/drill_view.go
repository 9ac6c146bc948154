package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/san-kum/skilldrill/internal/field"
	"github.com/san-kum/skilldrill/internal/sched"
	"github.com/san-kum/skilldrill/internal/session"
	"github.com/san-kum/skilldrill/internal/templates"
	"github.com/san-kum/skilldrill/internal/wizard"
)

// HostFactory builds the field.Host for a drill entry.
type HostFactory func(e session.Entry) field.Host

// DrillModel runs a sequence of field puzzles under a progress wizard.
type DrillModel struct {
	wizardTpl templates.Template
	fieldTpl  templates.Template
	theme     Theme
	styles    Styles
	drill     *session.Drill
	strip     *wizard.Strip
	sched     *sched.Tea
	hosts     HostFactory
	logger    *zap.Logger
	current   FieldModel
	verdicts  []bool
	err       error
}

func NewDrillModel(reg *templates.Registry, drill *session.Drill, hosts HostFactory, delay time.Duration, theme Theme, logger *zap.Logger) (DrillModel, error) {
	wizardTpl, err := reg.Resolve(templates.CounterWizard)
	if err != nil {
		return DrillModel{}, err
	}
	fieldTpl, err := reg.Resolve(templates.FieldSimulator)
	if err != nil {
		return DrillModel{}, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	strip := wizard.NewStrip(drill.Len())
	s := sched.NewTea()
	anim := wizard.New[bool](strip, s,
		wizard.WithPulseDelay(delay),
		wizard.WithPulseHook(func(i int) { logger.Debug("step pulsed", zap.Int("step", i)) }),
	)
	if err := anim.Watch(drill.Progress()); err != nil {
		return DrillModel{}, err
	}

	m := DrillModel{
		wizardTpl: wizardTpl,
		fieldTpl:  fieldTpl,
		theme:     theme,
		styles:    NewStyles(theme),
		drill:     drill,
		strip:     strip,
		sched:     s,
		hosts:     hosts,
		logger:    logger,
	}
	if err := m.load(); err != nil {
		return DrillModel{}, err
	}
	return m, nil
}

func (m *DrillModel) load() error {
	e, ok := m.drill.Current()
	if !ok {
		return nil
	}
	p, err := field.New(e.Data, m.hosts(e))
	if err != nil {
		return fmt.Errorf("puzzle %s: %w", e.Name, err)
	}
	m.current = NewFieldModel(m.fieldTpl, p, m.theme)
	return nil
}

func (m DrillModel) Init() tea.Cmd { return m.current.Init() }

func (m DrillModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.sched.Run(msg) {
		return m, nil
	}
	key, isKey := msg.(tea.KeyMsg)
	if isKey && (key.String() == "ctrl+c" || key.String() == "esc") {
		return m, tea.Quit
	}
	if m.drill.Done() {
		if isKey {
			return m, tea.Quit
		}
		return m, nil
	}

	// A finished puzzle waits for enter before the next one loads.
	if m.current.Finished() {
		if isKey && key.String() == "enter" {
			m.err = m.load()
			return m, m.current.Init()
		}
		return m, nil
	}

	next, cmd := m.current.Update(msg)
	m.current = next.(FieldModel)
	if m.current.Finished() {
		correct, _ := m.current.puzzle.Verdict()
		m.verdicts = append(m.verdicts, correct)
		m.err = m.drill.Complete()
	}
	return m, tea.Batch(cmd, m.sched.Drain())
}

func (m DrillModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header(m.wizardTpl.Title, fmt.Sprintf("puzzle %d of %d", min(m.drill.Index()+1, m.drill.Len()), m.drill.Len())))
	b.WriteString(indent + RenderStrip(m.strip, m.drill.Progress().Snapshot(), m.styles) + "\n")

	if m.drill.Done() && m.current.Finished() {
		b.WriteString(m.current.View())
		b.WriteString("\n" + indent + m.styles.Title.Render("drill complete") + "\n")
		b.WriteString("\n" + m.styles.Keys("any key", "quit"))
		return b.String()
	}
	b.WriteString(m.current.View())
	if m.current.Finished() {
		b.WriteString("\n" + m.styles.Keys("enter", "next puzzle", "esc", "quit"))
	}
	if m.err != nil {
		b.WriteString(indent + m.styles.Error.Render(m.err.Error()) + "\n")
	}
	return b.String()
}

// Verdicts returns the verdict of each finished puzzle in order.
func (m DrillModel) Verdicts() []bool { return append([]bool(nil), m.verdicts...) }

func RunDrill(m DrillModel) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
