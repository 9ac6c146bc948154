package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/skilldrill/internal/field"
	"github.com/san-kum/skilldrill/internal/sched"
	"github.com/san-kum/skilldrill/internal/session"
	"github.com/san-kum/skilldrill/internal/templates"
	"github.com/san-kum/skilldrill/internal/widget"
	"github.com/san-kum/skilldrill/internal/wizard"
)

type recordingHost struct {
	logs     []string
	finished []bool
}

func (h *recordingHost) Log(r string)        { h.logs = append(h.logs, r) }
func (h *recordingHost) Finish(correct bool) { h.finished = append(h.finished, correct) }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func fieldTemplate(t *testing.T) templates.Template {
	tpl, err := templates.Default().Resolve(templates.FieldSimulator)
	require.NoError(t, err)
	return tpl
}

func newField(t *testing.T, host field.Host) FieldModel {
	p, err := field.New(field.Data{Field: [][]int{{1, 1, 0}, {0, 0, 0}, {0, 1, 1}}, Answer: "4"}, host)
	require.NoError(t, err)
	return NewFieldModel(fieldTemplate(t), p, ThemeOrange)
}

func update(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestFieldModelTypingLogsAndSubmits(t *testing.T) {
	host := &recordingHost{}
	m := update(t, newField(t, host), runes("1"), runes("4"), tea.KeyMsg{Type: tea.KeyBackspace}, enter).(FieldModel)

	assert.Equal(t, []string{"1", "14", "1"}, host.logs)
	assert.Equal(t, []bool{false}, host.finished)
	assert.True(t, m.Finished())
	assert.Contains(t, m.View(), "not quite")
}

func TestFieldModelPadAnswersAtOnce(t *testing.T) {
	host := &recordingHost{}
	m := update(t, newField(t, host), tab, runes("4")).(FieldModel)

	assert.Equal(t, []string{"4"}, host.logs)
	assert.Equal(t, []bool{true}, host.finished)
	assert.Contains(t, m.View(), "correct")
}

func TestFieldModelIgnoresInputAfterSubmit(t *testing.T) {
	host := &recordingHost{}
	m := update(t, newField(t, host), runes("4"), enter, runes("5"), enter).(FieldModel)

	assert.Equal(t, []string{"4"}, host.logs)
	assert.Equal(t, []bool{true}, host.finished)
	assert.NoError(t, m.Err())
}

func TestRenderRowsSkipsEmptyRows(t *testing.T) {
	p, err := field.New(field.Data{Field: [][]int{{0, 0}, {1, 0}, {0, 0}}, Answer: "1"}, &recordingHost{})
	require.NoError(t, err)

	out := RenderRows(p.Rows(), NewStyles(ThemeMinimal))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, 1, strings.Count(lines[0], cubeGlyph))
	assert.Equal(t, 1, strings.Count(lines[0], emptyGlyph))
}

func TestWizardModelPulsesToggledStep(t *testing.T) {
	tpl, err := templates.Default().Resolve(templates.CounterWizard)
	require.NoError(t, err)
	m, err := NewWizardModel(tpl, 4, 500*time.Millisecond, ThemeOrange)
	require.NoError(t, err)

	next, cmd := m.Update(runes("3"))
	m = next.(WizardModel)
	assert.NotNil(t, cmd)
	assert.True(t, m.Progress().At(2))
	assert.True(t, m.Strip().Step(2).HasClass(wizard.AnimatedClass))
	assert.Equal(t, 1002, m.Strip().Step(2).Z)

	m = update(t, m, sched.FiredMsg{ID: 1}).(WizardModel)
	assert.False(t, m.Strip().Step(2).HasClass(wizard.AnimatedClass))
	assert.True(t, m.Progress().At(2))

	m = update(t, m, runes("h"), runes("h"), runes(" ")).(WizardModel)
	assert.True(t, m.Progress().At(0))
	m = update(t, m, runes("r")).(WizardModel)
	assert.Equal(t, []bool{false, false, false, false}, m.Progress().Snapshot())
	assert.True(t, m.Strip().Step(0).HasClass(wizard.AnimatedClass))
	assert.True(t, m.Strip().Step(2).HasClass(wizard.AnimatedClass))
	assert.False(t, m.Strip().Step(1).HasClass(wizard.AnimatedClass))
}

func TestNewWizardModelRejectsStepCount(t *testing.T) {
	tpl, err := templates.Default().Resolve(templates.CounterWizard)
	require.NoError(t, err)

	tests := []struct {
		name  string
		steps int
	}{
		{"zero", 0},
		{"negative", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWizardModel(tpl, tt.steps, 500*time.Millisecond, ThemeOrange)
			assert.ErrorIs(t, err, widget.ErrValidation)
		})
	}
}

func TestDrillModelAdvances(t *testing.T) {
	drill, err := session.NewDrill([]session.Entry{
		{Name: "one", Data: field.Data{Field: [][]int{{1}}, Answer: "1"}},
		{Name: "two", Data: field.Data{Field: [][]int{{1, 1}}, Answer: "2"}},
	})
	require.NoError(t, err)

	hosts := map[string]*recordingHost{}
	factory := func(e session.Entry) field.Host {
		h := &recordingHost{}
		hosts[e.Name] = h
		return h
	}

	m, err := NewDrillModel(templates.Default(), drill, factory, 500*time.Millisecond, ThemeOrange, nil)
	require.NoError(t, err)

	m = update(t, m, runes("1"), enter).(DrillModel)
	assert.Equal(t, []bool{true, false}, drill.Progress().Snapshot())
	assert.True(t, m.strip.Step(0).HasClass(wizard.AnimatedClass))
	assert.Contains(t, m.View(), "next puzzle")

	m = update(t, m, enter, tab, runes("3")).(DrillModel)
	assert.True(t, drill.Done())
	assert.Equal(t, []bool{true, false}, m.Verdicts())
	assert.Equal(t, []bool{true}, hosts["one"].finished)
	assert.Equal(t, []bool{false}, hosts["two"].finished)
	assert.Contains(t, m.View(), "drill complete")
}

func TestGetThemeFallback(t *testing.T) {
	assert.Equal(t, "ocean", GetTheme("ocean").Name)
	assert.Equal(t, ThemeOrange.Name, GetTheme("nonexistent").Name)
	assert.Len(t, ThemeNames(), len(Themes))
}
