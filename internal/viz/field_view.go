package viz

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/skilldrill/internal/field"
	"github.com/san-kum/skilldrill/internal/templates"
)

// RenderRows draws the rendered rows of a puzzle as cubes.
func RenderRows(rows []field.RenderedRow, st Styles) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(indent)
		for _, c := range row.Cells {
			if c == field.Filled {
				b.WriteString(st.Marked.Render(cubeGlyph) + " ")
			} else {
				b.WriteString(st.Unmarked.Render(emptyGlyph) + " ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FieldModel hosts one field puzzle. Typing edits the response; enter
// submits it. Tab switches to the number pad where a single digit answers
// and submits at once.
type FieldModel struct {
	tpl    templates.Template
	styles Styles
	puzzle *field.Puzzle
	input  textinput.Model
	pad    bool
	err    error
	// Standalone models quit once the verdict has been seen.
	standalone bool
}

func NewFieldModel(tpl templates.Template, puzzle *field.Puzzle, theme Theme) FieldModel {
	ti := textinput.New()
	ti.Placeholder = "?"
	ti.CharLimit = 6
	ti.Width = 8
	ti.Focus()
	return FieldModel{
		tpl:    tpl,
		styles: NewStyles(theme),
		puzzle: puzzle,
		input:  ti,
	}
}

func (m FieldModel) Init() tea.Cmd { return textinput.Blink }

func (m FieldModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if m.Finished() {
		if isKey && m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}
	if isKey {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.err = m.puzzle.Submit()
			m.input.Blur()
			return m, nil
		case "tab":
			m.pad = !m.pad
			if m.pad {
				m.input.Blur()
				return m, nil
			}
			return m, m.input.Focus()
		}
		if m.pad {
			s := key.String()
			if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
				m.input.SetValue(s)
				m.err = m.puzzle.SetResponseAndSubmit(s)
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.err = m.puzzle.SetResponse(v)
	}
	return m, cmd
}

func (m FieldModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header(m.tpl.Title, m.tpl.Help))
	b.WriteString(RenderRows(m.puzzle.Rows(), m.styles))
	b.WriteString("\n")

	if correct, ok := m.puzzle.Verdict(); ok {
		b.WriteString(indent + m.styles.Cursor.Render("answer: "+m.puzzle.Response()) + "  ")
		if correct {
			b.WriteString(m.styles.Success.Render("✓ correct"))
		} else {
			b.WriteString(m.styles.Error.Render("✗ not quite"))
		}
		b.WriteString("\n")
	} else if m.pad {
		b.WriteString(indent + m.styles.Cursor.Render("pad: ") + m.styles.Key.Render("0 1 2 3 4 5 6 7 8 9") + "\n")
	} else {
		b.WriteString(indent + m.input.View() + "\n")
	}

	if m.err != nil {
		b.WriteString(indent + m.styles.Error.Render(m.err.Error()) + "\n")
	}
	if m.Finished() {
		if m.standalone {
			b.WriteString("\n" + m.styles.Keys("any key", "quit"))
		}
		return b.String()
	}
	b.WriteString("\n" + m.styles.Keys("enter", "submit", "tab", "number pad", "esc", "quit"))
	return b.String()
}

func (m FieldModel) Finished() bool { return m.puzzle.State() == field.Submitted }

func (m FieldModel) Err() error { return m.err }

func RunField(m FieldModel) error {
	m.standalone = true
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
