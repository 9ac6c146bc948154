package field

import "github.com/san-kum/skilldrill/internal/widget"

// Host receives the puzzle's two outbound calls. Return values are never
// consulted.
type Host interface {
	Finish(correct bool)
	Log(response string)
}

// State is the lifecycle position of a Puzzle.
type State int

const (
	Rendering State = iota
	AwaitingResponse
	Submitted
)

func (s State) String() string {
	switch s {
	case Rendering:
		return "rendering"
	case AwaitingResponse:
		return "awaiting response"
	case Submitted:
		return "submitted"
	}
	return "unknown"
}

// Cell is the visual marker of one rendered grid cell.
type Cell int

const (
	Empty Cell = iota
	Filled
)

// RenderedRow is the visual form of one source row with a nonzero sum.
type RenderedRow struct {
	Source int
	Cells  []Cell
}

// Puzzle is a single-use counting puzzle bound to one Host.
type Puzzle struct {
	data     Data
	host     Host
	state    State
	rows     []RenderedRow
	response string
	correct  bool
}

// New validates data, renders it and leaves the puzzle awaiting a response.
func New(data Data, host Host) (*Puzzle, error) {
	if host == nil {
		return nil, widget.Invalid("field", "host is nil")
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	p := &Puzzle{data: data, host: host, state: Rendering}
	p.render()
	p.state = AwaitingResponse
	return p, nil
}

func (p *Puzzle) render() {
	for i, line := range p.data.Field {
		sum := 0
		for _, v := range line {
			sum += v
		}
		if sum == 0 {
			continue
		}
		row := RenderedRow{Source: i, Cells: make([]Cell, len(line))}
		for j, v := range line {
			if v == 1 {
				row.Cells[j] = Filled
			}
		}
		p.rows = append(p.rows, row)
	}
}

// SetResponse stores v and forwards it to the host log.
func (p *Puzzle) SetResponse(v string) error {
	if p.state != AwaitingResponse {
		return &widget.InvalidStateError{Op: "set response", State: p.state.String()}
	}
	p.response = v
	p.host.Log(v)
	return nil
}

// Submit compares the response with the answer and reports the verdict.
// It succeeds once per puzzle.
func (p *Puzzle) Submit() error {
	if p.state != AwaitingResponse {
		return &widget.InvalidStateError{Op: "submit", State: p.state.String()}
	}
	p.correct = p.data.Answer.Matches(p.response)
	p.state = Submitted
	p.host.Finish(p.correct)
	return nil
}

func (p *Puzzle) SetResponseAndSubmit(v string) error {
	if err := p.SetResponse(v); err != nil {
		return err
	}
	return p.Submit()
}

func (p *Puzzle) State() State { return p.state }

func (p *Puzzle) Response() string { return p.response }

// Verdict returns the submitted verdict; ok is false before submission.
func (p *Puzzle) Verdict() (correct, ok bool) {
	return p.correct, p.state == Submitted
}

// Rows returns a copy of the rendered rows.
func (p *Puzzle) Rows() []RenderedRow {
	out := make([]RenderedRow, len(p.rows))
	for i, r := range p.rows {
		out[i] = RenderedRow{Source: r.Source, Cells: append([]Cell(nil), r.Cells...)}
	}
	return out
}

// MarkedCount is the number of filled cells across rendered rows.
func (p *Puzzle) MarkedCount() int {
	n := 0
	for _, r := range p.rows {
		for _, c := range r.Cells {
			if c == Filled {
				n++
			}
		}
	}
	return n
}
