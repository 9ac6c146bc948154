package session

import (
	"github.com/san-kum/skilldrill/internal/field"
	"github.com/san-kum/skilldrill/internal/widget"
	"github.com/san-kum/skilldrill/internal/wizard"
)

// Entry is one named puzzle in a drill.
type Entry struct {
	Name string
	Data field.Data
}

// Drill runs puzzles one after another and mirrors completion onto a
// wizard progress sequence, one step per puzzle.
type Drill struct {
	entries  []Entry
	progress *wizard.Progress[bool]
	current  int
}

func NewDrill(entries []Entry) (*Drill, error) {
	if len(entries) == 0 {
		return nil, widget.Invalid("drill", "no puzzles")
	}
	return &Drill{
		entries:  entries,
		progress: wizard.NewProgress(make([]bool, len(entries))),
	}, nil
}

func (d *Drill) Progress() *wizard.Progress[bool] { return d.progress }

func (d *Drill) Len() int { return len(d.entries) }

// Index is the position of the current puzzle.
func (d *Drill) Index() int { return d.current }

func (d *Drill) Current() (Entry, bool) {
	if d.Done() {
		return Entry{}, false
	}
	return d.entries[d.current], true
}

// Complete marks the current puzzle finished and moves to the next one.
func (d *Drill) Complete() error {
	if d.Done() {
		return &widget.InvalidStateError{Op: "complete", State: "done"}
	}
	if err := d.progress.Set(d.current, true); err != nil {
		return err
	}
	d.current++
	return nil
}

func (d *Drill) Done() bool { return d.current >= len(d.entries) }
