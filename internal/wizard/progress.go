package wizard

import "github.com/san-kum/skilldrill/internal/widget"

// Observer receives private copies of the sequence after and before a change.
type Observer[T comparable] func(newSeq, oldSeq []T)

// Progress is an ordered, fixed-length sequence of step values. Its length
// never changes after construction; only values do.
type Progress[T comparable] struct {
	values    []T
	observers []subscription[T]
	nextID    int
}

type subscription[T comparable] struct {
	id int
	fn Observer[T]
}

func NewProgress[T comparable](initial []T) *Progress[T] {
	return &Progress[T]{values: clone(initial)}
}

func (p *Progress[T]) Len() int { return len(p.values) }

func (p *Progress[T]) At(i int) T { return p.values[i] }

func (p *Progress[T]) Snapshot() []T { return clone(p.values) }

// Subscribe registers fn and returns a function that removes it.
func (p *Progress[T]) Subscribe(fn Observer[T]) func() {
	p.nextID++
	id := p.nextID
	p.observers = append(p.observers, subscription[T]{id: id, fn: fn})
	return func() {
		for i, s := range p.observers {
			if s.id == id {
				p.observers = append(p.observers[:i:i], p.observers[i+1:]...)
				return
			}
		}
	}
}

// Observers returns the number of live subscriptions.
func (p *Progress[T]) Observers() int { return len(p.observers) }

// Set changes the value of step i and notifies observers if it differs.
func (p *Progress[T]) Set(i int, v T) error {
	if i < 0 || i >= len(p.values) {
		return widget.Invalid("progress.set", "index %d out of range [0,%d)", i, len(p.values))
	}
	if p.values[i] == v {
		return nil
	}
	old := clone(p.values)
	p.values[i] = v
	p.notify(old)
	return nil
}

// Replace swaps in a whole new sequence of the same length.
func (p *Progress[T]) Replace(seq []T) error {
	if len(seq) != len(p.values) {
		return widget.Invalid("progress.replace", "length %d, want %d", len(seq), len(p.values))
	}
	changed := false
	for i := range seq {
		if seq[i] != p.values[i] {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}
	old := p.values
	p.values = clone(seq)
	p.notify(old)
	return nil
}

func (p *Progress[T]) notify(old []T) {
	for _, s := range p.observers {
		s.fn(clone(p.values), clone(old))
	}
}

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
