package wizard

import (
	"time"

	"github.com/san-kum/skilldrill/internal/sched"
	"github.com/san-kum/skilldrill/internal/widget"
)

const (
	// AnimatedClass is applied to a cell for the duration of a pulse.
	AnimatedClass = "animated"

	// DefaultPulseDelay is how long a pulse stays visible.
	DefaultPulseDelay = 500 * time.Millisecond

	zBase = 1000
)

type options struct {
	delay   time.Duration
	onPulse func(i int)
}

// Option configures an Animator.
type Option func(*options)

// WithPulseDelay sets how long a pulse stays visible.
func WithPulseDelay(d time.Duration) Option {
	return func(o *options) { o.delay = d }
}

// WithPulseHook is called once per pulsed index, after the cell is marked.
func WithPulseHook(fn func(i int)) Option {
	return func(o *options) { o.onPulse = fn }
}

// Animator pulses the cells of a Mount whose step values changed.
type Animator[T comparable] struct {
	mount    Mount
	sched    sched.Scheduler
	opts     options
	observed []T
	unwatch  func()
}

// New returns an Animator pulsing the cells of mount, with expirations run by s.
func New[T comparable](mount Mount, s sched.Scheduler, opts ...Option) *Animator[T] {
	o := options{delay: DefaultPulseDelay}
	for _, opt := range opts {
		opt(&o)
	}
	return &Animator[T]{mount: mount, sched: s, opts: o}
}

// Diff returns the ascending indices where newSeq and oldSeq differ.
func Diff[T comparable](newSeq, oldSeq []T) ([]int, error) {
	if len(newSeq) != len(oldSeq) {
		return nil, widget.Invalid("diff", "sequence length changed from %d to %d", len(oldSeq), len(newSeq))
	}
	var dirty []int
	for i := range newSeq {
		if newSeq[i] != oldSeq[i] {
			dirty = append(dirty, i)
		}
	}
	return dirty, nil
}

// OnProgressChange pulses every step that differs between the two sequences.
// Nothing is touched when the input is rejected.
func (a *Animator[T]) OnProgressChange(newSeq, oldSeq []T) error {
	dirty, err := Diff(newSeq, oldSeq)
	if err != nil {
		return err
	}
	if len(newSeq) != a.mount.Len() {
		return widget.Invalid("progress change", "sequence has %d steps, mount has %d cells", len(newSeq), a.mount.Len())
	}
	a.observed = clone(newSeq)

	for _, i := range dirty {
		a.pulse(i)
	}
	return nil
}

func (a *Animator[T]) pulse(i int) {
	cell := a.mount.Cell(i)
	cell.SetZIndex(zBase + i)
	cell.AddClass(AnimatedClass)
	a.sched.ScheduleAfter(a.opts.delay, func() {
		cell.RemoveClass(AnimatedClass)
	})
	if a.opts.onPulse != nil {
		a.opts.onPulse(i)
	}
}

// Watch registers the animator as the single observer of p.
func (a *Animator[T]) Watch(p *Progress[T]) error {
	if a.unwatch != nil {
		return &widget.InvalidStateError{Op: "watch", State: "watching"}
	}
	if p.Len() != a.mount.Len() {
		return widget.Invalid("watch", "progress has %d steps, mount has %d cells", p.Len(), a.mount.Len())
	}
	a.observed = p.Snapshot()
	a.unwatch = p.Subscribe(func(newSeq, oldSeq []T) {
		// Lengths are fixed by Progress and checked above.
		_ = a.OnProgressChange(newSeq, oldSeq)
	})
	return nil
}

// Unwatch detaches from the watched Progress. Pending pulses still expire.
func (a *Animator[T]) Unwatch() {
	if a.unwatch != nil {
		a.unwatch()
		a.unwatch = nil
	}
}

// Observed returns a copy of the last sequence the animator saw.
func (a *Animator[T]) Observed() []T { return clone(a.observed) }
