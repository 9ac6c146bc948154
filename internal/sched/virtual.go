package sched

import "time"

type task struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// Virtual is a manually advanced clock. It is not safe for concurrent use.
type Virtual struct {
	now   time.Duration
	seq   uint64
	tasks []task
}

func NewVirtual() *Virtual {
	return &Virtual{}
}

func (v *Virtual) ScheduleAfter(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	v.seq++
	v.tasks = append(v.tasks, task{at: v.now + d, seq: v.seq, fn: fn})
}

// Now returns the virtual time elapsed since creation.
func (v *Virtual) Now() time.Duration { return v.now }

// Pending returns the number of tasks not yet run.
func (v *Virtual) Pending() int { return len(v.tasks) }

// Advance moves the clock forward by d and runs every task that falls due,
// earliest first and in scheduling order for ties. Tasks scheduled by a
// running task are honoured if they fall due within the window.
// It returns the number of tasks run.
func (v *Virtual) Advance(d time.Duration) int {
	target := v.now + d
	ran := 0
	for {
		idx := v.next(target)
		if idx < 0 {
			break
		}
		t := v.tasks[idx]
		v.tasks = append(v.tasks[:idx], v.tasks[idx+1:]...)
		v.now = t.at
		t.fn()
		ran++
	}
	v.now = target
	return ran
}

func (v *Virtual) next(limit time.Duration) int {
	best := -1
	for i, t := range v.tasks {
		if t.at > limit {
			continue
		}
		if best < 0 || t.at < v.tasks[best].at || (t.at == v.tasks[best].at && t.seq < v.tasks[best].seq) {
			best = i
		}
	}
	return best
}
