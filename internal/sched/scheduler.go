package sched

import "time"

// Scheduler runs fn once, no earlier than d from now, on the owner's event loop.
type Scheduler interface {
	ScheduleAfter(d time.Duration, fn func())
}

// Func adapts a plain function to Scheduler.
type Func func(d time.Duration, fn func())

func (f Func) ScheduleAfter(d time.Duration, fn func()) { f(d, fn) }
