// Package wizard implements the progress wizard: a strip of step cells that
// pulses whenever a step's completion value changes.
//
//   - [Progress]: host-owned, fixed-length step sequence with change notification
//   - [Animator]: diffs consecutive observations and pulses every flipped step
//   - [Strip]: in-memory [Mount] the terminal views render from
//
// # Example
//
//	progress := wizard.NewProgress(make([]bool, 5))
//	strip := wizard.NewStrip(progress.Len())
//	anim := wizard.New[bool](strip, scheduler)
//	_ = anim.Watch(progress)
//	_ = progress.Set(2, true) // cell 2 pulses for 500ms
//
// # Thread Safety
//
// None of the types are safe for concurrent use. They are meant to be driven
// from a single event loop, with the [sched.Scheduler] delivering expirations
// on that same loop.
package wizard
