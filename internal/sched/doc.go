// Package sched provides the deferred-task abstraction the widgets use for
// transient visual effects.
//
// Widgets only ever call [Scheduler.ScheduleAfter]. Two implementations exist:
//
//   - [Virtual]: a manual clock for tests; nothing runs until [Virtual.Advance]
//   - [Tea]: turns each task into a Bubble Tea tick so the callback runs on the
//     program's event loop, never concurrently with Update
//
// Scheduled tasks cannot be cancelled; the effects they undo expire on their own.
package sched
