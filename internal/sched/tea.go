package sched

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FiredMsg is delivered to the Bubble Tea program when a scheduled task is due.
type FiredMsg struct {
	ID uint64
}

// Tea schedules tasks as Bubble Tea ticks. ScheduleAfter only queues a
// command; the host must return [Tea.Drain] from Update and feed every
// message through [Tea.Run] so callbacks run on the event loop.
type Tea struct {
	next   uint64
	tasks  map[uint64]func()
	queued []tea.Cmd
}

func NewTea() *Tea {
	return &Tea{tasks: make(map[uint64]func())}
}

func (s *Tea) ScheduleAfter(d time.Duration, fn func()) {
	s.next++
	id := s.next
	s.tasks[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg { return FiredMsg{ID: id} }))
}

// Drain returns the commands queued since the last call, batched.
func (s *Tea) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Run executes the task behind msg if msg is a FiredMsg. It reports whether
// msg was consumed.
func (s *Tea) Run(msg tea.Msg) bool {
	fired, ok := msg.(FiredMsg)
	if !ok {
		return false
	}
	fn, ok := s.tasks[fired.ID]
	if !ok {
		return true
	}
	delete(s.tasks, fired.ID)
	fn()
	return true
}

// Pending returns the number of tasks that have not fired yet.
func (s *Tea) Pending() int { return len(s.tasks) }
