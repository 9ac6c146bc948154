// Package session hosts puzzles on behalf of the CLI: it receives the
// puzzle's log and finish calls, keeps the response-change log, and stores the
// finished attempt.
package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/skilldrill/internal/field"
	"github.com/san-kum/skilldrill/internal/storage"
)

type Option func(*Recorder)

// WithStore persists each finished attempt.
func WithStore(st *storage.Store) Option {
	return func(r *Recorder) { r.store = st }
}

func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// OnFinish is called after the verdict is recorded and stored.
func OnFinish(fn func(correct bool)) Option {
	return func(r *Recorder) { r.onFinish = fn }
}

// Recorder implements field.Host.
type Recorder struct {
	name     string
	data     field.Data
	logger   *zap.Logger
	store    *storage.Store
	now      func() time.Time
	onFinish func(correct bool)

	started   time.Time
	edits     []storage.Edit
	response  string
	finished  bool
	correct   bool
	attemptID string
	saveErr   error
}

func NewRecorder(name string, data field.Data, logger *zap.Logger, opts ...Option) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Recorder{
		name:   name,
		data:   data,
		logger: logger.With(zap.String("puzzle", name)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.started = r.now()
	return r
}

func (r *Recorder) Log(response string) {
	elapsed := r.now().Sub(r.started)
	r.response = response
	r.edits = append(r.edits, storage.Edit{Elapsed: elapsed, Response: response})
	r.logger.Debug("response edited",
		zap.String("response", response),
		zap.Duration("elapsed", elapsed))
}

func (r *Recorder) Finish(correct bool) {
	finishedAt := r.now()
	r.finished, r.correct = true, correct
	r.logger.Info("puzzle finished",
		zap.Bool("correct", correct),
		zap.String("response", r.response),
		zap.Int("edits", len(r.edits)),
		zap.Duration("elapsed", finishedAt.Sub(r.started)))

	if r.store != nil {
		id, err := r.store.Save(&storage.Attempt{
			Puzzle:   r.name,
			Answer:   string(r.data.Answer),
			Response: r.response,
			Correct:  correct,
			Marked:   r.data.Marked(),
			Started:  r.started,
			Finished: finishedAt,
			Edits:    r.edits,
		})
		if err != nil {
			r.saveErr = err
			r.logger.Warn("failed to save attempt", zap.Error(err))
		} else {
			r.attemptID = id
		}
	}

	if r.onFinish != nil {
		r.onFinish(correct)
	}
}

// Edits returns the response-change log so far.
func (r *Recorder) Edits() []storage.Edit {
	return append([]storage.Edit(nil), r.edits...)
}

func (r *Recorder) Verdict() (correct, finished bool) { return r.correct, r.finished }

// AttemptID is empty until a finished attempt has been stored.
func (r *Recorder) AttemptID() string { return r.attemptID }

func (r *Recorder) SaveErr() error { return r.saveErr }
