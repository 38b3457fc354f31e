// Package debounce coalesces bursts of work into a single trailing run.
package debounce

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrClosed is returned by Schedule after Close.
var ErrClosed = errors.New("debouncer closed")

// Task is a unit of deferred work.
type Task func(ctx context.Context) error

// Debouncer runs the most recently scheduled task once no new task has been
// scheduled for the configured delay. Earlier tasks that were replaced never
// run, and a task never runs after a newer one has.
type Debouncer struct {
	delay   time.Duration
	onError func(error)

	mu      sync.Mutex
	timer   *time.Timer
	pending Task
	seq     uint64
	closed  bool

	runMu   sync.Mutex
	lastRun uint64
}

// New creates a Debouncer. onError, when set, receives every task error.
func New(delay time.Duration, onError func(error)) *Debouncer {
	return &Debouncer{delay: delay, onError: onError}
}

// Schedule replaces any pending task with task and restarts the timer.
func (d *Debouncer) Schedule(task Task) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	d.seq++
	d.pending = task
	if d.timer != nil {
		d.timer.Stop()
	}
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() { d.fire(seq) })
	return nil
}

func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq || d.pending == nil {
		d.mu.Unlock()
		return
	}
	task, seq := d.takeLocked()
	d.mu.Unlock()

	_ = d.run(context.Background(), task, seq)
}

// takeLocked removes the pending task. d.mu must be held.
func (d *Debouncer) takeLocked() (Task, uint64) {
	task := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return task, d.seq
}

func (d *Debouncer) run(ctx context.Context, task Task, seq uint64) error {
	d.runMu.Lock()
	defer d.runMu.Unlock()

	if seq <= d.lastRun {
		return nil
	}
	d.lastRun = seq

	err := task(ctx)
	if err != nil && d.onError != nil {
		d.onError(err)
	}
	return err
}

// Flush runs the pending task now, or waits for a task that is already
// running. It returns the error of the task it ran.
func (d *Debouncer) Flush(ctx context.Context) error {
	d.mu.Lock()
	task, seq := d.takeLocked()
	d.mu.Unlock()

	if task == nil {
		// Wait for an in-flight run.
		d.runMu.Lock()
		d.runMu.Unlock()
		return nil
	}
	return d.run(ctx, task, seq)
}

// Cancel drops the pending task without running it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.takeLocked()
}

// Pending reports whether a task is waiting to run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Close flushes the pending task and refuses further schedules.
func (d *Debouncer) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	return d.Flush(ctx)
}
