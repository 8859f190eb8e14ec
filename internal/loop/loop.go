// Package loop drives a Game frame by frame on top of a host scheduling primitive.
//
// Each frame computes the time elapsed since the previous frame (zero on the
// first frame after Start), calls Update then Render, and asks the host for
// the next frame. Everything happens on the host's single frame goroutine.
package loop

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gameloop/internal/core"
)

// Game is what the loop drives.
type Game interface {
	Update(elapsed time.Duration) error
	Render(dst core.Surface) error
}

// FrameFunc is invoked by the host before a display refresh with a
// monotonically increasing timestamp.
type FrameFunc func(ts time.Time) error

// CancelFunc withdraws a pending frame request.
type CancelFunc func()

// Scheduler is the host primitive: "call fn before the next refresh".
type Scheduler interface {
	RequestFrame(fn FrameFunc) CancelFunc
}

// State is the loop's run state.
type State int

const (
	Stopped State = iota
	Running
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Loop is the frame loop state machine.
type Loop struct {
	game    Game
	surface core.Surface
	sched   Scheduler
	logger  *log.Logger

	state   State
	cancel  CancelFunc
	gen     uint64 // bumped on every Start; stale callbacks are ignored
	last    time.Time
	hasLast bool
	frames  uint64
	err     error
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger. By default the loop logs nothing.
func WithLogger(l *log.Logger) Option {
	return func(lp *Loop) {
		lp.logger = l
	}
}

// New creates a stopped loop rendering game onto surface.
func New(game Game, surface core.Surface, sched Scheduler, opts ...Option) *Loop {
	l := &Loop{
		game:    game,
		surface: surface,
		sched:   sched,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start transitions stopped -> running and schedules the first frame.
// Starting a running loop is a no-op.
func (l *Loop) Start() {
	if l.state == Running {
		return
	}
	l.state = Running
	l.gen++
	l.hasLast = false
	l.err = nil
	l.logger.Info("loop started")
	l.schedule()
}

// Stop transitions running -> stopped and cancels the pending frame.
// Stopping a stopped loop is a no-op.
func (l *Loop) Stop() {
	if l.state == Stopped {
		return
	}
	l.halt()
	l.logger.Info("loop stopped", "frames", l.frames)
}

// State returns the current run state.
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of completed frames.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Err returns the error that stopped the loop, if any.
func (l *Loop) Err() error {
	return l.err
}

func (l *Loop) schedule() {
	gen := l.gen
	l.cancel = l.sched.RequestFrame(func(ts time.Time) error {
		return l.frame(gen, ts)
	})
}

func (l *Loop) halt() {
	l.state = Stopped
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// frame runs one update/render pair and reschedules.
// A failing hook stops the loop; the frame is not rescheduled.
func (l *Loop) frame(gen uint64, ts time.Time) error {
	if l.state != Running || gen != l.gen {
		return nil
	}
	l.cancel = nil

	var elapsed time.Duration
	if l.hasLast {
		elapsed = max(ts.Sub(l.last), 0)
	}

	if err := l.game.Update(elapsed); err != nil {
		return l.fail(fmt.Errorf("loop: update: %w", err))
	}
	if err := l.game.Render(l.surface); err != nil {
		return l.fail(fmt.Errorf("loop: render: %w", err))
	}

	l.last = ts
	l.hasLast = true
	l.frames++
	l.logger.Debug("frame", "n", l.frames, "elapsed", elapsed)

	l.schedule()
	return nil
}

func (l *Loop) fail(err error) error {
	l.err = err
	l.halt()
	l.logger.Error("loop halted", "frames", l.frames, "err", err)
	return err
}
