package loop

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gameloop/internal/core"
	"github.com/vovakirdan/gameloop/internal/surfacetest"
)

// fakeGame records the calls the loop makes.
type fakeGame struct {
	calls     []string
	elapsed   []time.Duration
	updateErr error
	renderErr error
}

func (g *fakeGame) Update(elapsed time.Duration) error {
	if g.updateErr != nil {
		return g.updateErr
	}
	g.calls = append(g.calls, "update")
	g.elapsed = append(g.elapsed, elapsed)
	return nil
}

func (g *fakeGame) Render(dst core.Surface) error {
	if g.renderErr != nil {
		return g.renderErr
	}
	g.calls = append(g.calls, "render")
	dst.Clear(core.ColorBackground)
	return nil
}

// keepAllScheduler keeps every request so tests can fire stale ones.
type keepAllScheduler struct {
	requests []FrameFunc
	canceled int
}

func (s *keepAllScheduler) RequestFrame(fn FrameFunc) CancelFunc {
	s.requests = append(s.requests, fn)
	return func() { s.canceled++ }
}

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestLoop(g Game) (*Loop, *FrameQueue, *surfacetest.Recorder) {
	q := NewFrameQueue()
	rec := surfacetest.NewRecorder(600, 400)
	return New(g, rec, q), q, rec
}

func TestNewLoopIsStopped(t *testing.T) {
	l, q, _ := newTestLoop(&fakeGame{})

	assert.Equal(t, Stopped, l.State())
	assert.False(t, q.Pending(), "nothing scheduled before Start")
}

func TestStartSchedulesFirstFrame(t *testing.T) {
	g := &fakeGame{}
	l, q, _ := newTestLoop(g)

	l.Start()

	assert.Equal(t, Running, l.State())
	assert.True(t, q.Pending())
	assert.Empty(t, g.calls, "frames run only when the host fires them")
}

func TestFrameUpdatesThenRendersAndReschedules(t *testing.T) {
	g := &fakeGame{}
	l, q, rec := newTestLoop(g)
	l.Start()

	fired, err := q.Fire(t0)

	require.True(t, fired)
	require.NoError(t, err)
	assert.Equal(t, []string{"update", "render"}, g.calls)
	assert.Equal(t, []surfacetest.OpKind{surfacetest.OpClear}, rec.Kinds())
	assert.True(t, q.Pending(), "next frame requested")
	assert.Equal(t, uint64(1), l.Frames())
}

func TestElapsedTime(t *testing.T) {
	g := &fakeGame{}
	l, q, _ := newTestLoop(g)
	l.Start()

	for _, ts := range []time.Time{
		t0.Add(1000 * time.Millisecond),
		t0.Add(1016 * time.Millisecond),
		t0.Add(1050 * time.Millisecond),
	} {
		_, err := q.Fire(ts)
		require.NoError(t, err)
	}

	assert.Equal(t, []time.Duration{0, 16 * time.Millisecond, 34 * time.Millisecond}, g.elapsed)
}

func TestElapsedNeverNegative(t *testing.T) {
	g := &fakeGame{}
	l, q, _ := newTestLoop(g)
	l.Start()

	require.NoError(t, RunFrames(q, 1, t0.Add(time.Second), 0))
	_, err := q.Fire(t0)
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{0, 0}, g.elapsed)
}

func TestStopCancelsPendingFrame(t *testing.T) {
	g := &fakeGame{}
	l, q, _ := newTestLoop(g)
	l.Start()
	_, _ = q.Fire(t0)

	l.Stop()

	assert.Equal(t, Stopped, l.State())
	assert.False(t, q.Pending())
	fired, err := q.Fire(t0.Add(time.Second))
	assert.False(t, fired)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), l.Frames())
}

func TestRestartResetsElapsed(t *testing.T) {
	g := &fakeGame{}
	l, q, _ := newTestLoop(g)
	l.Start()
	_, _ = q.Fire(t0)
	l.Stop()

	l.Start()
	_, err := q.Fire(t0.Add(10 * time.Second))
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{0, 0}, g.elapsed, "first frame after Start has zero elapsed")
}

func TestStartAndStopAreIdempotent(t *testing.T) {
	g := &fakeGame{}
	sched := &keepAllScheduler{}
	l := New(g, surfacetest.NewRecorder(600, 400), sched)

	l.Start()
	l.Start()
	assert.Len(t, sched.requests, 1)

	l.Stop()
	l.Stop()
	assert.Equal(t, 1, sched.canceled)
}

func TestStaleCallbackIsIgnored(t *testing.T) {
	g := &fakeGame{}
	sched := &keepAllScheduler{}
	l := New(g, surfacetest.NewRecorder(600, 400), sched)

	l.Start()
	l.Stop()
	l.Start()
	require.Len(t, sched.requests, 2)

	// The callback from the first run must not drive the second one.
	require.NoError(t, sched.requests[0](t0))
	assert.Empty(t, g.calls)

	require.NoError(t, sched.requests[1](t0))
	assert.Equal(t, []string{"update", "render"}, g.calls)
}

func TestUpdateErrorHaltsLoop(t *testing.T) {
	g := &fakeGame{updateErr: core.ErrUnimplemented}
	var buf bytes.Buffer
	q := NewFrameQueue()
	rec := surfacetest.NewRecorder(600, 400)
	l := New(g, rec, q, WithLogger(log.New(&buf)))
	l.Start()

	_, err := q.Fire(t0)

	require.ErrorIs(t, err, core.ErrUnimplemented)
	assert.ErrorIs(t, l.Err(), core.ErrUnimplemented)
	assert.Equal(t, Stopped, l.State())
	assert.False(t, q.Pending(), "a failed frame is not rescheduled")
	assert.Empty(t, rec.Ops(), "render is not reached")
	assert.Contains(t, buf.String(), "loop halted")
}

func TestRenderErrorHaltsLoop(t *testing.T) {
	boom := errors.New("boom")
	g := &fakeGame{renderErr: boom}
	l, q, _ := newTestLoop(g)
	l.Start()

	_, err := q.Fire(t0)

	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"update"}, g.calls)
	assert.Equal(t, Stopped, l.State())
	assert.Equal(t, uint64(0), l.Frames())
}

func TestRestartClearsError(t *testing.T) {
	g := &fakeGame{renderErr: errors.New("boom")}
	l, q, _ := newTestLoop(g)
	l.Start()
	_, _ = q.Fire(t0)
	require.Error(t, l.Err())

	g.renderErr = nil
	l.Start()

	assert.NoError(t, l.Err())
	assert.Equal(t, Running, l.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "stopped", Stopped.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "unknown", State(9).String())
}

func TestRunFrames(t *testing.T) {
	g := &fakeGame{}
	l, q, _ := newTestLoop(g)
	l.Start()

	require.NoError(t, RunFrames(q, 5, t0, 20*time.Millisecond))

	assert.Equal(t, uint64(5), l.Frames())
	assert.Equal(t, []time.Duration{0, 20 * time.Millisecond, 20 * time.Millisecond, 20 * time.Millisecond, 20 * time.Millisecond}, g.elapsed)
}

func TestRunFramesStopsOnError(t *testing.T) {
	g := &fakeGame{updateErr: core.ErrUnimplemented}
	l, q, _ := newTestLoop(g)
	l.Start()

	err := RunFrames(q, 5, t0, time.Millisecond)

	assert.ErrorIs(t, err, core.ErrUnimplemented)
	assert.Equal(t, uint64(0), l.Frames())
}

func TestRunTickerStopsOnCancel(t *testing.T) {
	g := &fakeGame{}
	l, q, _ := newTestLoop(g)
	l.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, RunTicker(ctx, q, time.Millisecond, 0))
	assert.Positive(t, l.Frames())
	assert.Equal(t, Running, l.State())
}

func TestRunTickerReturnsWhenLoopStops(t *testing.T) {
	g := &fakeGame{updateErr: core.ErrUnimplemented}
	l, q, _ := newTestLoop(g)
	l.Start()

	err := RunTicker(context.Background(), q, time.Millisecond, 0)

	assert.ErrorIs(t, err, core.ErrUnimplemented)
	assert.Equal(t, Stopped, l.State())
}

func TestRunTickerFrameLimit(t *testing.T) {
	g := &fakeGame{}
	l, q, _ := newTestLoop(g)
	l.Start()

	require.NoError(t, RunTicker(context.Background(), q, time.Millisecond, 3))

	assert.Equal(t, uint64(3), l.Frames())
	assert.Equal(t, Running, l.State())
	assert.True(t, q.Pending())
}
