package loop

import (
	"context"
	"time"
)

// FrameQueue is a Scheduler holding at most one pending frame request.
// Hosts call Fire from their own refresh callback (a Bubble Tea tick,
// ebiten's Update, a ticker) so frames run on the host's goroutine.
type FrameQueue struct {
	pending FrameFunc
	id      uint64
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame implements Scheduler. A new request replaces any pending one.
func (q *FrameQueue) RequestFrame(fn FrameFunc) CancelFunc {
	q.id++
	id := q.id
	q.pending = fn
	return func() {
		if q.id == id {
			q.pending = nil
		}
	}
}

// Pending reports whether a frame is waiting to be fired.
func (q *FrameQueue) Pending() bool {
	return q.pending != nil
}

// Fire runs the pending frame with timestamp ts.
// It reports whether a frame was pending and returns the frame's error.
func (q *FrameQueue) Fire(ts time.Time) (bool, error) {
	fn := q.pending
	if fn == nil {
		return false, nil
	}
	q.pending = nil
	return true, fn(ts)
}

// RunFrames fires up to n frames with synthetic timestamps start, start+step, ...
// It stops early when the queue empties and returns the first frame error.
func RunFrames(q *FrameQueue, n int, start time.Time, step time.Duration) error {
	ts := start
	for range n {
		fired, err := q.Fire(ts)
		if err != nil {
			return err
		}
		if !fired {
			return nil
		}
		ts = ts.Add(step)
	}
	return nil
}

// RunTicker fires pending frames every interval on the calling goroutine until
// ctx is done, n frames have fired (n <= 0 means no limit), the queue empties
// or a frame fails. Cancellation is not an error.
func RunTicker(ctx context.Context, q *FrameQueue, interval time.Duration, n int) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	fired := 0
	for q.Pending() && (n <= 0 || fired < n) {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if _, err := q.Fire(now); err != nil {
				return err
			}
			fired++
		}
	}
	return nil
}
