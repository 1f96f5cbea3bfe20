package engine

import (
	"time"
)

// FrameID identifies a pending frame request. Zero is never issued.
type FrameID uint64

// FrameFunc runs once on the next frame
type FrameFunc func(now time.Time)

// Scheduler hands out one-shot frame callbacks, the way a display refresh
// does: a callback requested while frame N runs fires on frame N+1.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn FrameFunc
}

// FrameQueue is a Scheduler pumped by the host's render loop. It is not
// safe for concurrent use; the host calls everything from its loop goroutine.
type FrameQueue struct {
	nextID    FrameID
	pending   []frameRequest
	cancelled map[FrameID]struct{} // ids cancelled while their batch runs
	frames    uint64
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.nextID++
	q.pending = append(q.pending, frameRequest{id: q.nextID, fn: fn})
	return q.nextID
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	if q.cancelled != nil {
		q.cancelled[id] = struct{}{}
	}
}

// Pending returns the number of callbacks waiting for the next frame
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Frames returns how many pumps have run
func (q *FrameQueue) Frames() uint64 {
	return q.frames
}

// Pump runs every callback requested before this call, in request order.
// Callbacks cancelled by an earlier callback in the same pump are skipped.
func (q *FrameQueue) Pump(now time.Time) int {
	q.frames++
	batch := q.pending
	q.pending = nil
	q.cancelled = make(map[FrameID]struct{})
	defer func() { q.cancelled = nil }()

	ran := 0
	for _, r := range batch {
		if _, gone := q.cancelled[r.id]; gone {
			continue
		}
		r.fn(now)
		ran++
	}
	return ran
}
