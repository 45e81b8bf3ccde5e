package fabric

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"container/heap"
	"fmt"
)

// EdgeKind tells whether an event opens or closes a rectangle.
type EdgeKind int8

// Rectangles open at their left edge and close one past their right edge.
const (
	Open EdgeKind = iota
	Close
)

func (k EdgeKind) String() string {
	switch k {
	case Open:
		return "open"
	case Close:
		return "close"
	}
	return "<unknown>"
}

// Event is a vertical rectangle edge at X, spanning the rows Top ≤ y < Bottom.
type Event struct {
	X           int
	Kind        EdgeKind
	Top, Bottom int
	seq         int // insertion sequence, for a stable tie-break
}

func (e Event) String() string {
	return fmt.Sprintf("%s@%d[%d,%d)", e.Kind, e.X, e.Top, e.Bottom)
}

// EdgeEvents returns the open and the close event for rectangle r.
// The close event is placed on the column after r's last column, making the
// covered X range the half-open interval [Left, Right).
func EdgeEvents(r Rectangle) (open, close Event) {
	open = Event{X: r.Left, Kind: Open, Top: r.Top, Bottom: r.Bottom()}
	close = Event{X: r.Right(), Kind: Close, Top: r.Top, Bottom: r.Bottom()}
	return
}

// EventQueue is a min-priority queue of events, ordered by X.
//
// Events with equal X are ordered by kind, then by Y range, then by insertion.
// Clients which process all events sharing the minimum X at once should either
// call DrainX or peek at the minimum X and pop while it stays the same.
//
// The zero value of an EventQueue is an empty queue ready to use.
type EventQueue struct {
	events eventHeap
	seq    int
}

// NewEventQueue creates a queue holding the open and close events for all rects.
func NewEventQueue(rects []Rectangle) *EventQueue {
	q := &EventQueue{events: make(eventHeap, 0, 2*len(rects))}
	for _, r := range rects {
		open, close := EdgeEvents(r)
		q.Push(open)
		q.Push(close)
	}
	return q
}

// Push adds an event to the queue.
func (q *EventQueue) Push(e Event) {
	e.seq = q.seq
	q.seq++
	heap.Push(&q.events, e)
}

// PopMin removes and returns the event with minimum X.
// If the queue is empty, PopMin returns ErrEmptyQueue.
func (q *EventQueue) PopMin() (Event, error) {
	if q.IsEmpty() {
		return Event{}, ErrEmptyQueue
	}
	return heap.Pop(&q.events).(Event), nil
}

// PeekMinX returns the minimum X of all events in the queue, without removing
// anything. If the queue is empty, PeekMinX returns ErrEmptyQueue.
func (q *EventQueue) PeekMinX() (int, error) {
	if q.IsEmpty() {
		return 0, ErrEmptyQueue
	}
	return q.events[0].X, nil
}

// DrainX removes and returns all events at x. If the minimum X of the queue
// is not x, DrainX returns nil.
func (q *EventQueue) DrainX(x int) []Event {
	var drained []Event
	for !q.IsEmpty() && q.events[0].X == x {
		drained = append(drained, heap.Pop(&q.events).(Event))
	}
	return drained
}

// IsEmpty reports whether the queue holds no events.
func (q *EventQueue) IsEmpty() bool {
	return q == nil || len(q.events) == 0
}

// Len returns the number of events in the queue.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.events)
}

// --- heap.Interface --------------------------------------------------------

type eventHeap []Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	switch {
	case a.X != b.X:
		return a.X < b.X
	case a.Kind != b.Kind:
		return a.Kind < b.Kind
	case a.Top != b.Top:
		return a.Top < b.Top
	case a.Bottom != b.Bottom:
		return a.Bottom < b.Bottom
	}
	return a.seq < b.seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(Event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
