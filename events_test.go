package fabric

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestEdgeEvents(t *testing.T) {
	open, close := EdgeEvents(Rect(3, 2, 5, 4))
	want := []Event{{X: 3, Kind: Open, Top: 2, Bottom: 6}, {X: 8, Kind: Close, Top: 2, Bottom: 6}}
	if d := cmp.Diff(want, []Event{open, close}, cmpopts.IgnoreUnexported(Event{})); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestEventQueueOrder(t *testing.T) {
	q := NewEventQueue([]Rectangle{Rect(5, 0, 2, 2), Rect(1, 1, 4, 1), Rect(0, 3, 1, 1)})
	if q.Len() != 6 {
		t.Fatalf("expected 6 events, have %d", q.Len())
	}
	var xs []int
	for !q.IsEmpty() {
		e, err := q.PopMin()
		if err != nil {
			t.Fatal(err)
		}
		xs = append(xs, e.X)
	}
	if d := cmp.Diff([]int{0, 1, 1, 5, 5, 7}, xs); d != "" {
		t.Errorf("events not ordered by X (-want +got):\n%s", d)
	}
}

func TestEventQueueDrainTies(t *testing.T) {
	q := NewEventQueue([]Rectangle{Rect(2, 0, 1, 1), Rect(2, 5, 3, 1), Rect(0, 0, 2, 9)})
	x, err := q.PeekMinX()
	if err != nil || x != 0 {
		t.Fatalf("PeekMinX() = %d, %v", x, err)
	}
	if evs := q.DrainX(0); len(evs) != 1 {
		t.Fatalf("expected 1 event at x=0, have %v", evs)
	}
	if evs := q.DrainX(7); evs != nil {
		t.Errorf("DrainX for non-minimal X should not pop anything, popped %v", evs)
	}
	evs := q.DrainX(2)
	if len(evs) != 3 {
		t.Fatalf("expected 3 events at x=2, have %v", evs)
	}
	if evs[0].Kind != Open || evs[1].Kind != Open || evs[2].Kind != Close {
		t.Errorf("expected open events before close events at equal X: %v", evs)
	}
	if x, _ := q.PeekMinX(); x != 3 {
		t.Errorf("expected next X to be 3, is %d", x)
	}
}

func TestEmptyEventQueue(t *testing.T) {
	var q EventQueue
	if !q.IsEmpty() || q.Len() != 0 {
		t.Fatalf("zero queue should be empty")
	}
	if _, err := q.PeekMinX(); !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("expected ErrEmptyQueue from PeekMinX, got %v", err)
	}
	if _, err := q.PopMin(); !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("expected ErrEmptyQueue from PopMin, got %v", err)
	}
	q.Push(Event{X: 4})
	if e, err := q.PopMin(); err != nil || e.X != 4 {
		t.Errorf("PopMin() = %v, %v", e, err)
	}
}
