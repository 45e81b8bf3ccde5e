package fabric

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/fabric/bst"
)

// OverlapArea returns the number of unit cells covered by two or more of rects.
//
// Rectangles must have a positive width and height and non-negative offsets;
// otherwise OverlapArea returns an error wrapping ErrInvalidRectangle.
func OverlapArea(rects []Rectangle) (int, error) {
	s, err := NewSweeper(rects)
	if err != nil {
		return 0, err
	}
	return s.Run(), nil
}

// UnionArea returns the number of unit cells covered by at least one of rects.
func UnionArea(rects []Rectangle) (int, error) {
	s, err := NewSweeper(rects, WithDepth(1))
	if err != nil {
		return 0, err
	}
	return s.Run(), nil
}

// SweepState is the state of a Sweeper.
type SweepState int8

// A sweeper scans until its event queue is exhausted.
const (
	Scanning SweepState = iota
	Done
)

func (st SweepState) String() string {
	if st == Done {
		return "done"
	}
	return "scanning"
}

// Column is the result of processing all events at a single X.
//
// The column tree's state is valid from X up to the next event's X, so the
// column spans Width unit columns. Length is the covered length within one unit
// column and Area = Width × Length. The last column of a sweep only closes
// rectangles and has Width 0.
type Column struct {
	X      int
	Width  int
	Length int
	Area   int
}

func (c Column) String() string {
	return fmt.Sprintf("x=%d width=%d length=%d area=%d", c.X, c.Width, c.Length, c.Area)
}

// Option configures a Sweeper.
type Option func(*Sweeper)

// WithDepth sets the number of rectangles a cell has to be covered by to be
// counted. The default is 2, i.e. the sweeper measures overlaps. A depth of 1
// measures the union of all rectangles. Values < 1 are ignored.
func WithDepth(depth int) Option {
	return func(s *Sweeper) {
		if depth >= 1 {
			s.depth = depth
		}
	}
}

// Sweeper moves a vertical sweep line from left to right over the edges of a set
// of rectangles, accumulating the covered area column by column.
//
// A sweeper is used for a single computation and is not safe for concurrent use.
type Sweeper struct {
	queue  *EventQueue
	column *bst.Tree[int, int] // Y → net number of edges opening there
	depth  int
	state  SweepState
	total  int
}

// NewSweeper prepares a sweep over rects. All rectangles are validated
// up front; an invalid rectangle results in an error wrapping ErrInvalidRectangle.
func NewSweeper(rects []Rectangle, opts ...Option) (*Sweeper, error) {
	if err := validate(rects); err != nil {
		return nil, err
	}
	s := &Sweeper{
		queue:  NewEventQueue(rects),
		column: &bst.Tree[int, int]{},
		depth:  2,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.queue.IsEmpty() {
		s.state = Done
	}
	tracer().Debugf("sweep: %d rectangles, depth %d", len(rects), s.depth)
	return s, nil
}

// State returns the current state of the sweeper.
func (s *Sweeper) State() SweepState {
	return s.state
}

// Total returns the area accumulated so far.
func (s *Sweeper) Total() int {
	return s.total
}

// Tree returns the column tree as of the last processed column. Clients must not
// modify it.
func (s *Sweeper) Tree() *bst.Tree[int, int] {
	return s.column
}

// Step processes all events at the next X and returns the resulting column.
// If the sweep is done, Step returns false.
func (s *Sweeper) Step() (Column, bool) {
	if s.state == Done {
		return Column{}, false
	}
	x, err := s.queue.PeekMinX()
	assert(err == nil, "sweep: scanning with an empty event queue")
	for _, e := range s.queue.DrainX(x) {
		s.apply(e)
	}
	col := Column{X: x, Length: CoveredLength(s.column.Inorder(), s.depth)}
	if next, err := s.queue.PeekMinX(); err == nil {
		col.Width = next - x
	} else {
		s.state = Done // last column only closes rectangles
	}
	col.Area = col.Width * col.Length
	s.total += col.Area
	tracer().Debugf("sweep column %v, %d boundaries", col, s.column.Len())
	return col, true
}

// apply adds the Y range of an open event to the column tree, or removes it
// for a close event.
func (s *Sweeper) apply(e Event) {
	sign := 1
	if e.Kind == Close {
		sign = -1
	}
	addBoundary(s.column, e.Top, sign)
	addBoundary(s.column, e.Bottom, -sign)
}

// Run steps through all remaining columns and returns the total area.
func (s *Sweeper) Run() int {
	for {
		if _, ok := s.Step(); !ok {
			break
		}
	}
	assert(s.column.IsEmpty(), "sweep: column tree not empty after last column")
	return s.total
}

// Columns steps through all remaining columns and returns them.
func (s *Sweeper) Columns() []Column {
	var cols []Column
	for {
		col, ok := s.Step()
		if !ok {
			break
		}
		cols = append(cols, col)
	}
	return cols
}
