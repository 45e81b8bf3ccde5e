package fabric

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"math"
)

// Rectangle is an axis-aligned rectangle of unit cells.
//
// Left and Top are the offsets of the rectangle's top left cell from the top left
// corner of the grid. Y grows downwards. A rectangle
//
//	Rectangle{Left: 3, Top: 2, Width: 5, Height: 4}
//
// covers the cells (x, y) with 3 ≤ x < 8 and 2 ≤ y < 6.
type Rectangle struct {
	Left, Top     int
	Width, Height int
}

// Rect is a shortcut for creating a Rectangle.
func Rect(left, top, width, height int) Rectangle {
	return Rectangle{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the X coordinate one past the rightmost column of r.
func (r Rectangle) Right() int {
	return r.Left + r.Width
}

// Bottom returns the Y coordinate one past the bottom row of r.
func (r Rectangle) Bottom() int {
	return r.Top + r.Height
}

// Area returns the number of cells covered by r.
func (r Rectangle) Area() int {
	return r.Width * r.Height
}

// Valid reports whether r has a positive size and non-negative offsets, and
// whether its right and bottom edges are representable as int.
func (r Rectangle) Valid() bool {
	return r.Width > 0 && r.Height > 0 && r.Left >= 0 && r.Top >= 0 &&
		r.Width <= math.MaxInt-r.Left && r.Height <= math.MaxInt-r.Top
}

// Overlaps reports whether r and s share at least one cell.
func (r Rectangle) Overlaps(s Rectangle) bool {
	return r.Left < s.Right() && s.Left < r.Right() &&
		r.Top < s.Bottom() && s.Top < r.Bottom()
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%d,%d: %dx%d", r.Left, r.Top, r.Width, r.Height)
}

// validate checks all rectangles and returns an error wrapping
// ErrInvalidRectangle for the first invalid one.
func validate(rects []Rectangle) error {
	for i, r := range rects {
		if !r.Valid() {
			err := fmt.Errorf("%w: #%d (%s)", ErrInvalidRectangle, i, r)
			tracer().Errorf("%v", err)
			return err
		}
	}
	return nil
}
