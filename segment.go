package fabric

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/fabric/bst"
)

// OverlapLength measures, along a single column, the length covered by two or
// more rectangles.
//
// boundaries is the in-order traversal of a column tree: Y coordinates in
// ascending order, each with the net number of rectangle edges opening (positive)
// or closing (negative) there. The scan starts at Y=0 with no open rectangles:
//
//	OverlapLength([(0,+1) (5,+1) (10,-1) (15,-1)]) = 5   // rows 5…9
func OverlapLength(boundaries []bst.Entry[int, int]) int {
	return CoveredLength(boundaries, 2)
}

// CoveredLength measures, along a single column, the length covered by at least
// depth rectangles. See OverlapLength for the format of boundaries.
// CoveredLength(boundaries, 1) is the length covered by any rectangle.
func CoveredLength(boundaries []bst.Entry[int, int], depth int) int {
	lastY := 0 // scan the column from Y=0 downwards
	open := 0  // number of rectangles 'live' at the current Y
	length := 0
	for _, b := range boundaries {
		if open >= depth {
			length += b.Key - lastY
		}
		lastY = b.Key
		open += b.Value
	}
	return length
}

// addBoundary adds delta to the boundary count at y. A boundary whose count drops
// to zero carries no information and is removed from the column tree.
func addBoundary(column *bst.Tree[int, int], y int, delta int) {
	if column.Insert(y, delta) == 0 {
		column.Remove(y)
	}
}
