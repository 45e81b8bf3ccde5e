package fabric

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"slices"
)

// Isolated returns the indices of all rectangles which do not share a single cell
// with any other rectangle, in ascending order.
//
// Rectangles are visited by their left edge. A rectangle only has to be tested
// against rectangles which are still active, i.e. whose right edge lies beyond its
// left edge.
func Isolated(rects []Rectangle) ([]int, error) {
	if err := validate(rects); err != nil {
		return nil, err
	}
	order := make([]int, len(rects))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return rects[a].Left - rects[b].Left
	})
	overlapping := make([]bool, len(rects))
	var active []int
	for _, i := range order {
		r := rects[i]
		active = slices.DeleteFunc(active, func(j int) bool {
			return rects[j].Right() <= r.Left
		})
		for _, j := range active {
			if r.Overlaps(rects[j]) {
				overlapping[i] = true
				overlapping[j] = true
			}
		}
		active = append(active, i)
	}
	var isolated []int
	for i, o := range overlapping {
		if !o {
			isolated = append(isolated, i)
		}
	}
	tracer().Debugf("%d of %d rectangles are isolated", len(isolated), len(rects))
	return isolated, nil
}
