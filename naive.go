package fabric

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

type cell struct {
	x, y int
}

// NaiveOverlapArea returns the same result as OverlapArea, but counts claims
// for every single cell in a map. It needs O(W·H) time and space for a grid of
// W×H cells and is meant for cross-checking the sweep on small inputs.
func NaiveOverlapArea(rects []Rectangle) (int, error) {
	counts, err := cellCounts(rects)
	if err != nil {
		return 0, err
	}
	area := 0
	for _, n := range counts {
		if n > 1 {
			area++
		}
	}
	return area, nil
}

// NaiveUnionArea is the per-cell counterpart of UnionArea.
func NaiveUnionArea(rects []Rectangle) (int, error) {
	counts, err := cellCounts(rects)
	if err != nil {
		return 0, err
	}
	return len(counts), nil
}

func cellCounts(rects []Rectangle) (map[cell]int, error) {
	if err := validate(rects); err != nil {
		return nil, err
	}
	counts := make(map[cell]int)
	for _, r := range rects {
		for x := r.Left; x < r.Right(); x++ {
			for y := r.Top; y < r.Bottom(); y++ {
				counts[cell{x, y}]++
			}
		}
	}
	return counts, nil
}
