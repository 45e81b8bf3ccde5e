package report

import (
	"io"

	"github.com/npillmayer/fabric"
	"github.com/npillmayer/fabric/claims"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Summary holds the figures for a set of claims.
type Summary struct {
	Source      string          // where the claims came from, e.g. a file name
	Claims      int             // number of claims
	OverlapArea int             // cells claimed at least twice
	UnionArea   int             // cells claimed at all
	Isolated    []int           // IDs of claims overlapping no other claim
	Columns     []fabric.Column // sweep columns of the overlap computation, if requested
}

// Writer outputs a summary.
type Writer interface {
	Write(w io.Writer, s *Summary) error
}

// Summarize computes a summary for a list of claims. If withColumns is set,
// the summary will include every column of the overlap sweep.
func Summarize(source string, cs []claims.Claim, withColumns bool) (*Summary, error) {
	rects := claims.Rectangles(cs)
	sweeper, err := fabric.NewSweeper(rects)
	if err != nil {
		return nil, err
	}
	s := &Summary{Source: source, Claims: len(cs)}
	if withColumns {
		s.Columns = sweeper.Columns()
		s.OverlapArea = sweeper.Total()
	} else {
		s.OverlapArea = sweeper.Run()
	}
	if s.UnionArea, err = fabric.UnionArea(rects); err != nil {
		return nil, err
	}
	isolated, err := fabric.Isolated(rects)
	if err != nil {
		return nil, err
	}
	for _, i := range isolated {
		s.Isolated = append(s.Isolated, cs[i].ID)
	}
	tracer().Infof("%s: %d claims, overlap %d", source, s.Claims, s.OverlapArea)
	return s, nil
}
