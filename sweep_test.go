package fabric

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOverlapArea(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fabric")
	defer teardown()
	//
	cases := []struct {
		name  string
		rects []Rectangle
		want  int
	}{
		{"no rectangles", nil, 0},
		{"single rectangle", []Rectangle{Rect(2, 3, 4, 5)}, 0},
		{"identical unit squares", []Rectangle{Rect(0, 0, 1, 1), Rect(0, 0, 1, 1)}, 1},
		{"partial overlap", []Rectangle{Rect(0, 0, 3, 3), Rect(1, 1, 3, 3)}, 4},
		{"disjoint", []Rectangle{Rect(0, 0, 2, 2), Rect(5, 5, 2, 2)}, 0},
		{"touching edges", []Rectangle{Rect(0, 0, 2, 2), Rect(2, 0, 2, 2), Rect(0, 2, 2, 2)}, 0},
		{"puzzle example", []Rectangle{Rect(1, 3, 4, 4), Rect(3, 1, 4, 4), Rect(5, 5, 2, 2)}, 4},
		{"triple stack counts once", []Rectangle{Rect(0, 0, 2, 2), Rect(0, 0, 2, 2), Rect(0, 0, 2, 2)}, 4},
		{"nested", []Rectangle{Rect(0, 0, 10, 10), Rect(2, 2, 3, 3)}, 9},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			area, err := OverlapArea(c.rects)
			if err != nil {
				t.Fatal(err)
			}
			if area != c.want {
				t.Errorf("OverlapArea = %d, want %d", area, c.want)
			}
		})
	}
}

func TestOverlapAreaRejectsInvalidRectangles(t *testing.T) {
	for _, r := range []Rectangle{
		Rect(0, 0, 0, 3),
		Rect(0, 0, 3, -1),
		Rect(-1, 0, 1, 1),
		Rect(math.MaxInt-2, 0, 5, 5), // right edge overflows
		Rect(0, math.MaxInt-2, 5, 5), // bottom edge overflows
	} {
		_, err := OverlapArea([]Rectangle{Rect(0, 0, 1, 1), r})
		if !errors.Is(err, ErrInvalidRectangle) {
			t.Errorf("expected ErrInvalidRectangle for %v, got %v", r, err)
		}
	}
}

func TestOverlapAreaAtMaxCoordinates(t *testing.T) {
	r := Rect(math.MaxInt-5, math.MaxInt-5, 5, 5)
	area, err := OverlapArea([]Rectangle{r, r})
	if err != nil {
		t.Fatal(err)
	}
	if area != 25 {
		t.Errorf("OverlapArea = %d, want 25", area)
	}
}

func TestSweeperColumns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fabric")
	defer teardown()
	//
	s, err := NewSweeper([]Rectangle{Rect(0, 0, 3, 3), Rect(1, 1, 3, 3)})
	if err != nil {
		t.Fatal(err)
	}
	if s.State() != Scanning {
		t.Fatalf("expected new sweeper to be scanning")
	}
	want := []Column{
		{X: 0, Width: 1, Length: 0, Area: 0},
		{X: 1, Width: 2, Length: 2, Area: 4},
		{X: 3, Width: 1, Length: 0, Area: 0},
		{X: 4, Width: 0, Length: 0, Area: 0},
	}
	if d := cmp.Diff(want, s.Columns()); d != "" {
		t.Errorf("unexpected columns (-want +got):\n%s", d)
	}
	if s.State() != Done || s.Total() != 4 {
		t.Errorf("expected done with total 4, state=%v total=%d", s.State(), s.Total())
	}
	if _, ok := s.Step(); ok {
		t.Errorf("expected Step to report false after the sweep is done")
	}
}

func TestSweeperColumnTree(t *testing.T) {
	s, err := NewSweeper([]Rectangle{Rect(0, 0, 3, 3), Rect(1, 1, 3, 3)})
	if err != nil {
		t.Fatal(err)
	}
	s.Step()
	s.Step()
	keys := []int{}
	for y := range s.Tree().All() {
		keys = append(keys, y)
	}
	if d := cmp.Diff([]int{0, 1, 3, 4}, keys); d != "" {
		t.Errorf("unexpected column tree at x=1 (-want +got):\n%s", d)
	}
	s.Step() // x=3 closes the first rectangle, 0 and 3 cancel out
	if s.Tree().Contains(0) || s.Tree().Contains(3) || s.Tree().Len() != 2 {
		t.Errorf("expected cancelled boundaries to be removed, have %v", s.Tree().Inorder())
	}
}

func TestUnionArea(t *testing.T) {
	area, err := UnionArea([]Rectangle{Rect(0, 0, 3, 3), Rect(1, 1, 3, 3)})
	if err != nil {
		t.Fatal(err)
	}
	if area != 14 {
		t.Errorf("UnionArea = %d, want 14", area)
	}
}

func randomRects(r *rand.Rand, n, size int) []Rectangle {
	rects := make([]Rectangle, n)
	for i := range rects {
		rects[i] = Rect(r.IntN(size), r.IntN(size), 1+r.IntN(size/2), 1+r.IntN(size/2))
	}
	return rects
}

func TestSweepMatchesNaive(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := range 200 {
		rects := randomRects(r, 1+r.IntN(12), 20)
		want, err := NaiveOverlapArea(rects)
		if err != nil {
			t.Fatal(err)
		}
		got, err := OverlapArea(rects)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("run %d: OverlapArea = %d, naive = %d for %v", i, got, want, rects)
		}
		wantU, _ := NaiveUnionArea(rects)
		gotU, _ := UnionArea(rects)
		if gotU != wantU {
			t.Fatalf("run %d: UnionArea = %d, naive = %d for %v", i, gotU, wantU, rects)
		}
	}
}

func BenchmarkOverlapArea(b *testing.B) {
	r := rand.New(rand.NewPCG(3, 4))
	rects := randomRects(r, 300, 300)
	b.ResetTimer()
	for range b.N {
		if _, err := OverlapArea(rects); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNaiveOverlapArea(b *testing.B) {
	r := rand.New(rand.NewPCG(3, 4))
	rects := randomRects(r, 300, 300)
	b.ResetTimer()
	for range b.N {
		if _, err := NaiveOverlapArea(rects); err != nil {
			b.Fatal(err)
		}
	}
}
