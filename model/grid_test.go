package model

import (
	"testing"

	"github.com/pkg/errors"
)

func mustGrid(t *testing.T, w, h int, alive []Coord) *Grid {
	t.Helper()
	g, err := New(w, h, alive)
	if err != nil {
		t.Fatalf("New(%d, %d) returned error: %v", w, h, err)
	}
	return g
}

func TestNewEmptyGrid(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {5, 5}, {25, 25}, {7, 3}} {
		g := mustGrid(t, size[0], size[1], nil)
		if g.GetGeneration() != 0 {
			t.Fatalf("%v: generation = %d, expected 0", size, g.GetGeneration())
		}
		cells := g.Cells()
		if len(cells) != size[1] {
			t.Fatalf("%v: %d rows, expected %d", size, len(cells), size[1])
		}
		for y, row := range cells {
			if len(row) != size[0] {
				t.Fatalf("%v: row %d has %d cells, expected %d", size, y, len(row), size[0])
			}
			for x, c := range row {
				if c.Alive() {
					t.Fatalf("%v: cell (%d,%d) alive in empty grid", size, x, y)
				}
				if c.X != x || c.Y != y {
					t.Fatalf("cell at [%d][%d] reports position (%d,%d)", y, x, c.X, c.Y)
				}
			}
		}
	}
}

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		g, err := New(size[0], size[1], nil)
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("New(%d, %d) error = %v, expected ErrInvalidDimensions", size[0], size[1], err)
		}
		if g != nil {
			t.Fatalf("New(%d, %d) returned a grid alongside an error", size[0], size[1])
		}
	}
}

func TestNewDropsOutOfRangeCoordinates(t *testing.T) {
	g := mustGrid(t, 4, 3, []Coord{{4, 0}, {0, 3}, {-1, 1}, {1, -1}, {100, 100}, {2, 1}})
	if got := g.CountLivingCells(); got != 1 {
		t.Fatalf("living cells = %d, expected 1", got)
	}
	if !g.Get(2, 1) {
		t.Fatal("expected (2,1) to be alive")
	}
}

func TestNeighborCounts(t *testing.T) {
	g := mustGrid(t, 5, 5, nil)
	tests := []struct {
		x, y int
		want int
	}{
		{2, 2, 8},
		{0, 0, 3},
		{4, 4, 3},
		{0, 2, 5},
		{2, 4, 5},
	}
	for _, tt := range tests {
		c, _ := g.Cell(tt.x, tt.y)
		got := g.NeighborsOf(c)
		if len(got) != tt.want {
			t.Fatalf("(%d,%d) has %d neighbors, expected %d", tt.x, tt.y, len(got), tt.want)
		}
		seen := map[Coord]bool{}
		for _, n := range got {
			if n.X == tt.x && n.Y == tt.y {
				t.Fatalf("(%d,%d) lists itself as a neighbor", tt.x, tt.y)
			}
			if seen[n.Coord()] {
				t.Fatalf("(%d,%d) lists %v twice", tt.x, tt.y, n.Coord())
			}
			seen[n.Coord()] = true
		}
	}
}

func TestNeighborOrder(t *testing.T) {
	want := []Coord{{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}
	got := NeighborCoords(5, 5, 2, 2)
	if len(got) != len(want) {
		t.Fatalf("got %d neighbors, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("neighbor %d = %v, expected %v", i, got[i], want[i])
		}
	}

	corner := NeighborCoords(5, 5, 0, 0)
	wantCorner := []Coord{{0, 1}, {1, 0}, {1, 1}}
	for i := range wantCorner {
		if corner[i] != wantCorner[i] {
			t.Fatalf("corner neighbor %d = %v, expected %v", i, corner[i], wantCorner[i])
		}
	}
}

func TestNeighborsOfOutsideCell(t *testing.T) {
	g := mustGrid(t, 3, 3, nil)
	if n := g.NeighborsOf(Cell{X: 5, Y: 1}); n != nil {
		t.Fatalf("expected no neighbors for an outside cell, got %v", n)
	}
}

func TestNeighborsReflectOwningGrid(t *testing.T) {
	g := mustGrid(t, 5, 5, []Coord{{1, 2}, {2, 2}, {3, 2}})
	next := Step(g)

	c, _ := next.Cell(2, 1)
	alive := 0
	for _, n := range next.NeighborsOf(c) {
		if n.Alive() {
			alive++
		}
	}
	// (2,1) sees the vertical blinker in next: (2,2) only
	if alive != 1 {
		t.Fatalf("(2,1) sees %d alive neighbors in the stepped grid, expected 1", alive)
	}
}

func TestConstructionIsIndependent(t *testing.T) {
	coords := []Coord{{1, 1}, {2, 2}}
	a := mustGrid(t, 5, 5, coords)
	b := mustGrid(t, 5, 5, coords)
	if a == b {
		t.Fatal("expected distinct grid instances")
	}
	if !Equal(a, b) {
		t.Fatal("expected grids built from the same coordinates to be equal")
	}

	coords[0] = Coord{4, 4}
	cells := a.Cells()
	cells[2][2].State = Dead
	if !a.Get(1, 1) || !a.Get(2, 2) || a.Get(4, 4) {
		t.Fatal("grid changed after its inputs or copies were modified")
	}
}

func TestBoundingBox(t *testing.T) {
	g := mustGrid(t, 10, 10, []Coord{{2, 3}, {5, 4}})
	if got := g.GetBoundingBoxSize(); got != 4*2 {
		t.Fatalf("bounding box = %d, expected 8", got)
	}
	if got := mustGrid(t, 3, 3, nil).GetBoundingBoxSize(); got != 0 {
		t.Fatalf("empty bounding box = %d, expected 0", got)
	}
}

func TestGridHash(t *testing.T) {
	a := mustGrid(t, 5, 5, []Coord{{1, 1}})
	b := mustGrid(t, 5, 5, []Coord{{1, 1}})
	c := mustGrid(t, 5, 5, []Coord{{1, 2}})
	if a.GetGridHash() != b.GetGridHash() {
		t.Fatal("expected identical layouts to hash the same")
	}
	if a.GetGridHash() == c.GetGridHash() {
		t.Fatal("expected different layouts to hash differently")
	}
	if mustGrid(t, 1, 4, nil).GetGridHash() == mustGrid(t, 4, 1, nil).GetGridHash() {
		t.Fatal("expected different dimensions to hash differently")
	}
}
