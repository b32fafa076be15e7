package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidDimensions is returned when a grid is requested with a non-positive width or height
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// neighborOffsets lists the 8 compass directions in lookup order:
// northwest, west, southwest, north, south, northeast, east, southeast
var neighborOffsets = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is an immutable snapshot of the board for a single generation.
//
// Cells are indexed [y][x]. Each grid owns its own adjacency index of flat
// positions (y*width+x), so neighbor lookups never reach into another snapshot.
type Grid struct {
	width      int
	height     int
	generation int
	cells      [][]Cell
	adjacency  [][]int

	activeBounds struct {
		minX, maxX, minY, maxY int
		valid                  bool
	}
}

// New builds a generation 0 grid with the given cells alive.
// Coordinates outside [0,width)x[0,height) are dropped.
func New(width, height int, alive []Coord) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[New] got %dx%d", width, height)
	}

	g := newGrid(width, height, 0)
	for _, c := range alive {
		if g.contains(c.X, c.Y) {
			g.cells[c.Y][c.X].State = Alive
		}
	}
	g.calculateActiveBounds()
	return g, nil
}

// newGrid allocates an all-dead grid with a fresh adjacency index
func newGrid(width, height, generation int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Cell{State: Dead, X: x, Y: y}
		}
	}
	return &Grid{
		width:      width,
		height:     height,
		generation: generation,
		cells:      cells,
		adjacency:  buildAdjacency(width, height),
	}
}

func buildAdjacency(width, height int) [][]int {
	adj := make([][]int, width*height)
	for y := range height {
		for x := range width {
			coords := NeighborCoords(width, height, x, y)
			idx := make([]int, len(coords))
			for i, c := range coords {
				idx[i] = c.Y*width + c.X
			}
			adj[y*width+x] = idx
		}
	}
	return adj
}

// NeighborCoords returns the in-bounds neighbors of (x, y) on a width x height
// board, in the fixed order NW, W, SW, N, S, NE, E, SE. There is no wraparound.
func NeighborCoords(width, height, x, y int) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nx, ny := x+d.X, y+d.Y
		if nx < 0 || nx >= width || ny < 0 || ny >= height {
			continue
		}
		out = append(out, Coord{X: nx, Y: ny})
	}
	return out
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// GetGeneration returns how many steps separate this grid from its construction
func (g *Grid) GetGeneration() int {
	return g.generation
}

func (g *Grid) contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the state of a cell, out of range positions read as dead
func (g *Grid) Get(x, y int) bool {
	if !g.contains(x, y) {
		return false
	}
	return g.cells[y][x].Alive()
}

// Cell returns the cell at (x, y)
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.contains(x, y) {
		return Cell{}, false
	}
	return g.cells[y][x], true
}

// Cells returns a copy of the cell rows, indexed [y][x]
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.height)
	for y, row := range g.cells {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// NeighborsOf returns the cells of this grid adjacent to c. A cell that does
// not lie inside the grid has no neighbors.
func (g *Grid) NeighborsOf(c Cell) []Cell {
	if !g.contains(c.X, c.Y) {
		return nil
	}
	adj := g.adjacency[c.Y*g.width+c.X]
	out := make([]Cell, len(adj))
	for i, idx := range adj {
		out[i] = g.cells[idx/g.width][idx%g.width]
	}
	return out
}

// LiveNeighbors counts the alive neighbors of (x, y)
func (g *Grid) LiveNeighbors(x, y int) (count int) {
	if !g.contains(x, y) {
		return 0
	}
	for _, idx := range g.adjacency[y*g.width+x] {
		if g.cells[idx/g.width][idx%g.width].Alive() {
			count++
		}
	}
	return
}

// AliveCoords lists alive positions in row-major order
func (g *Grid) AliveCoords() []Coord {
	var out []Coord
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].Alive() {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].Alive() {
				count++
			}
		}
	}
	return
}

// calculateActiveBounds calculates the bounding box of living cells.
// Only called while the grid is being built.
func (g *Grid) calculateActiveBounds() {
	g.activeBounds.valid = false

	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x].Alive() {
				continue
			}
			if !g.activeBounds.valid {
				g.activeBounds.minX, g.activeBounds.maxX = x, x
				g.activeBounds.minY, g.activeBounds.maxY = y, y
				g.activeBounds.valid = true
				continue
			}
			g.activeBounds.minX = min(g.activeBounds.minX, x)
			g.activeBounds.maxX = max(g.activeBounds.maxX, x)
			g.activeBounds.minY = min(g.activeBounds.minY, y)
			g.activeBounds.maxY = max(g.activeBounds.maxY, y)
		}
	}
}

// GetBoundingBoxSize returns the size of the active region
func (g *Grid) GetBoundingBoxSize() int {
	if !g.activeBounds.valid {
		return 0
	}
	return (g.activeBounds.maxX - g.activeBounds.minX + 1) *
		(g.activeBounds.maxY - g.activeBounds.minY + 1)
}

// GetGridHash returns an MD5 hash of the cell layout. Generation is not part of the hash.
func (g *Grid) GetGridHash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	for y := range g.height {
		for x := range g.width {
			h.Write([]byte{byte(g.cells[y][x].State)})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
