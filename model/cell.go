package model

// State is the life state of a single cell
type State uint8

const (
	Dead State = iota
	Alive
)

func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Coord is a 0-indexed grid position
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Cell is a positioned cell inside one Grid snapshot
type Cell struct {
	State State
	X, Y  int
}

// Alive reports whether the cell is alive
func (c Cell) Alive() bool { return c.State == Alive }

// Coord returns the cell position
func (c Cell) Coord() Coord { return Coord{X: c.X, Y: c.Y} }
