package model

// History keeps the hashes of recent grids to detect short-period oscillators
type History struct {
	size   int
	hashes []string
}

// NewHistory returns a History remembering up to size grids; size < 1 is treated as 1
func NewHistory(size int) *History {
	return &History{size: max(size, 1)}
}

// Reset forgets every recorded grid
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded grids
func (h *History) Len() int {
	return len(h.hashes)
}

// Period reports the smallest p such that g matches the grid recorded p steps
// earlier, or 0 when g matches none of the recorded grids.
func (h *History) Period(g *Grid) int {
	hash := g.GetGridHash()
	for p := 1; p <= len(h.hashes); p++ {
		if h.hashes[len(h.hashes)-p] == hash {
			return p
		}
	}
	return 0
}

// Record adds g and drops the oldest entry once full
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}
