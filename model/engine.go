package model

import (
	"github.com/sheikhrachel/go-gol-engine/rules"
)

// Step calculates the next generation using Conway's rules
func Step(g *Grid) *Grid {
	return StepWithRule(g, rules.Conway)
}

// StepWithRule calculates the next generation under rule. Every cell is
// evaluated against g only, and the result is a new grid with its own
// adjacency index and generation g.generation+1.
func StepWithRule(g *Grid, rule rules.Rule) *Grid {
	next := newGrid(g.width, g.height, g.generation+1)
	for y := range g.height {
		for x := range g.width {
			if rule.Next(g.cells[y][x].Alive(), g.LiveNeighbors(x, y)) {
				next.cells[y][x].State = Alive
			}
		}
	}
	next.calculateActiveBounds()
	return next
}

// Equal reports whether a and b have the same dimensions and cell states.
// Generation is ignored; this is the fixed-point check used to halt auto-advance.
func Equal(a, b *Grid) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.width != b.width || a.height != b.height {
		return false
	}
	for y := range a.height {
		for x := range a.width {
			if a.cells[y][x].State != b.cells[y][x].State {
				return false
			}
		}
	}
	return true
}
