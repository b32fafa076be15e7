package rules

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidRule is returned when rule text cannot be parsed
var ErrInvalidRule = errors.New("invalid rule")

// Rule is a birth/survival rule for outer-totalistic automata on the Moore neighborhood.
// Birth[n] reports whether a dead cell with n live neighbors comes alive,
// Survive[n] whether a live cell with n live neighbors stays alive.
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// Conway is the standard B3/S23 rule
var Conway = Rule{
	Birth:   [9]bool{3: true},
	Survive: [9]bool{2: true, 3: true},
}

// Next returns the state of a cell in the next generation
func (r Rule) Next(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}

// String renders the rule in B/S notation, e.g. "B3/S23"
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteString("B")
	for n, on := range r.Birth {
		if on {
			fmt.Fprintf(&sb, "%d", n)
		}
	}
	sb.WriteString("/S")
	for n, on := range r.Survive {
		if on {
			fmt.Fprintf(&sb, "%d", n)
		}
	}
	return sb.String()
}

/*
Parse reads a rule in B/S notation ("B3/S23", case-insensitive) or in the
legacy S/B notation ("23/3"). An empty string yields Conway.
*/
func Parse(text string) (Rule, error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if text == "" {
		return Conway, nil
	}

	parts := strings.Split(text, "/")
	if len(parts) != 2 {
		return Rule{}, errors.Wrapf(ErrInvalidRule, "[Parse] expected two parts separated by '/': %q", text)
	}

	var (
		r                      Rule
		birthPart, survivePart string
	)
	switch {
	case strings.HasPrefix(parts[0], "B") && strings.HasPrefix(parts[1], "S"):
		birthPart, survivePart = parts[0][1:], parts[1][1:]
	case strings.HasPrefix(parts[0], "S") && strings.HasPrefix(parts[1], "B"):
		survivePart, birthPart = parts[0][1:], parts[1][1:]
	default:
		// S/B form without letters
		survivePart, birthPart = parts[0], parts[1]
	}

	if err := fillCounts(&r.Birth, birthPart); err != nil {
		return Rule{}, errors.Wrapf(err, "[Parse] bad birth counts in %q", text)
	}
	if err := fillCounts(&r.Survive, survivePart); err != nil {
		return Rule{}, errors.Wrapf(err, "[Parse] bad survival counts in %q", text)
	}
	return r, nil
}

func fillCounts(dst *[9]bool, digits string) error {
	for _, ch := range digits {
		if ch < '0' || ch > '8' {
			return errors.Wrapf(ErrInvalidRule, "neighbor count %q out of range 0-8", ch)
		}
		dst[ch-'0'] = true
	}
	return nil
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
