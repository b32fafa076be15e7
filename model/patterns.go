package model

import (
	"bufio"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by PatternByName for names not in Patterns
var ErrUnknownPattern = errors.New("unknown pattern")

// Patterns holds the built-in seeds, anchored at (0, 0)
var Patterns = map[string][]Coord{
	"block":   {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	"blinker": {{0, 0}, {1, 0}, {2, 0}},
	"glider":  {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	"toad":    {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}},
	"beacon":  {{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}},
	"beehive": {{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {2, 2}},
	"r-pentomino": {
		{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2},
	},
}

// PatternNames returns the built-in pattern names, sorted
func PatternNames() []string {
	names := make([]string, 0, len(Patterns))
	for name := range Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PatternByName returns a copy of a built-in pattern
func PatternByName(name string) ([]Coord, error) {
	p, ok := Patterns[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[PatternByName] %q", name)
	}
	return append([]Coord(nil), p...), nil
}

// Offset shifts every coordinate by (dx, dy)
func Offset(coords []Coord, dx, dy int) []Coord {
	out := make([]Coord, len(coords))
	for i, c := range coords {
		out[i] = Coord{X: c.X + dx, Y: c.Y + dy}
	}
	return out
}

/*
ParsePlaintext reads a pattern in the plaintext cell format: one row per line,
'O' or '*' for alive and '.' for dead. Lines starting with '!' are comments.
*/
func ParsePlaintext(text string) ([]Coord, error) {
	var (
		out     []Coord
		y       int
		scanner = bufio.NewScanner(strings.NewReader(text))
	)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for x, ch := range line {
			switch ch {
			case 'O', 'o', '*':
				out = append(out, Coord{X: x, Y: y})
			case '.':
			default:
				return nil, errors.Errorf("[ParsePlaintext] unexpected %q at row %d col %d", ch, y, x)
			}
		}
		y++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParsePlaintext] failed to scan pattern")
	}
	return out, nil
}
