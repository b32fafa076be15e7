package session

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/rules"
)

// HaltReason explains why auto-advance stopped. The empty value means it did not.
type HaltReason string

const (
	NotHalted       HaltReason = ""
	FixedPoint      HaltReason = "fixed point"
	Oscillator      HaltReason = "oscillator"
	GenerationLimit HaltReason = "generation limit"
)

// Session owns the current grid and the auto-advance state for one board.
// The engine grids it hands out are immutable, so callers may keep them
// after the session has moved on.
type Session struct {
	mu sync.Mutex

	width, height  int
	rule           rules.Rule
	grid           *model.Grid
	auto           bool
	halted         HaltReason
	history        *model.History
	maxGenerations int
}

// Option configures a Session
type Option func(*Session)

// WithRule steps the board with r instead of Conway's rule
func WithRule(r rules.Rule) Option {
	return func(s *Session) { s.rule = r }
}

// WithOscillatorDetection also halts when the board repeats one of the last
// size generations. Without it only fixed points halt auto-advance.
func WithOscillatorDetection(size int) Option {
	return func(s *Session) { s.history = model.NewHistory(size) }
}

// WithMaxGenerations halts auto-advance once the board reaches generation n; 0 disables the limit
func WithMaxGenerations(n int) Option {
	return func(s *Session) { s.maxGenerations = n }
}

// New builds a session whose board starts with the given alive cells
func New(width, height int, alive []model.Coord, opts ...Option) (*Session, error) {
	grid, err := model.New(width, height, alive)
	if err != nil {
		return nil, errors.Wrap(err, "[session.New] failed to build grid")
	}
	s := &Session{
		width:  width,
		height: height,
		rule:   rules.Conway,
		grid:   grid,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Grid returns the current board
func (s *Session) Grid() *model.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Rule returns the rule the session steps with
func (s *Session) Rule() rules.Rule {
	return s.rule
}

// Auto reports whether auto-advance is on
func (s *Session) Auto() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auto
}

// SetAuto turns auto-advance on or off. Turning it on clears a previous halt.
func (s *Session) SetAuto(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auto = on
	if on {
		s.halted = NotHalted
	}
}

// Halted returns why auto-advance last stopped on its own
func (s *Session) Halted() HaltReason {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.halted
}

// Toggle flips the cell at c and rebuilds the board. Positions outside the
// board are ignored and reported as false.
func (s *Session) Toggle(c model.Coord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.grid.Cell(c.X, c.Y); !ok {
		return false
	}
	return s.setLocked(c, !s.grid.Get(c.X, c.Y))
}

// Set marks the cell at c alive or dead and rebuilds the board when it changes
func (s *Session) Set(c model.Coord, alive bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.grid.Cell(c.X, c.Y); !ok || s.grid.Get(c.X, c.Y) == alive {
		return false
	}
	return s.setLocked(c, alive)
}

func (s *Session) setLocked(c model.Coord, alive bool) bool {
	coords := s.grid.AliveCoords()
	if alive {
		coords = append(coords, c)
	} else {
		for i, a := range coords {
			if a == c {
				coords = append(coords[:i], coords[i+1:]...)
				break
			}
		}
	}
	s.rebuildLocked(coords)
	return true
}

// Load replaces the board with the given alive cells
func (s *Session) Load(alive []model.Coord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rebuildLocked(alive)
}

// Clear kills every cell
func (s *Session) Clear() {
	s.Load(nil)
}

// rebuildLocked constructs a fresh generation 0 grid. Dimensions were
// validated in New, so construction cannot fail here.
func (s *Session) rebuildLocked(alive []model.Coord) {
	grid, err := model.New(s.width, s.height, alive)
	if err != nil {
		panic(errors.Wrap(err, "[rebuild] session dimensions became invalid"))
	}
	s.grid = grid
	s.halted = NotHalted
	if s.history != nil {
		s.history.Reset()
	}
}

// Step advances the board by one generation. When the new board triggers a
// halt condition auto-advance is switched off and the reason returned.
func (s *Session) Step() (*model.Grid, HaltReason) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepLocked()
}

func (s *Session) stepLocked() (*model.Grid, HaltReason) {
	prev := s.grid
	next := model.StepWithRule(prev, s.rule)
	s.grid = next

	reason := NotHalted
	if s.history != nil {
		s.history.Record(prev)
	}
	switch {
	case model.Equal(prev, next):
		reason = FixedPoint
	case s.history != nil && s.history.Period(next) > 0:
		reason = Oscillator
	case s.maxGenerations > 0 && next.GetGeneration() >= s.maxGenerations:
		reason = GenerationLimit
	}
	if reason != NotHalted {
		s.auto = false
		s.halted = reason
	}
	return next, reason
}

// FrameFunc is called with every board produced by auto-advance. A non-nil
// error stops the run loop.
type FrameFunc func(g *model.Grid, reason HaltReason) error

// Run steps the board every interval while auto-advance is on, until ctx is
// done. Each step completes before the next tick is read.
func (s *Session) Run(ctx context.Context, interval time.Duration, onFrame FrameFunc) error {
	_, err := s.run(ctx, interval, false, onFrame)
	return err
}

// RunUntilHalt switches auto-advance on and steps every interval until a
// halt condition is reached or ctx is done.
func (s *Session) RunUntilHalt(ctx context.Context, interval time.Duration, onFrame FrameFunc) (HaltReason, error) {
	s.SetAuto(true)
	return s.run(ctx, interval, true, onFrame)
}

func (s *Session) run(ctx context.Context, interval time.Duration, stopOnHalt bool, onFrame FrameFunc) (HaltReason, error) {
	if interval <= 0 {
		return NotHalted, errors.Errorf("[Run] interval must be positive, got %v", interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return NotHalted, nil
		case <-ticker.C:
		}

		s.mu.Lock()
		if !s.auto {
			s.mu.Unlock()
			continue
		}
		next, reason := s.stepLocked()
		s.mu.Unlock()

		if onFrame != nil {
			if err := onFrame(next, reason); err != nil {
				return reason, errors.Wrapf(err, "[Run] frame callback failed at generation %d", next.GetGeneration())
			}
		}
		if stopOnHalt && reason != NotHalted {
			return reason, nil
		}
	}
}
