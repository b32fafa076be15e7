package main

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/session"
	"github.com/sheikhrachel/go-gol-engine/utils"
)

const controlsHelp = "space: auto | n: step | c: clear | r: reset | q: quit | click/drag: paint"

// generationPalette cycles the colour of live cells as generations pass
var generationPalette = []tcell.Color{
	tcell.ColorGreen,
	tcell.ColorTeal,
	tcell.ColorBlue,
	tcell.ColorPurple,
	tcell.ColorRed,
	tcell.ColorOlive,
}

var deadStyle = tcell.StyleDefault.Background(tcell.ColorBlack)

func cellColor(generation int) tcell.Color {
	return generationPalette[generation%len(generationPalette)]
}

// screenDriver connects a session to a tcell screen: it draws every board
// and turns key presses and mouse drags into session edits
type screenDriver struct {
	screen tcell.Screen
	sess   *session.Session
	seed   []model.Coord

	mu sync.Mutex

	// drag painting state, only touched by the event loop
	painting   bool
	paintAlive bool
}

func newScreenDriver(screen tcell.Screen, sess *session.Session, seed []model.Coord) *screenDriver {
	return &screenDriver{screen: screen, sess: sess, seed: seed}
}

// draw renders g with its status lines. Each cell is two columns wide.
func (d *screenDriver) draw(g *model.Grid, reason session.HaltReason) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.screen.Clear()
	live := tcell.StyleDefault.Background(cellColor(g.GetGeneration()))
	for y := range g.GetHeight() {
		for x := range g.GetWidth() {
			style := deadStyle
			if g.Get(x, y) {
				style = live
			}
			d.screen.SetContent(2*x, y, ' ', nil, style)
			d.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}

	auto := "paused"
	if d.sess.Auto() {
		auto = "running"
	}
	d.drawText(0, g.GetHeight()+1, gameStatus(g, reason))
	d.drawText(0, g.GetHeight()+2, "Auto: "+auto+" | Rule: "+d.sess.Rule().String())
	d.drawText(0, g.GetHeight()+3, controlsHelp)
	d.screen.Show()
	return nil
}

func (d *screenDriver) drawText(x, y int, text string) {
	for i, r := range []rune(text) {
		d.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

func (d *screenDriver) redraw() {
	_ = d.draw(d.sess.Grid(), d.sess.Halted())
}

// handleEvent applies one input event and reports whether the user asked to quit
func (d *screenDriver) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return false
		}
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case ' ':
			d.sess.SetAuto(!d.sess.Auto())
		case 'n', 'N':
			d.sess.Step()
		case 'c', 'C':
			d.sess.Clear()
		case 'r', 'R':
			d.sess.Load(d.seed)
		default:
			return false
		}
	case *tcell.EventMouse:
		if !d.handleMouse(ev) {
			return false
		}
	default:
		return false
	}
	d.redraw()
	return false
}

// handleMouse paints while the primary button is held. The first cell of a
// drag decides whether the drag paints alive or dead cells.
func (d *screenDriver) handleMouse(ev *tcell.EventMouse) bool {
	if ev.Buttons()&tcell.Button1 == 0 {
		d.painting = false
		return false
	}

	x, y := ev.Position()
	c := model.Coord{X: x / 2, Y: y}
	g := d.sess.Grid()
	if _, ok := g.Cell(c.X, c.Y); !ok {
		return false
	}
	if !d.painting {
		d.painting = true
		d.paintAlive = !g.Get(c.X, c.Y)
	}
	return d.sess.Set(c, d.paintAlive)
}

// pollEvents handles input until the user quits (errShutdown), the screen is
// finalised, or ctx is done
func (d *screenDriver) pollEvents(ctx context.Context) error {
	for {
		ev := d.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		if d.handleEvent(ev) {
			return errShutdown
		}
	}
}

// runInteractive drives the session on a tcell screen until the user quits or ctx is done
func runInteractive(ctx context.Context, screen tcell.Screen, sess *session.Session, config utils.Config, seed []model.Coord) error {
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "[runInteractive] failed to initialise screen")
	}
	defer screen.Fini()
	screen.EnableMouse()

	sess.SetAuto(config.AutoAdvance)
	d := newScreenDriver(screen, sess, seed)
	d.redraw()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return sess.Run(ctx, config.FrameRate, d.draw)
	})
	eg.Go(func() error {
		return d.pollEvents(ctx)
	})
	eg.Go(func() error {
		<-ctx.Done()
		// wake PollEvent so the event loop sees the cancellation
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})
	return eg.Wait()
}
