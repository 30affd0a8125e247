// Package gui presents a session in a desktop window using ebiten.
package gui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"go-concentration/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
)

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorHidden     = color.RGBA{255, 255, 255, 255}
	colorHover      = color.RGBA{200, 200, 200, 255}
)

// frameInput is what was read from the devices during one tick.
type frameInput struct {
	quit     bool
	moved    bool
	cursor   image.Point
	releases []image.Point
}

// events converts the input to session events in a fixed order: quit first,
// then motion, then releases.
func (in frameInput) events() []game.Event {
	var evs []game.Event
	if in.quit {
		evs = append(evs, game.Quit{})
	}
	if in.moved {
		evs = append(evs, game.PointerMoved{X: in.cursor.X, Y: in.cursor.Y})
	}
	for _, p := range in.releases {
		evs = append(evs, game.PointerReleased{X: p.X, Y: p.Y})
	}
	return evs
}

// Window implements ebiten.Game for one session.
type Window struct {
	session *game.Session
	cursor  image.Point
	log     zerolog.Logger
}

func newWindow(s *game.Session, log zerolog.Logger) *Window {
	return &Window{session: s, cursor: image.Pt(-1, -1), log: log}
}

func (w *Window) readInput() frameInput {
	var in frameInput

	in.quit = ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	x, y := ebiten.CursorPosition()
	if p := image.Pt(x, y); p != w.cursor {
		w.cursor = p
		in.moved = true
		in.cursor = p
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.releases = append(in.releases, w.cursor)
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		in.releases = append(in.releases, image.Pt(tx, ty))
	}
	return in
}

func (w *Window) Update() error {
	if w.session.Step(w.readInput().events(), time.Now()) {
		w.log.Debug().Msg("closing window")
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	l := w.session.Layout
	b := w.session.Board()
	reveal := w.session.Reveal()
	hover, hovering := w.session.Hover()

	for _, cell := range b.Cells() {
		r := l.CellRect(cell)
		switch {
		case reveal.Revealed(cell):
			cx, cy := r.Center()
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r.W)/2, b.At(cell).Color, true)
		case hovering && cell == hover:
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorHover, false)
		default:
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorHidden, false)
		}
	}

	ebitenutil.DebugPrintAt(screen, "Esc: quit", 4, 4)
}

// Layout keeps the logical canvas fixed; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.session.Config.CanvasWidth, w.session.Config.CanvasHeight
}

// Presentation opens a window sized to the session canvas.
type Presentation struct {
	Title string
	log   zerolog.Logger
}

func New(title string, log zerolog.Logger) *Presentation {
	return &Presentation{Title: title, log: log}
}

func (p *Presentation) Run(s *game.Session) error {
	ebiten.SetWindowSize(s.Config.CanvasWidth, s.Config.CanvasHeight)
	ebiten.SetWindowTitle(p.Title)
	ebiten.SetTPS(s.Config.FPS)
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGame(newWindow(s, p.log))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("error running the window: %w", err)
	}
	return nil
}
