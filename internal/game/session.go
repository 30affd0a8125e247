package game

import (
	"fmt"
	"math/rand"
	"time"

	"go-concentration/internal/board"
	"go-concentration/internal/config"
	"go-concentration/internal/layout"
	"go-concentration/internal/state"

	"github.com/rs/zerolog"
)

// Presentation draws a session and feeds it input. Run owns the window or
// terminal from setup to teardown and returns once the session quits.
type Presentation interface {
	Run(s *Session) error
}

// Session is one game from start to quit. It is owned by a single loop and is
// not safe for concurrent use.
type Session struct {
	Config      config.Config
	Layout      layout.Layout
	CurrentGame *Game

	hover    board.Cell
	hasHover bool
	log      zerolog.Logger
}

// NewSession validates cfg, deals a board from rng and starts the game.
func NewSession(cfg config.Config, rng *rand.Rand, log zerolog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := board.Generate(cfg.Rows, cfg.Cols, cfg.Palette, rng)
	if err != nil {
		return nil, err
	}
	return newSession(cfg, b, log)
}

// NewSessionWithBoard starts a session on a fixed board.
func NewSessionWithBoard(cfg config.Config, b *board.Board, log zerolog.Logger) (*Session, error) {
	if b.Rows != cfg.Rows || b.Cols != cfg.Cols {
		return nil, &board.ConfigError{
			Field:  "grid",
			Reason: fmt.Sprintf("board is %dx%d, configuration is %dx%d", b.Rows, b.Cols, cfg.Rows, cfg.Cols),
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newSession(cfg, b, log)
}

func newSession(cfg config.Config, b *board.Board, log zerolog.Logger) (*Session, error) {
	l, err := layout.New(cfg.LayoutSpec())
	if err != nil {
		return nil, err
	}

	s := &Session{
		Config:      cfg,
		Layout:      l,
		CurrentGame: NewGame(b, cfg.MismatchPause),
		log:         log,
	}
	s.CurrentGame.State.OnTurn = func(first, second board.Cell, matched bool) {
		s.log.Info().
			Stringer("first", first).
			Stringer("second", second).
			Stringer("token", b.At(first)).
			Bool("matched", matched).
			Msg("turn resolved")
	}
	s.CurrentGame.Init()

	s.log.Info().
		Int("rows", b.Rows).
		Int("cols", b.Cols).
		Int("palette", len(cfg.Palette)).
		Dur("pause", cfg.MismatchPause).
		Msg("session started")
	return s, nil
}

// Step applies one frame of input. Events are read in order; a Quit returns
// true at once. Pointer motion only moves the hover cell. Of the clicks in a
// frame, only the last one is offered to the game, then time is advanced.
func (s *Session) Step(events []Event, now time.Time) (quit bool) {
	var (
		clicked bool
		cx, cy  int
	)
	for _, ev := range events {
		switch ev := ev.(type) {
		case Quit:
			s.log.Info().Str("phase", s.Phase()).Msg("quit")
			return true
		case PointerMoved:
			s.setHover(ev.X, ev.Y)
		case PointerReleased:
			s.setHover(ev.X, ev.Y)
			clicked, cx, cy = true, ev.X, ev.Y
		}
	}

	if clicked {
		if cell, ok := s.Layout.PointToCell(cx, cy); ok {
			if s.CurrentGame.HandleClick(cell, now) {
				s.log.Debug().Stringer("cell", cell).Msg("cell chosen")
			} else {
				s.log.Debug().Stringer("cell", cell).Str("phase", s.Phase()).Msg("click ignored")
			}
		}
	}

	wasResolving := s.CurrentGame.State.IsResolving()
	s.CurrentGame.HandleTick(now)
	if wasResolving && !s.CurrentGame.State.IsResolving() {
		s.log.Debug().Msg("mismatch hidden")
	}
	return false
}

func (s *Session) setHover(x, y int) {
	s.hover, s.hasHover = s.Layout.PointToCell(x, y)
}

// SetLayout replaces the mapper, e.g. after a terminal resize. The grid
// dimensions must not change.
func (s *Session) SetLayout(l layout.Layout) error {
	spec := l.Spec()
	if spec.Rows != s.Config.Rows || spec.Cols != s.Config.Cols {
		return &board.ConfigError{Field: "grid", Reason: "layout does not match the board"}
	}
	s.Layout = l
	s.hasHover = false
	return nil
}

// Board returns the session board.
func (s *Session) Board() *board.Board {
	return s.CurrentGame.Board
}

// Reveal returns the face-up grid.
func (s *Session) Reveal() state.RevealGrid {
	return s.CurrentGame.State.Reveal
}

// Phase returns the turn machine state.
func (s *Session) Phase() string {
	return s.CurrentGame.State.Phase()
}

// Hover returns the cell under the pointer, if any.
func (s *Session) Hover() (board.Cell, bool) {
	return s.hover, s.hasHover
}
