package game

import (
	"context"
	"time"

	"go-concentration/internal/board"
	"go-concentration/internal/state"
)

// Game encapsulates the core game logic, independent of the UI.
type Game struct {
	Board *board.Board
	State *state.State
}

// NewGame initializes a new game instance over b.
func NewGame(b *board.Board, pause time.Duration) *Game {
	return &Game{
		Board: b,
		State: state.NewState(b, pause),
	}
}

// Init moves the turn machine to idle.
func (g *Game) Init() {
	_ = g.State.FSM.Event(context.Background(), state.EventInit)
}

// HandleClick offers cell as the next choice. Clicks on revealed cells, off
// the board, or while a mismatch is showing are ignored. It reports whether
// the click was taken.
func (g *Game) HandleClick(cell board.Cell, now time.Time) bool {
	// The FSM rejects what it cannot take; rejection is a no-op here
	return g.State.FSM.Event(context.Background(), state.EventChoose, cell, now) == nil
}

// HandleTick lets time pass. A showing mismatch flips back once its
// deadline has been reached.
func (g *Game) HandleTick(now time.Time) {
	if !g.State.IsResolving() {
		return
	}
	_ = g.State.FSM.Event(context.Background(), state.EventExpire, now)
}
