package state

import (
	"context"
	"time"

	"go-concentration/internal/board"

	"github.com/looplab/fsm"
)

// FSM states.
const (
	StateStart     = "start"
	StateIdle      = "idle"
	StateOneChosen = "oneChosen"
	StateResolving = "resolving"
)

// FSM events.
const (
	EventInit    = "initGame"
	EventChoose  = "choose"
	EventMatched = "matched"
	EventExpire  = "expire"
)

// TurnFunc is called once per turn, when the second cell is chosen.
type TurnFunc func(first, second board.Cell, matched bool)

type State struct {
	Board     *board.Board
	Reveal    RevealGrid
	Selection Selection
	Pause     time.Duration // How long a mismatch stays face-up
	Deadline  time.Time     // When a pending mismatch flips back; zero outside Resolving
	OnTurn    TurnFunc
	FSM       *fsm.FSM
}

func NewState(b *board.Board, pause time.Duration) *State {
	s := &State{
		Board:     b,
		Reveal:    NewRevealGrid(b.Rows, b.Cols),
		Selection: NoneChosen{},
		Pause:     pause,
	}

	s.FSM = fsm.NewFSM(
		StateStart,
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

// Phase returns the current FSM state.
func (s *State) Phase() string {
	return s.FSM.Current()
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: EventInit, Src: []string{StateStart}, Dst: StateIdle},

		// A click on a hidden cell
		{Name: EventChoose, Src: []string{StateIdle}, Dst: StateOneChosen},
		{Name: EventChoose, Src: []string{StateOneChosen}, Dst: StateResolving},

		// Resolution
		{Name: EventMatched, Src: []string{StateResolving}, Dst: StateIdle},
		{Name: EventExpire, Src: []string{StateResolving}, Dst: StateIdle},
	}
}

// Event args:
//
//	choose: board.Cell, time.Time
//	expire: time.Time
func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"before_" + EventChoose: func(ctx context.Context, e *fsm.Event) {
			cell, ok := cellArg(e)
			if !ok || !s.Board.InBounds(cell) || s.Reveal.Revealed(cell) {
				e.Cancel()
			}
		},
		"enter_" + StateOneChosen: func(ctx context.Context, e *fsm.Event) {
			cell, _ := cellArg(e)
			s.Reveal.set(cell, true)
			s.Selection = OneChosen{First: cell}
		},
		"enter_" + StateResolving: func(ctx context.Context, e *fsm.Event) {
			second, _ := cellArg(e)
			first := s.Selection.(OneChosen).First
			s.Reveal.set(second, true)
			s.Selection = TwoChosen{First: first, Second: second}

			matched := s.Board.Match(first, second)
			if s.OnTurn != nil {
				s.OnTurn(first, second, matched)
			}
			if matched {
				e.FSM.Event(ctx, EventMatched)
				return
			}
			s.Deadline = timeArg(e, 1).Add(s.Pause)
		},
		"before_" + EventExpire: func(ctx context.Context, e *fsm.Event) {
			if timeArg(e, 0).Before(s.Deadline) {
				e.Cancel()
			}
		},
		"enter_" + StateIdle: func(ctx context.Context, e *fsm.Event) {
			if two, ok := s.Selection.(TwoChosen); ok && e.Event == EventExpire {
				s.Reveal.set(two.First, false)
				s.Reveal.set(two.Second, false)
			}
			s.Selection = NoneChosen{}
			s.Deadline = time.Time{}
		},
	}
}

func cellArg(e *fsm.Event) (board.Cell, bool) {
	if len(e.Args) == 0 {
		return board.Cell{}, false
	}
	c, ok := e.Args[0].(board.Cell)
	return c, ok
}

func timeArg(e *fsm.Event, i int) time.Time {
	if len(e.Args) <= i {
		return time.Time{}
	}
	t, _ := e.Args[i].(time.Time)
	return t
}
