package state

import "go-concentration/internal/board"

// RevealGrid records which cells are face-up. Its dimensions match the board.
type RevealGrid [][]bool

func NewRevealGrid(rows, cols int) RevealGrid {
	g := make(RevealGrid, rows)
	for r := range g {
		g[r] = make([]bool, cols)
	}
	return g
}

// Revealed reports whether c is face-up. Cells off the grid are never revealed.
func (g RevealGrid) Revealed(c board.Cell) bool {
	if c.Row < 0 || c.Row >= len(g) || c.Col < 0 || c.Col >= len(g[c.Row]) {
		return false
	}
	return g[c.Row][c.Col]
}

func (g RevealGrid) set(c board.Cell, v bool) {
	g[c.Row][c.Col] = v
}

// Count returns the number of face-up cells.
func (g RevealGrid) Count() int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// IsIdle reports whether the turn machine is waiting for a first choice.
func (s *State) IsIdle() bool {
	return s.FSM.Current() == StateIdle
}

// IsResolving reports whether two cells are chosen and a mismatch is still showing.
func (s *State) IsResolving() bool {
	return s.FSM.Current() == StateResolving
}

// Accepts reports whether a click on c would be taken as a choice right now.
func (s *State) Accepts(c board.Cell) bool {
	return s.FSM.Can(EventChoose) && s.Board.InBounds(c) && !s.Reveal.Revealed(c)
}
