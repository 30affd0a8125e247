package state

import "go-concentration/internal/board"

// Selection is the set of cells chosen in the current turn. It is always one
// of NoneChosen, OneChosen or TwoChosen.
type Selection interface {
	// Cells lists the chosen cells in the order they were picked.
	Cells() []board.Cell
	selection()
}

type NoneChosen struct{}

type OneChosen struct {
	First board.Cell
}

type TwoChosen struct {
	First, Second board.Cell
}

func (NoneChosen) Cells() []board.Cell  { return nil }
func (s OneChosen) Cells() []board.Cell { return []board.Cell{s.First} }
func (s TwoChosen) Cells() []board.Cell { return []board.Cell{s.First, s.Second} }

func (NoneChosen) selection() {}
func (OneChosen) selection()  {}
func (TwoChosen) selection()  {}
