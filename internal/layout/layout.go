// Package layout maps board cells to canvas rectangles and back.
//
// Units are whatever the presentation draws in: pixels for a window,
// character cells for a terminal. Cells are placed on a fixed pitch
// (cell size plus gap) and the grid is centered on the canvas.
package layout

import (
	"go-concentration/internal/board"
)

// Spec holds the constants a Layout is computed from.
type Spec struct {
	CanvasW, CanvasH int
	Rows, Cols       int
	CellW, CellH     int
	GapX, GapY       int
}

// Rect is an axis-aligned rectangle. It contains points in [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (px, py) lies inside r.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Intersects reports whether r and o share any point.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Center returns the middle point of r, rounded down.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Layout is an immutable cell <-> rectangle mapping.
type Layout struct {
	spec             Spec
	marginX, marginY int
}

// New validates s and computes the centering margins.
func New(s Spec) (Layout, error) {
	switch {
	case s.Rows <= 0 || s.Cols <= 0:
		return Layout{}, &board.ConfigError{Field: "grid", Reason: "dimensions must be positive"}
	case s.CellW <= 0 || s.CellH <= 0:
		return Layout{}, &board.ConfigError{Field: "cell size", Reason: "must be positive"}
	case s.GapX <= 0 || s.GapY <= 0:
		return Layout{}, &board.ConfigError{Field: "gap", Reason: "must be positive"}
	}

	gridW := s.Cols*s.CellW + (s.Cols-1)*s.GapX
	gridH := s.Rows*s.CellH + (s.Rows-1)*s.GapY
	if gridW > s.CanvasW || gridH > s.CanvasH {
		return Layout{}, &board.ConfigError{
			Field:  "canvas",
			Reason: "grid does not fit on the canvas",
		}
	}

	return Layout{
		spec:    s,
		marginX: (s.CanvasW - gridW) / 2,
		marginY: (s.CanvasH - gridH) / 2,
	}, nil
}

// Margins returns the left and top offsets of the grid.
func (l Layout) Margins() (int, int) {
	return l.marginX, l.marginY
}

// Spec returns the constants the layout was built from.
func (l Layout) Spec() Spec {
	return l.spec
}

// CellRect returns the rectangle occupied by c.
func (l Layout) CellRect(c board.Cell) Rect {
	return Rect{
		X: l.marginX + c.Col*(l.spec.CellW+l.spec.GapX),
		Y: l.marginY + c.Row*(l.spec.CellH+l.spec.GapY),
		W: l.spec.CellW,
		H: l.spec.CellH,
	}
}

// PointToCell returns the cell whose rectangle contains (px, py). It reports
// false for points in a gap, in the margins, or off the canvas.
func (l Layout) PointToCell(px, py int) (board.Cell, bool) {
	col, ok := axisIndex(px-l.marginX, l.spec.CellW, l.spec.GapX, l.spec.Cols)
	if !ok {
		return board.Cell{}, false
	}
	row, ok := axisIndex(py-l.marginY, l.spec.CellH, l.spec.GapY, l.spec.Rows)
	if !ok {
		return board.Cell{}, false
	}
	return board.Cell{Row: row, Col: col}, true
}

func axisIndex(offset, size, gap, count int) (int, bool) {
	if offset < 0 {
		return 0, false
	}
	pitch := size + gap
	i := offset / pitch
	if i >= count || offset%pitch >= size {
		return 0, false
	}
	return i, true
}
