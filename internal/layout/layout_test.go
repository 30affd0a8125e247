package layout

import (
	"errors"
	"testing"

	"go-concentration/internal/board"
)

func windowSpec() Spec {
	return Spec{
		CanvasW: 800, CanvasH: 600,
		Rows: 4, Cols: 5,
		CellW: 50, CellH: 50,
		GapX: 10, GapY: 10,
	}
}

func TestNew_CentersGrid(t *testing.T) {
	l, err := New(windowSpec())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// grid is 5*50+4*10 = 290 wide and 4*50+3*10 = 230 tall
	mx, my := l.Margins()
	if mx != 255 || my != 185 {
		t.Errorf("Expected margins (255,185), got (%d,%d)", mx, my)
	}
}

func TestCellRect(t *testing.T) {
	l, _ := New(windowSpec())

	tests := []struct {
		cell   board.Cell
		expect Rect
	}{
		{board.Cell{Row: 0, Col: 0}, Rect{255, 185, 50, 50}},
		{board.Cell{Row: 0, Col: 4}, Rect{495, 185, 50, 50}},
		{board.Cell{Row: 3, Col: 0}, Rect{255, 365, 50, 50}},
		{board.Cell{Row: 2, Col: 1}, Rect{315, 305, 50, 50}},
	}
	for _, tt := range tests {
		if got := l.CellRect(tt.cell); got != tt.expect {
			t.Errorf("CellRect(%s) = %+v, expected %+v", tt.cell, got, tt.expect)
		}
	}
}

func TestPointToCell_RoundTrip(t *testing.T) {
	specs := []Spec{
		windowSpec(),
		{CanvasW: 80, CanvasH: 24, Rows: 4, Cols: 5, CellW: 6, CellH: 3, GapX: 2, GapY: 1},
		{CanvasW: 30, CanvasH: 30, Rows: 2, Cols: 2, CellW: 1, CellH: 1, GapX: 1, GapY: 1},
	}

	for _, s := range specs {
		l, err := New(s)
		if err != nil {
			t.Fatalf("New(%+v) failed: %v", s, err)
		}
		for r := 0; r < s.Rows; r++ {
			for c := 0; c < s.Cols; c++ {
				want := board.Cell{Row: r, Col: c}
				rect := l.CellRect(want)
				px, py := rect.Center()
				got, ok := l.PointToCell(px, py)
				if !ok || got != want {
					t.Errorf("Center of %s mapped to %s (ok=%v)", want, got, ok)
				}
				// corners are inside too
				got, ok = l.PointToCell(rect.X+rect.W-1, rect.Y+rect.H-1)
				if !ok || got != want {
					t.Errorf("Bottom-right of %s mapped to %s (ok=%v)", want, got, ok)
				}
			}
		}
	}
}

func TestPointToCell_Misses(t *testing.T) {
	l, _ := New(windowSpec())

	tests := []struct {
		name   string
		px, py int
	}{
		{"left margin", 10, 200},
		{"top margin", 260, 10},
		{"horizontal gap", 305, 200},
		{"vertical gap", 260, 235},
		{"right of grid", 545, 200},
		{"below grid", 260, 415},
		{"negative", -5, -5},
	}
	for _, tt := range tests {
		if c, ok := l.PointToCell(tt.px, tt.py); ok {
			t.Errorf("%s: (%d,%d) mapped to %s, expected none", tt.name, tt.px, tt.py, c)
		}
	}
}

func TestCellRect_NoOverlap(t *testing.T) {
	l, _ := New(windowSpec())
	var rects []Rect
	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			rects = append(rects, l.CellRect(board.Cell{Row: r, Col: c}))
		}
	}
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Intersects(rects[j]) {
				t.Errorf("Rects %+v and %+v overlap", rects[i], rects[j])
			}
		}
	}
}

func TestNew_ConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Spec)
		field string
	}{
		{"zero gap", func(s *Spec) { s.GapX = 0 }, "gap"},
		{"zero cell", func(s *Spec) { s.CellH = 0 }, "cell size"},
		{"no rows", func(s *Spec) { s.Rows = 0 }, "grid"},
		{"too wide", func(s *Spec) { s.CanvasW = 100 }, "canvas"},
	}
	for _, tt := range tests {
		s := windowSpec()
		tt.edit(&s)
		_, err := New(s)
		var cfgErr *board.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: expected ConfigError, got %v", tt.name, err)
			continue
		}
		if cfgErr.Field != tt.field {
			t.Errorf("%s: expected field %q, got %q", tt.name, tt.field, cfgErr.Field)
		}
	}
}
