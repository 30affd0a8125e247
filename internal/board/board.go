package board

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// Cell is a grid position. Row indexes the vertical axis, Col the horizontal one.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Board is a rows x cols grid of tokens in which every token appears exactly twice.
type Board struct {
	Rows  int
	Cols  int
	Tiles [][]Token
}

// Distinct returns the palette with repeated tokens removed, keeping first occurrences in order.
func (p Palette) Distinct() Palette {
	seen := mapset.New[Token]()
	out := make(Palette, 0, len(p))
	for _, t := range p {
		if seen.Has(t) {
			continue
		}
		seen.Put(t)
		out = append(out, t)
	}
	return out
}

// CheckDimensions reports whether a rows x cols board can be filled with pairs from palette.
func CheckDimensions(rows, cols int, palette Palette) error {
	if rows <= 0 || cols <= 0 {
		return configErrorf("grid", "dimensions must be positive, got %dx%d", rows, cols)
	}
	if (rows*cols)%2 != 0 {
		return configErrorf("grid", "%dx%d has an odd number of cells", rows, cols)
	}
	pairs := rows * cols / 2
	if n := len(palette.Distinct()); n < pairs {
		return configErrorf("palette", "%d distinct tokens cannot fill %d pairs", n, pairs)
	}
	return nil
}

// Generate builds a shuffled board from the first rows*cols/2 distinct palette
// tokens, each used twice. The sequence is laid out row-major. A nil rng uses
// the package-level source.
func Generate(rows, cols int, palette Palette, rng *rand.Rand) (*Board, error) {
	if err := CheckDimensions(rows, cols, palette); err != nil {
		return nil, err
	}

	pairs := palette.Distinct()[:rows*cols/2]
	tokens := make([]Token, 0, rows*cols)
	tokens = append(tokens, pairs...)
	tokens = append(tokens, pairs...)

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(tokens), func(i, j int) {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	})

	b := &Board{Rows: rows, Cols: cols, Tiles: make([][]Token, rows)}
	for r := 0; r < rows; r++ {
		b.Tiles[r] = tokens[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return b, nil
}

// FromTokens builds a board from a fixed layout. Rows must be equal length and
// every token must appear exactly twice.
func FromTokens(tiles [][]Token) (*Board, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, configErrorf("grid", "board is empty")
	}
	rows, cols := len(tiles), len(tiles[0])
	counts := make(map[Token]int)
	seen := mapset.New[Token]()
	b := &Board{Rows: rows, Cols: cols, Tiles: make([][]Token, rows)}
	for r, row := range tiles {
		if len(row) != cols {
			return nil, configErrorf("grid", "row %d has %d cells, want %d", r, len(row), cols)
		}
		b.Tiles[r] = append([]Token(nil), row...)
		for _, t := range row {
			seen.Put(t)
			counts[t]++
		}
	}
	if seen.Size()*2 != rows*cols {
		return nil, configErrorf("grid", "%d distinct tokens on %d cells", seen.Size(), rows*cols)
	}
	for t, n := range counts {
		if n != 2 {
			return nil, configErrorf("grid", "token %s appears %d times", t, n)
		}
	}
	return b, nil
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// At returns the token at c. c must be in bounds.
func (b *Board) At(c Cell) Token {
	return b.Tiles[c.Row][c.Col]
}

// Match reports whether two cells hold the same token.
func (b *Board) Match(a, c Cell) bool {
	return b.At(a) == b.At(c)
}

// Cells lists every position row-major.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, 0, b.Rows*b.Cols)
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	return cells
}
