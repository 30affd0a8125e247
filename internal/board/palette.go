package board

import (
	"fmt"
	"image/color"
)

// Token is the hidden identity of a tile. Two cells holding equal tokens
// form a matching pair.
type Token struct {
	Name  string
	Color color.RGBA
}

func (t Token) String() string {
	return t.Name
}

// Hex returns the token color as "#rrggbb".
func (t Token) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", t.Color.R, t.Color.G, t.Color.B)
}

// Palette is an ordered list of tokens. Boards take tokens from the front.
type Palette []Token

func rgb(name string, r, g, b uint8) Token {
	return Token{Name: name, Color: color.RGBA{R: r, G: g, B: b, A: 0xff}}
}

// DefaultPalette holds the ten tile colors, enough for a 20 cell board.
var DefaultPalette = Palette{
	rgb("gray", 100, 100, 100),
	rgb("navy", 60, 60, 100),
	rgb("white", 255, 255, 255),
	rgb("red", 255, 0, 0),
	rgb("green", 0, 255, 0),
	rgb("blue", 0, 0, 255),
	rgb("yellow", 255, 255, 0),
	rgb("orange", 255, 128, 0),
	rgb("purple", 255, 0, 255),
	rgb("cyan", 0, 255, 255),
}
