package ttt

import (
	"fmt"
	"strings"
)

const (
	Size     = 3
	NumCells = Size * Size
)

// Token placed on the grid by a player
type Mark uint8

const (
	X Mark = 1
	O Mark = 2
)

// Returns the opponent's mark
func (m Mark) Swap() Mark {
	if m == X {
		return O
	}
	return X
}

func (m Mark) String() string {
	switch m {
	case X:
		return "x"
	case O:
		return "o"
	}
	return "?"
}

// bitboard index of this mark
func (m Mark) index() int {
	return int(m) - 1
}

// Parses 'x' or 'o', case-insensitive
func ParseMark(s string) (Mark, error) {
	switch strings.ToLower(s) {
	case "x":
		return X, nil
	case "o":
		return O, nil
	}
	return 0, fmt.Errorf("expected x|o, got %q", s)
}

// Either empty or holding a mark, the zero value is an empty cell
type Cell uint8

const Empty Cell = 0

func (c Cell) Mark() (Mark, bool) {
	if c == Empty {
		return 0, false
	}
	return Mark(c), true
}

func (c Cell) IsEmpty() bool {
	return c == Empty
}

func (c Cell) String() string {
	if m, ok := c.Mark(); ok {
		return m.String()
	}
	return " "
}

// Zero-based (row, column) coordinate on the grid
type Position struct {
	Row int
	Col int
}

func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// One-based display form, e.g. (1, 3)
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row+1, p.Col+1)
}

func (p Position) index() int {
	return p.Row*Size + p.Col
}

func positionAt(index int) Position {
	return Position{Row: index / Size, Col: index % Size}
}

// Terminal status of a grid
type Outcome uint8

const (
	outcomeNone Outcome = iota
	Win
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Draw:
		return "draw"
	}
	return "none"
}
