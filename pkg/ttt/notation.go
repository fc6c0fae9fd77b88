package ttt

import (
	"fmt"
	"strings"
)

// string notation of the game, much like FEN for chess:
//
//	<row>/<row>/<row> <turn>
//
// where each row lists 'x' and 'o' pieces, and a run of empty cells is
// written as its length. <turn> is the mark to move, or the winner's mark
// once the game is won.
//
// Examples:
//
// * 3/3/3 x
//
// * x1o/1x1/3 o
func (g *Game) Notation() string {
	builder := strings.Builder{}

	for row := range Size {
		if row > 0 {
			builder.WriteByte('/')
		}

		counter := 0
		for col := range Size {
			cell := g.grid.At(Pos(row, col))
			if cell.IsEmpty() {
				counter++
				continue
			}
			if counter > 0 {
				fmt.Fprintf(&builder, "%d", counter)
				counter = 0
			}
			builder.WriteString(cell.String())
		}

		if counter > 0 {
			fmt.Fprintf(&builder, "%d", counter)
		}
	}

	builder.WriteByte(' ')
	builder.WriteString(g.turn.String())
	return builder.String()
}

// Rebuild a game from its notation, the game state is derived from the grid
func ParseNotation(notation string) (*Game, error) {
	sections := strings.Fields(notation)
	if len(sections) != 2 {
		return nil, fmt.Errorf("notation %q: expected 2 sections, got %d", notation, len(sections))
	}

	turn, err := ParseMark(sections[1])
	if err != nil {
		return nil, fmt.Errorf("notation %q: %w", notation, err)
	}

	rows := strings.Split(sections[0], "/")
	if len(rows) != Size {
		return nil, fmt.Errorf("notation %q: expected %d rows, got %d", notation, Size, len(rows))
	}

	g := &Game{turn: turn}
	for row, rowStr := range rows {
		col := 0
		for _, c := range rowStr {
			if col >= Size {
				return nil, fmt.Errorf("notation %q: row %d is too long", notation, row+1)
			}
			switch {
			case c >= '1' && c <= '0'+Size:
				col += int(c - '0')
			case c == 'x' || c == 'o':
				mark, _ := ParseMark(string(c))
				g.grid.Mark(Pos(row, col), mark)
				col++
			default:
				return nil, fmt.Errorf("notation %q: unexpected character %q", notation, c)
			}
		}
		if col != Size {
			return nil, fmt.Errorf("notation %q: row %d has %d cells", notation, row+1, col)
		}
	}

	if err := g.validate(); err != nil {
		return nil, fmt.Errorf("notation %q: %w", notation, err)
	}
	return g, nil
}

// Check the grid is reachable by alternating play and set the outcome
func (g *Game) validate() error {
	nx, no := g.grid.Count(X), g.grid.Count(O)
	if nx-no > 1 || no-nx > 1 {
		return fmt.Errorf("unbalanced marks: %d x, %d o", nx, no)
	}
	if lineCount(g.grid, X) > 0 && lineCount(g.grid, O) > 0 {
		return fmt.Errorf("both marks have a winning arrangement")
	}

	outcome, over := Evaluate(g.grid)
	if !over {
		// the mark with fewer pieces must move
		if (nx > no && g.turn != O) || (no > nx && g.turn != X) {
			return fmt.Errorf("%v cannot be on move with %d x, %d o", g.turn, nx, no)
		}
		return nil
	}

	// the last mover can't have fewer pieces than the opponent
	if (nx > no && g.turn != X) || (no > nx && g.turn != O) {
		return fmt.Errorf("%v cannot have made the last move with %d x, %d o", g.turn, nx, no)
	}
	if outcome == Win {
		if winner, _ := Winner(g.grid); winner != g.turn {
			return fmt.Errorf("turn %v does not match the winner %v", g.turn, winner)
		}
	}
	g.outcome = outcome
	return nil
}
