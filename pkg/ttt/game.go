package ttt

import "errors"

// Errors returned by Game.Play, the game state is left unchanged
var (
	ErrOutOfBounds   = errors.New("that position is out of bounds")
	ErrAlreadyMarked = errors.New("that position is already taken")
)

// Tic-tac-toe match: the grid, whose turn it is and whether the game is over.
// When the game is won, turn holds the winner's mark.
// Game is a value type, copying it yields an independent game.
type Game struct {
	grid    Grid
	turn    Mark
	outcome Outcome // outcomeNone while playing
}

// Start a new game with an empty grid, 'first' moves first
func NewGame(first Mark) *Game {
	return &Game{turn: first}
}

// Make a move for the player whose turn it is. Moves after the game is over
// are ignored and return nil.
func (g *Game) Play(p Position) error {
	if g.IsGameOver() {
		return nil
	}
	if !p.InBounds() {
		return ErrOutOfBounds
	}
	if !g.grid.IsEmptyAt(p) {
		return ErrAlreadyMarked
	}

	g.grid.Mark(p, g.turn)
	if outcome, over := Evaluate(g.grid); over {
		g.outcome = outcome
	} else {
		g.turn = g.turn.Swap()
	}
	return nil
}

// Clear the grid for the next round. The winner starts the next game, after
// a draw the player who didn't start the drawn game does.
func (g *Game) Restart() {
	g.grid = Grid{}
	if g.outcome == Draw {
		g.turn = g.turn.Swap()
	}
	g.outcome = outcomeNone
}

// Getters

func (g *Game) Turn() Mark {
	return g.turn
}

func (g *Game) Grid() Grid {
	return g.grid
}

func (g *Game) Outcome() (Outcome, bool) {
	return g.outcome, g.outcome != outcomeNone
}

func (g *Game) IsPlaying() bool {
	return g.outcome == outcomeNone
}

func (g *Game) IsGameOver() bool {
	return !g.IsPlaying()
}

// The winner's mark, if the game ended with a win
func (g *Game) Winner() (Mark, bool) {
	if g.outcome == Win {
		return g.turn, true
	}
	return 0, false
}

// Number of marks placed so far
func (g *Game) MoveCount() int {
	return NumCells - g.grid.EmptyCount()
}

// Make a deep copy of the game
func (g *Game) Clone() *Game {
	c := *g
	return &c
}

func (g *Game) String() string {
	return g.Notation()
}
