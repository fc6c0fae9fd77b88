package ttt

import (
	"errors"
	"slices"
	"testing"
)

// helper to apply a sequence of moves
func playMoves(t *testing.T, g *Game, moves ...Position) {
	t.Helper()
	for i, m := range moves {
		if err := g.Play(m); err != nil {
			t.Fatalf("move %d (%v) failed: %v", i, m, err)
		}
	}
}

func TestAfterThreePlays(t *testing.T) {
	g := NewGame(X)
	if !g.IsPlaying() || g.IsGameOver() {
		t.Fatal("new game should be playing")
	}

	playMoves(t, g, Pos(1, 1), Pos(0, 2), Pos(2, 0))

	if !g.IsPlaying() || g.Turn() != O {
		t.Fatalf("playing=%v turn=%v, want playing O", g.IsPlaying(), g.Turn())
	}
	want := []Cell{
		Empty, Empty, Cell(O),
		Empty, Cell(X), Empty,
		Cell(X), Empty, Empty,
	}
	if got := slices.Collect(g.Grid().Cells()); !slices.Equal(got, want) {
		t.Errorf("cells=%v, want=%v", got, want)
	}
}

func TestXWinsDiagonal(t *testing.T) {
	g := NewGame(X)
	playMoves(t, g, Pos(1, 1), Pos(0, 2), Pos(2, 0), Pos(1, 2), Pos(2, 2), Pos(2, 1), Pos(0, 0))

	outcome, over := g.Outcome()
	if !g.IsGameOver() || !over || outcome != Win {
		t.Fatalf("over=%v outcome=%v, want win", g.IsGameOver(), outcome)
	}
	if g.Turn() != X {
		t.Errorf("turn=%v, want=x", g.Turn())
	}
	if w, ok := g.Winner(); !ok || w != X {
		t.Errorf("winner=%v ok=%v", w, ok)
	}
	want := []Cell{
		Cell(X), Empty, Cell(O),
		Empty, Cell(X), Cell(O),
		Cell(X), Cell(O), Cell(X),
	}
	if got := slices.Collect(g.Grid().Cells()); !slices.Equal(got, want) {
		t.Errorf("cells=%v, want=%v", got, want)
	}
}

func TestDrawSwapsStarterOnRestart(t *testing.T) {
	g := NewGame(O)
	playMoves(t, g, Pos(1, 1), Pos(0, 0), Pos(2, 2), Pos(0, 2), Pos(0, 1), Pos(2, 1), Pos(1, 2), Pos(1, 0), Pos(2, 0))

	if outcome, _ := g.Outcome(); outcome != Draw {
		t.Fatalf("outcome=%v, want draw", outcome)
	}
	if g.Turn() != O {
		t.Errorf("turn after draw=%v, want o (last mover)", g.Turn())
	}
	if _, ok := g.Winner(); ok {
		t.Error("draw should have no winner")
	}

	g.Restart()
	if !g.IsPlaying() || g.Turn() != X {
		t.Errorf("after restart playing=%v turn=%v, want playing x", g.IsPlaying(), g.Turn())
	}
	if g.Grid().EmptyCount() != NumCells {
		t.Error("restart should clear the grid")
	}
}

func TestWinnerStartsAfterRestart(t *testing.T) {
	g := NewGame(X)
	// o wins the middle column
	playMoves(t, g, Pos(0, 0), Pos(0, 1), Pos(2, 2), Pos(1, 1), Pos(0, 2), Pos(2, 1))
	if w, ok := g.Winner(); !ok || w != O {
		t.Fatalf("winner=%v ok=%v, want o", w, ok)
	}

	g.Restart()
	if g.Turn() != O {
		t.Errorf("turn=%v, want the winner o", g.Turn())
	}
}

func TestRestartWhilePlayingKeepsTurn(t *testing.T) {
	g := NewGame(X)
	playMoves(t, g, Pos(0, 0))
	g.Restart()
	if g.Turn() != O || !g.IsPlaying() || g.MoveCount() != 0 {
		t.Errorf("turn=%v playing=%v moves=%d", g.Turn(), g.IsPlaying(), g.MoveCount())
	}
}

func TestRestartIdempotent(t *testing.T) {
	sequences := [][]Position{
		{},
		{Pos(0, 0), Pos(1, 1)},
		{Pos(0, 0), Pos(1, 0), Pos(0, 1), Pos(1, 1), Pos(0, 2)},
		{Pos(1, 1), Pos(0, 0), Pos(2, 2), Pos(0, 2), Pos(0, 1), Pos(2, 1), Pos(1, 2), Pos(1, 0), Pos(2, 0)},
	}
	for _, seq := range sequences {
		for _, first := range []Mark{X, O} {
			once := NewGame(first)
			playMoves(t, once, seq...)
			once.Restart()
			twice := once.Clone()
			twice.Restart()
			if *once != *twice {
				t.Errorf("moves %v first %v: restart once=%v, twice=%v", seq, first, once, twice)
			}
		}
	}
}

func TestPlayErrors(t *testing.T) {
	g := NewGame(X)
	for _, p := range []Position{Pos(-1, 0), Pos(0, -1), Pos(3, 0), Pos(0, 3), Pos(0, 4)} {
		if err := g.Play(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Play(%v) = %v, want ErrOutOfBounds", p, err)
		}
	}

	playMoves(t, g, Pos(1, 1))
	before := *g
	if err := g.Play(Pos(1, 1)); !errors.Is(err, ErrAlreadyMarked) {
		t.Fatalf("Play on taken cell = %v, want ErrAlreadyMarked", err)
	}
	if *g != before {
		t.Errorf("failed play changed the game: %v -> %v", before.Notation(), g.Notation())
	}
}

func TestPlayAfterGameOverIgnored(t *testing.T) {
	g := NewGame(X)
	playMoves(t, g, Pos(0, 0), Pos(1, 0), Pos(0, 1), Pos(1, 1), Pos(0, 2))
	before := *g

	for _, p := range []Position{Pos(2, 2), Pos(5, 5), Pos(0, 0)} {
		if err := g.Play(p); err != nil {
			t.Errorf("Play(%v) after game over = %v, want nil", p, err)
		}
	}
	if *g != before {
		t.Errorf("play after game over changed the game: %v", g.Notation())
	}
}

func TestClone(t *testing.T) {
	g := NewGame(X)
	playMoves(t, g, Pos(1, 1), Pos(0, 2), Pos(2, 0), Pos(1, 2), Pos(2, 2), Pos(2, 1))

	clone := g.Clone()
	playMoves(t, clone, Pos(0, 0))

	if !clone.IsGameOver() || !g.IsPlaying() {
		t.Errorf("clone over=%v, original playing=%v", clone.IsGameOver(), g.IsPlaying())
	}
}

// Walks every reachable game and checks the state invariants
func TestReachableGameInvariants(t *testing.T) {
	visited := 0
	var walk func(g *Game)
	walk = func(g *Game) {
		visited++
		grid := g.Grid()
		nx, no := grid.Count(X), grid.Count(O)
		if nx-no > 1 || no-nx > 1 {
			t.Fatalf("%v: unbalanced marks", g)
		}
		if n := len(slices.Collect(grid.EmptyPositions())); n+nx+no != NumCells {
			t.Fatalf("%v: %d empty + %d marked != %d", g, n, nx+no, NumCells)
		}

		if outcome, over := g.Outcome(); over {
			switch outcome {
			case Win:
				if lineCount(grid, g.Turn()) == 0 || lineCount(grid, g.Turn().Swap()) != 0 {
					t.Fatalf("%v: winner %v does not own the only complete arrangement", g, g.Turn())
				}
			case Draw:
				if !grid.IsFull() || lineCount(grid, X)+lineCount(grid, O) != 0 {
					t.Fatalf("%v: invalid draw", g)
				}
			}
			return
		}

		for p := range grid.EmptyPositions() {
			next := g.Clone()
			if err := next.Play(p); err != nil {
				t.Fatalf("%v: Play(%v) = %v", g, p, err)
			}
			if next.IsPlaying() && next.Turn() != g.Turn().Swap() {
				t.Fatalf("%v: turn not swapped after %v", g, p)
			}
			if next.IsGameOver() && next.Turn() != g.Turn() {
				t.Fatalf("%v: turn changed on the final move %v", g, p)
			}

			// errors must leave the game untouched
			before := *next
			if err := next.Play(p); next.IsPlaying() && !errors.Is(err, ErrAlreadyMarked) {
				t.Fatalf("%v: replaying %v = %v", next, p, err)
			}
			if *next != before {
				t.Fatalf("%v: failed play changed the game", next)
			}
			walk(next)
		}
	}

	walk(NewGame(X))
	if visited != 549946 {
		t.Errorf("visited %d games, want=549946", visited)
	}
}
