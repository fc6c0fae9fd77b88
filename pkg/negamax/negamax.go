package negamax

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"sync"

	"github.com/IlikeChooros/go-xsos/pkg/ttt"
)

// Perfect-play move selector. Explores the whole game tree with negamax,
// working on independent copies of the game it's given.
// An Engine is not safe for concurrent use, create one per goroutine.
type Engine struct {
	stats    SearchStats
	listener *StatsListener
	rand     *rand.Rand
	timer    *_Timer
}

// Create new engine, seeded by SeedGeneratorFn
func NewEngine() *Engine {
	return NewEngineWithSeed(SeedGeneratorFn())
}

func NewEngineWithSeed(seed int64) *Engine {
	return &Engine{
		listener: &StatsListener{},
		rand:     rand.New(rand.NewSource(seed)),
		timer:    _NewTimer(),
	}
}

func (e *Engine) SetListener(listener StatsListener) {
	*e.listener = listener
}

func (e *Engine) ResetListener() {
	e.listener.OnDepth(nil).OnStop(nil)
}

// Reseed the random number generator used by RandomMove
func (e *Engine) Seed(seed int64) {
	e.rand.Seed(seed)
}

// Statistics of the last search
func (e *Engine) Stats() SearchStats {
	return e.stats
}

// Returns every optimal move for the player to move, in row-major order.
// Empty if the game is over.
func (e *Engine) Moves(game *ttt.Game) []ttt.Position {
	e.stats = SearchStats{}
	e.timer.Reset()

	if game.IsGameOver() {
		return nil
	}

	positions := slices.Collect(game.Grid().EmptyPositions())
	switch len(positions) {
	case 1, ttt.NumCells:
		// No search needed, on the empty board every move is a draw
		e.stats.NMoves = len(positions)
		e.listener.invokeStop(e.stats)
		return positions
	}

	values := make([]Value, len(positions))
	best := Value{Score: math.MinInt}
	for i, pos := range positions {
		child := game.Clone()
		child.Play(pos)
		values[i] = e.negamax(child, 1).Negate()
		if i == 0 || values[i].Compare(best) > 0 {
			best = values[i]
		}
	}

	moves := make([]ttt.Position, 0, len(positions))
	for i, pos := range positions {
		if values[i].Compare(best) == 0 {
			moves = append(moves, pos)
		}
	}

	e.stats.Best = best
	e.stats.NMoves = len(moves)
	e.stats.TimeMs = e.timer.Deltatime()
	e.listener.invokeStop(e.stats)
	return moves
}

// Value of the game from the perspective of the player to move
func (e *Engine) negamax(game *ttt.Game, depth int) Value {
	e.stats.Nodes++
	if depth > e.stats.Maxdepth {
		e.stats.Maxdepth = depth
		e.listener.invokeDepth(e.stats)
	}

	if outcome, over := game.Outcome(); over {
		// The last move was made by the opponent
		return Value{Score: -score(outcome), Depth: depth}
	}

	var best Value
	first := true
	for pos := range game.Grid().EmptyPositions() {
		child := *game
		child.Play(pos)
		v := e.negamax(&child, depth+1).Negate()

		// On a tie keep the deeper resolution (slower loss)
		if c := v.Compare(best); first || c > 0 || (c == 0 && v.Depth > best.Depth) {
			best = v
			first = false
		}
	}
	return best
}

func score(outcome ttt.Outcome) int {
	if outcome == ttt.Win {
		return WinScore
	}
	return DrawScore
}

// Picks uniformly at random one of the optimal moves, false if there is none
func (e *Engine) RandomMove(game *ttt.Game) (ttt.Position, bool) {
	moves := e.Moves(game)
	if len(moves) == 0 {
		return ttt.Position{}, false
	}
	return moves[e.rand.Intn(len(moves))], true
}

// Implements the arena agent interface
func (e *Engine) Choose(game *ttt.Game) (ttt.Position, bool) {
	return e.RandomMove(game)
}

func (e *Engine) String() string {
	return fmt.Sprintf("Negamax={Stats:{nodes=%d, maxdepth=%d, time=%dms, best=%v, moves=%d}}",
		e.stats.Nodes, e.stats.Maxdepth, e.stats.TimeMs, e.stats.Best, e.stats.NMoves)
}

// Process-wide engine behind the package level functions
var (
	defaultMu     sync.Mutex
	defaultEngine = NewEngine()
)

// Reseed the process-wide random source
func SetSeed(seed int64) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultEngine.Seed(seed)
}

// Returns every optimal move for the player to move, see Engine.Moves
func Moves(game *ttt.Game) []ttt.Position {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultEngine.Moves(game)
}

// Picks uniformly at random one of the optimal moves, using the
// process-wide random source
func RandomMove(game *ttt.Game) (ttt.Position, bool) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultEngine.RandomMove(game)
}
