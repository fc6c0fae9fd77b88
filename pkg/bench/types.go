package bench

import (
	"sync/atomic"

	"github.com/IlikeChooros/go-xsos/pkg/ttt"
	"gopkg.in/yaml.v2"
)

// Anything that can pick a move for the player to move, e.g. *negamax.Engine
type Agent interface {
	Choose(game *ttt.Game) (ttt.Position, bool)
}

type ArenaStats struct {
	xWins            uint32
	oWins            uint32
	draws            uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
}

func (as *ArenaStats) Total() int {
	return as.XWins() + as.OWins() + as.Draws()
}

func (as *ArenaStats) XWins() int {
	return int(atomic.LoadUint32(&as.xWins))
}

func (as *ArenaStats) OWins() int {
	return int(atomic.LoadUint32(&as.oWins))
}

func (as *ArenaStats) Draws() int {
	return int(atomic.LoadUint32(&as.draws))
}

func (as *ArenaStats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&as.firstToMoveWins))
}

func (as *ArenaStats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&as.secondToMoveWins))
}

func (as *ArenaStats) Wins(m ttt.Mark) int {
	if m == ttt.X {
		return as.XWins()
	}
	return as.OWins()
}

// Record the result of a finished game
func (as *ArenaStats) record(result GameResult) {
	if result.Outcome == ttt.Draw {
		atomic.AddUint32(&as.draws, 1)
		return
	}

	if result.Winner == ttt.X {
		atomic.AddUint32(&as.xWins, 1)
	} else {
		atomic.AddUint32(&as.oWins, 1)
	}

	if result.Winner == result.Starter {
		atomic.AddUint32(&as.firstToMoveWins, 1)
	} else {
		atomic.AddUint32(&as.secondToMoveWins, 1)
	}
}

// Result of a single game
type GameResult struct {
	Outcome ttt.Outcome
	Winner  ttt.Mark // zero on a draw
	Starter ttt.Mark
}

// One-character summary: the winner's mark, or '.' on a draw
func (r GameResult) Symbol() string {
	if r.Outcome == ttt.Win {
		return r.Winner.String()
	}
	return "."
}

type GameInfo struct {
	SessionID     string
	NGames        int
	FinishedGames int
	GameMoveNum   int
	Moves         []ttt.Position
	Result        GameResult // valid in OnFinishedGame
	XWins         int
	OWins         int
	Draws         int
}

type SummaryInfo struct {
	SessionID        string `yaml:"session"`
	TotalGames       int    `yaml:"total_games"`
	XWins            int    `yaml:"x_wins"`
	OWins            int    `yaml:"o_wins"`
	Draws            int    `yaml:"draws"`
	FirstToMoveWins  int    `yaml:"first_to_move_wins"`
	SecondToMoveWins int    `yaml:"second_to_move_wins"`
}

// Render the summary as a yaml document
func (s SummaryInfo) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
