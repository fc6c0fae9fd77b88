package bench

import (
	"context"
	"errors"
	"fmt"

	"github.com/IlikeChooros/go-xsos/pkg/ttt"
	"github.com/google/uuid"
)

/*
Arena benchmark subpackage, plays a series of games between two agents on the
same Game, restarting it between rounds, so the starter rotates: the winner
begins the next game, after a draw the other player does.
*/

var ErrNoMove = errors.New("agent has no move")

type Arena struct {
	ArenaStats
	ID     string // session id, for log correlation
	Agents [2]Agent
	NGames uint
	Game   *ttt.Game
	ctx    context.Context
}

func NewArena(game *ttt.Game, agentX, agentO Agent) *Arena {
	return &Arena{
		ID:     uuid.NewString(),
		Agents: [2]Agent{agentX, agentO},
		NGames: 25,
		Game:   game,
		ctx:    context.Background(),
	}
}

func (a *Arena) WithContext(ctx context.Context) *Arena {
	a.ctx = ctx
	return a
}

func (a *Arena) Setup(nGames uint) {
	a.NGames = nGames
}

func (a *Arena) agent(m ttt.Mark) Agent {
	if m == ttt.X {
		return a.Agents[0]
	}
	return a.Agents[1]
}

// Play all the games, blocks until done or the context is cancelled.
// The listener is always notified about the end, even on error.
func (a *Arena) Run(listener ListenerLike) error {
	if listener == nil {
		listener = DefaultListener{}
	}

	listener.OnStart(a.info(nil))
	var err error
	for range a.NGames {
		var result GameResult
		var moves []ttt.Position
		if result, moves, err = a.playGame(listener); err != nil {
			break
		}

		a.record(result)
		info := a.info(moves)
		info.Result = result
		listener.OnFinishedGame(info)

		a.Game.Restart()
	}

	listener.OnEnd(a.Summary())
	return err
}

func (a *Arena) playGame(listener ListenerLike) (GameResult, []ttt.Position, error) {
	game := a.Game
	result := GameResult{Starter: game.Turn()}
	moves := make([]ttt.Position, 0, ttt.NumCells)

	for game.IsPlaying() {
		select {
		case <-a.ctx.Done():
			return result, moves, a.ctx.Err()
		default:
			// continue
		}

		turn := game.Turn()
		move, ok := a.agent(turn).Choose(game)
		if !ok {
			return result, moves, fmt.Errorf("%v at %v: %w", turn, game, ErrNoMove)
		}
		if err := game.Play(move); err != nil {
			return result, moves, fmt.Errorf("%v played %v at %v: %w", turn, move, game, err)
		}

		moves = append(moves, move)
		listener.OnMoveMade(a.info(moves))
	}

	result.Outcome, _ = game.Outcome()
	result.Winner, _ = game.Winner()
	return result, moves, nil
}

func (a *Arena) info(moves []ttt.Position) GameInfo {
	return GameInfo{
		SessionID:     a.ID,
		NGames:        int(a.NGames),
		FinishedGames: a.Total(),
		GameMoveNum:   len(moves),
		Moves:         moves,
		XWins:         a.XWins(),
		OWins:         a.OWins(),
		Draws:         a.Draws(),
	}
}

func (a *Arena) Summary() SummaryInfo {
	return SummaryInfo{
		SessionID:        a.ID,
		TotalGames:       a.Total(),
		XWins:            a.XWins(),
		OWins:            a.OWins(),
		Draws:            a.Draws(),
		FirstToMoveWins:  a.FirstToMoveWins(),
		SecondToMoveWins: a.SecondToMoveWins(),
	}
}
