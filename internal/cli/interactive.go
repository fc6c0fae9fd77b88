package cli

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/IlikeChooros/go-xsos/pkg/negamax"
	"github.com/IlikeChooros/go-xsos/pkg/ttt"
	"github.com/rs/zerolog"
)

// Game loop with at least one human at the keyboard
type Interactive struct {
	cfg     Config
	engine  *negamax.Engine
	scanner *bufio.Scanner
	p       *Printer
	log     zerolog.Logger
}

func NewInteractive(cfg Config, engine *negamax.Engine, in io.Reader, p *Printer, log zerolog.Logger) *Interactive {
	return &Interactive{
		cfg:     cfg,
		engine:  engine,
		scanner: bufio.NewScanner(in),
		p:       p,
		log:     log,
	}
}

// Plays games until the user declines to continue or the input ends
func (s *Interactive) Run() error {
	err := s.run()
	if errors.Is(err, io.EOF) {
		// end of input, leave the prompt on its own line
		s.p.Println()
		err = nil
	}
	if err != nil {
		return err
	}
	return s.p.Err()
}

func (s *Interactive) run() error {
	s.p.Println(intro)

	game := ttt.NewGame(s.cfg.First)
	for {
		if err := s.playGame(game); err != nil {
			return err
		}

		again, err := s.readContinue()
		if err != nil || !again {
			return err
		}
		game.Restart()
		s.log.Debug().Stringer("first", game.Turn()).Msg("new game")
	}
}

func (s *Interactive) playGame(game *ttt.Game) error {
	for game.IsPlaying() {
		if s.p.Err() != nil {
			return s.p.Err()
		}

		var err error
		if s.cfg.Player(game.Turn()) == Human {
			err = s.humanTurn(game)
		} else {
			err = s.computerTurn(game)
		}
		if err != nil {
			return err
		}
	}

	s.announce(game)
	return nil
}

func (s *Interactive) humanTurn(game *ttt.Game) error {
	s.p.Println(s.p.formatTurn(s.cfg.Humans(), game.Turn()))
	s.p.Println(s.p.formatGrid(game.Grid()))

	for {
		pos, err := s.readPosition(game.Grid())
		if err != nil {
			return err
		}

		err = game.Play(pos)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, ttt.ErrOutOfBounds):
			s.p.Println("Try again, that position is out of bounds")
		case errors.Is(err, ttt.ErrAlreadyMarked):
			s.p.Println("Try again, that position is already taken")
		default:
			return err
		}
	}
}

func (s *Interactive) computerTurn(game *ttt.Game) error {
	pos, ok := s.engine.RandomMove(game)
	if !ok {
		return errors.New("computer has no move")
	}
	if err := game.Play(pos); err != nil {
		return err
	}
	s.p.Println("The computer played at " + pos.String())
	return nil
}

func (s *Interactive) announce(game *ttt.Game) {
	outcome, _ := game.Outcome()
	winner, _ := game.Winner()
	s.log.Debug().Stringer("outcome", outcome).Str("game", game.Notation()).Msg("game over")

	switch {
	case outcome == ttt.Draw:
		s.p.Println("Game drawn.")
	case s.cfg.Player(winner) == Computer:
		s.p.Println("The computer won. Better luck next time.")
	case s.cfg.Humans() == 2:
		s.p.Println("Congratulations! " + s.p.mark(winner) + " won.")
	default:
		s.p.Println("Congratulations! You won.")
	}
	s.p.Println(s.p.formatGrid(game.Grid()))
}

// Reads until a well formed position is entered, the hint is shown only
// after the first malformed one
func (s *Interactive) readPosition(grid ttt.Grid) (ttt.Position, error) {
	hint := true
	for {
		line, err := s.readLine("> ")
		if err != nil {
			return ttt.Position{}, err
		}
		if pos, ok := parsePosition(line); ok {
			return pos, nil
		}

		if hint {
			hint = false
			example := firstEmpty(grid)
			s.p.Println(`Try again, but this time enter a position in the format "r c",`)
			s.p.Printf("where 1 <= r <= %d and 1 <= c <= %d, for e.g. \"%d %d\"\n",
				ttt.Size, ttt.Size, example.Row+1, example.Col+1)
		}
	}
}

func (s *Interactive) readContinue() (bool, error) {
	for {
		line, err := s.readLine("Do you want to continue playing? (Y/n) ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// Prints the prompt and reads one trimmed line, io.EOF once the input ends
func (s *Interactive) readLine(prompt string) (string, error) {
	s.p.Print(prompt)
	if err := s.p.Err(); err != nil {
		return "", err
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

// Two positive one-based integers "r c", returned zero-based. Bounds are
// left for the game to check.
func parsePosition(s string) (ttt.Position, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return ttt.Position{}, false
	}
	r, err1 := strconv.Atoi(fields[0])
	c, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || r <= 0 || c <= 0 {
		return ttt.Position{}, false
	}
	return ttt.Pos(r-1, c-1), true
}

func firstEmpty(grid ttt.Grid) ttt.Position {
	for pos := range grid.EmptyPositions() {
		return pos
	}
	return ttt.Position{}
}
