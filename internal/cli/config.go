package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/IlikeChooros/go-xsos/pkg/ttt"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

type Player uint8

const (
	Human Player = iota
	Computer
)

func (p Player) String() string {
	if p == Computer {
		return "computer"
	}
	return "human"
}

func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(s) {
	case "human", "h":
		return Human, nil
	case "computer", "c":
		return Computer, nil
	}
	return Human, fmt.Errorf("expected human|computer, got %q", s)
}

type Config struct {
	X        Player
	O        Player
	First    ttt.Mark
	Rounds   uint
	Seed     int64 // 0 means time based
	LogLevel zerolog.Level
	Summary  bool
}

func DefaultConfig() Config {
	return Config{
		X:        Human,
		O:        Computer,
		First:    ttt.X,
		Rounds:   25,
		LogLevel: zerolog.WarnLevel,
	}
}

func (c Config) Player(m ttt.Mark) Player {
	if m == ttt.X {
		return c.X
	}
	return c.O
}

// Both players are computers, nothing to ask the user
func (c Config) Batch() bool {
	return c.X == Computer && c.O == Computer
}

func (c Config) Humans() int {
	n := 0
	for _, p := range []Player{c.X, c.O} {
		if p == Human {
			n++
		}
	}
	return n
}

// pflag.Value implementations

type playerValue struct{ p *Player }

func (v playerValue) String() string { return v.p.String() }
func (v playerValue) Type() string   { return "player" }
func (v playerValue) Set(s string) (err error) {
	*v.p, err = ParsePlayer(s)
	return err
}

type markValue struct{ m *ttt.Mark }

func (v markValue) String() string { return v.m.String() }
func (v markValue) Type() string   { return "mark" }
func (v markValue) Set(s string) (err error) {
	mark, err := ttt.ParseMark(s)
	if err == nil {
		*v.m = mark
	}
	return err
}

type levelValue struct{ l *zerolog.Level }

func (v levelValue) String() string { return v.l.String() }
func (v levelValue) Type() string   { return "level" }
func (v levelValue) Set(s string) error {
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return err
	}
	*v.l = level
	return nil
}

// Parse the command line arguments (without the program name). Errors and
// usage are reported to errOut, pflag.ErrHelp is returned on -h/--help.
func ParseConfig(name string, args []string, errOut io.Writer) (Config, error) {
	cfg := DefaultConfig()

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(errOut, "Usage: %s [flags]\n\nPlay Tic-tac-toe against a perfect player, or watch two of them.\n\n", name)
		fs.PrintDefaults()
	}

	fs.VarP(playerValue{&cfg.X}, "x-player", "x", "who plays x: human|h|computer|c")
	fs.VarP(playerValue{&cfg.O}, "o-player", "o", "who plays o: human|h|computer|c")
	fs.VarP(markValue{&cfg.First}, "first", "f", "mark that moves first: x|o")
	fs.UintVarP(&cfg.Rounds, "rounds", "r", cfg.Rounds, "games to play when both players are computers")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed for the computer players, 0 picks one from the clock")
	fs.Var(levelValue{&cfg.LogLevel}, "log-level", "log level written to stderr: trace|debug|info|warn|error|disabled")
	fs.BoolVar(&cfg.Summary, "summary", false, "print a yaml tally to stderr after the computer games")

	err := fs.Parse(args)
	if err == nil && fs.NArg() > 0 {
		err = fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	// pflag prints the usage on --help by itself
	if err != nil && !errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintln(errOut, err)
		fs.Usage()
	}
	return cfg, err
}
