package cli

import (
	"context"
	"io"

	"github.com/IlikeChooros/go-xsos/pkg/negamax"
)

// Runs the program for the parsed config. Returns nil on a normal exit,
// the context error if it was cancelled, or the first I/O error.
// In interactive mode a cancelled context returns at once, but the goroutine
// reading 'in' stays blocked until that reader returns or the process exits.
func Run(ctx context.Context, cfg Config, in io.Reader, out, errOut io.Writer) error {
	log := NewLogger(errOut, cfg.LogLevel)
	log.Debug().
		Stringer("x", cfg.X).
		Stringer("o", cfg.O).
		Stringer("first", cfg.First).
		Uint("rounds", cfg.Rounds).
		Int64("seed", cfg.Seed).
		Msg("config")

	engine := negamax.NewEngine()
	if cfg.Seed != 0 {
		engine = negamax.NewEngineWithSeed(cfg.Seed)
	}
	engine.SetListener(searchLogger(log))

	if cfg.Batch() {
		return runBatch(ctx, cfg, engine, out, errOut, log)
	}

	// Reading the input can't be interrupted, so give up on it once
	// the context is done
	done := make(chan error, 1)
	go func() {
		done <- NewInteractive(cfg, engine, in, NewPrinter(out), log).Run()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
