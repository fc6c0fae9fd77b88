package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/IlikeChooros/go-xsos/pkg/bench"
	"github.com/IlikeChooros/go-xsos/pkg/negamax"
	"github.com/IlikeChooros/go-xsos/pkg/ttt"
	"github.com/rs/zerolog"
)

// Computer against computer: one character per game on out, and the yaml
// tally on errOut if asked for
func runBatch(ctx context.Context, cfg Config, engine *negamax.Engine, out, errOut io.Writer, log zerolog.Logger) error {
	arena := bench.NewArena(ttt.NewGame(cfg.First), engine, engine).WithContext(ctx)
	arena.Setup(cfg.Rounds)

	summary := bench.NewSummaryListener(out)
	if err := arena.Run(bench.MultiListener{summary, bench.NewLogListener(log)}); err != nil {
		return err
	}
	if err := summary.Err(); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}

	if cfg.Summary {
		data, err := arena.Summary().YAML()
		if err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		if _, err := errOut.Write(data); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}
	return nil
}
