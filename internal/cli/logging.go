package cli

import (
	"io"
	"time"

	"github.com/IlikeChooros/go-xsos/pkg/negamax"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

// Human readable logger writing to w, colored only if w is a terminal
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    termenv.NewOutput(w).ColorProfile() == termenv.Ascii,
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// Logs the result of every search made by the engine
func searchLogger(log zerolog.Logger) negamax.StatsListener {
	listener := negamax.NewStatsListener()
	listener.OnStop(func(stats negamax.SearchStats) {
		log.Debug().
			Int("nodes", stats.Nodes).
			Int("maxdepth", stats.Maxdepth).
			Int("ms", stats.TimeMs).
			Stringer("best", stats.Best).
			Int("moves", stats.NMoves).
			Msg("search finished")
	})
	return listener
}
