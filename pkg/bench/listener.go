package bench

import (
	"bufio"
	"io"

	"github.com/rs/zerolog"
)

type ListenerLike interface {
	OnStart(info GameInfo)
	OnMoveMade(info GameInfo)
	OnFinishedGame(info GameInfo)
	OnEnd(summary SummaryInfo)
}

type DefaultListener struct{}

func (d DefaultListener) OnStart(info GameInfo)        {}
func (d DefaultListener) OnMoveMade(info GameInfo)     {}
func (d DefaultListener) OnFinishedGame(info GameInfo) {}
func (d DefaultListener) OnEnd(summary SummaryInfo)    {}

// Writes one character per finished game ('x', 'o' or '.'), flushing after
// every game, and a newline once all games are played
type SummaryListener struct {
	DefaultListener
	w   *bufio.Writer
	err error
}

func NewSummaryListener(w io.Writer) *SummaryListener {
	return &SummaryListener{w: bufio.NewWriter(w)}
}

func (s *SummaryListener) OnFinishedGame(info GameInfo) {
	s.write(info.Result.Symbol())
}

func (s *SummaryListener) OnEnd(summary SummaryInfo) {
	if summary.TotalGames > 0 {
		s.write("\n")
	}
}

func (s *SummaryListener) write(str string) {
	if s.err != nil {
		return
	}
	if _, err := s.w.WriteString(str); err != nil {
		s.err = err
		return
	}
	s.err = s.w.Flush()
}

// First write error, if any
func (s *SummaryListener) Err() error {
	return s.err
}

// Logs every move and game result at debug level
type LogListener struct {
	log zerolog.Logger
}

func NewLogListener(log zerolog.Logger) *LogListener {
	return &LogListener{log: log}
}

func (l *LogListener) OnStart(info GameInfo) {
	l.log.Debug().Str("session", info.SessionID).Int("games", info.NGames).Msg("arena started")
}

func (l *LogListener) OnMoveMade(info GameInfo) {
	l.log.Trace().
		Str("session", info.SessionID).
		Int("game", info.FinishedGames+1).
		Int("ply", info.GameMoveNum).
		Stringer("move", info.Moves[len(info.Moves)-1]).
		Msg("move made")
}

func (l *LogListener) OnFinishedGame(info GameInfo) {
	l.log.Debug().
		Str("session", info.SessionID).
		Int("game", info.FinishedGames).
		Stringer("starter", info.Result.Starter).
		Str("result", info.Result.Symbol()).
		Int("moves", info.GameMoveNum).
		Msg("game finished")
}

func (l *LogListener) OnEnd(summary SummaryInfo) {
	l.log.Info().
		Str("session", summary.SessionID).
		Int("games", summary.TotalGames).
		Int("x", summary.XWins).
		Int("o", summary.OWins).
		Int("draws", summary.Draws).
		Msg("arena finished")
}

// Fans out the events to every listener, in order
type MultiListener []ListenerLike

func (m MultiListener) OnStart(info GameInfo) {
	for _, l := range m {
		l.OnStart(info)
	}
}

func (m MultiListener) OnMoveMade(info GameInfo) {
	for _, l := range m {
		l.OnMoveMade(info)
	}
}

func (m MultiListener) OnFinishedGame(info GameInfo) {
	for _, l := range m {
		l.OnFinishedGame(info)
	}
}

func (m MultiListener) OnEnd(summary SummaryInfo) {
	for _, l := range m {
		l.OnEnd(summary)
	}
}
