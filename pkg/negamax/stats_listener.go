package negamax

// Listener function callback, receives current search statistics
type ListenerFunc func(SearchStats)

type StatsListener struct {
	// called when 'max depth' increases, receives new max depth
	onDepth ListenerFunc

	// called when the search finishes
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

// Attach new on max depth change callback, called from within the search,
// so keep it cheap
func (listener *StatsListener) OnDepth(onDepth ListenerFunc) *StatsListener {
	listener.onDepth = onDepth
	return listener
}

// Attach 'on search end' callback, receives the final stats and best value
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invokeDepth(stats SearchStats) {
	if listener.onDepth != nil {
		listener.onDepth(stats)
	}
}

func (listener *StatsListener) invokeStop(stats SearchStats) {
	if listener.onStop != nil {
		listener.onStop(stats)
	}
}
