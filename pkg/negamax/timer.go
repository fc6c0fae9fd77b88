package negamax

import (
	"time"
)

type _Timer struct {
	start time.Time
}

func _NewTimer() *_Timer {
	return &_Timer{time.Now()}
}

// Set the 'start' as now
func (t *_Timer) Reset() {
	t.start = time.Now()
}

// Milliseconds since the last reset
func (t *_Timer) Deltatime() int {
	return int(time.Since(t.start).Milliseconds())
}
