package negamax

import "time"

// Scores of the terminal outcomes, from the perspective of the player who
// made the last move
const (
	WinScore  = 2
	DrawScore = 1
)

type SeedGeneratorFnType func() int64

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for the random number generators of
// new engines, by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
