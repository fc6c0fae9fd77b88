package negamax

import (
	"cmp"
	"fmt"
)

// Result of the search for a subtree: the score from the perspective of the
// player to move at its root, and the depth (plies from the search root) at
// which the game resolves under perfect play
type Value struct {
	Score int
	Depth int
}

// Switch the perspective to the other player
func (v Value) Negate() Value {
	return Value{Score: -v.Score, Depth: v.Depth}
}

// Returns +1 if v is preferred over other, -1 if other is preferred, 0 if
// both are equally good. A higher score is better, among equal winning scores
// the faster win is better. Equal non-winning scores are ties.
func (v Value) Compare(other Value) int {
	if v.Score != other.Score {
		return cmp.Compare(v.Score, other.Score)
	}
	if v.Score > 0 {
		return cmp.Compare(other.Depth, v.Depth)
	}
	return 0
}

func (v Value) IsWin() bool {
	return v.Score == WinScore
}

func (v Value) IsLoss() bool {
	return v.Score == -WinScore
}

func (v Value) String() string {
	switch {
	case v.IsWin():
		return fmt.Sprintf("win@%d", v.Depth)
	case v.IsLoss():
		return fmt.Sprintf("loss@%d", v.Depth)
	}
	return fmt.Sprintf("draw@%d", v.Depth)
}

// Statistics of the last search
type SearchStats struct {
	Nodes    int
	Maxdepth int
	TimeMs   int
	Best     Value
	NMoves   int // number of equally optimal moves found
}
