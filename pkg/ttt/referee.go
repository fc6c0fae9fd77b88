package ttt

// The eight winning arrangements as cell index triples
var Arrangements = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Same arrangements as bitboards, bit i is cell index i
var _winningBitboardPatterns = arrangementBitboards()

func arrangementBitboards() (patterns [8]uint16) {
	for i, arr := range Arrangements {
		for _, idx := range arr {
			patterns[i] |= 1 << idx
		}
	}
	return patterns
}

// Determine the terminal status of the grid, returns false if the game is
// still in progress
func Evaluate(g Grid) (Outcome, bool) {
	if _, ok := Winner(g); ok {
		return Win, true
	}
	if g.IsFull() {
		return Draw, true
	}
	return outcomeNone, false
}

// Returns the mark owning a complete arrangement, if any
func Winner(g Grid) (Mark, bool) {
	for _, m := range [2]Mark{X, O} {
		bb := g.bitboard(m)
		for i := range 8 {
			if bb&_winningBitboardPatterns[i] == _winningBitboardPatterns[i] {
				return m, true
			}
		}
	}
	return 0, false
}

// Number of complete arrangements held by the given mark
func lineCount(g Grid, m Mark) int {
	bb := g.bitboard(m)
	n := 0
	for i := range 8 {
		if bb&_winningBitboardPatterns[i] == _winningBitboardPatterns[i] {
			n++
		}
	}
	return n
}
