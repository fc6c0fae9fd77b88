package ttt

import (
	"fmt"
	"iter"
	"math/bits"
)

const fullBitboard uint16 = 0b111111111

// 3x3 grid, each mark has its own bitboard, where bit i is the cell at
// index i = 3*row + col. Grid is a value type, assignment makes an independent copy.
type Grid struct {
	bitboards [2]uint16
}

func NewGrid() Grid {
	return Grid{}
}

func InBounds(p Position) bool {
	return p.InBounds()
}

// Place the mark at given position, the cell must be in bounds and empty
func (g *Grid) Mark(p Position, m Mark) {
	if !p.InBounds() {
		panic(fmt.Sprintf("ttt: Grid.Mark out of bounds %v", p))
	}
	if !g.IsEmptyAt(p) {
		panic(fmt.Sprintf("ttt: Grid.Mark on a marked cell %v", p))
	}
	g.bitboards[m.index()] |= 1 << p.index()
}

func (g Grid) IsEmptyAt(p Position) bool {
	return g.occupied()&(1<<p.index()) == 0
}

func (g Grid) At(p Position) Cell {
	return g.cellAt(p.index())
}

func (g Grid) cellAt(index int) Cell {
	bit := uint16(1) << index
	switch {
	case g.bitboards[X.index()]&bit != 0:
		return Cell(X)
	case g.bitboards[O.index()]&bit != 0:
		return Cell(O)
	}
	return Empty
}

func (g Grid) occupied() uint16 {
	return g.bitboards[0] | g.bitboards[1]
}

// Yields every empty position in row-major order
func (g Grid) EmptyPositions() iter.Seq[Position] {
	free := fullBitboard ^ g.occupied()
	return func(yield func(Position) bool) {
		for f := free; f != 0; f &= f - 1 {
			if !yield(positionAt(bits.TrailingZeros16(f))) {
				return
			}
		}
	}
}

// Yields all 9 cells in row-major order
func (g Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i := range NumCells {
			if !yield(g.cellAt(i)) {
				return
			}
		}
	}
}

// Number of cells holding given mark
func (g Grid) Count(m Mark) int {
	return bits.OnesCount16(g.bitboards[m.index()])
}

func (g Grid) EmptyCount() int {
	return NumCells - bits.OnesCount16(g.occupied())
}

func (g Grid) IsFull() bool {
	return g.occupied() == fullBitboard
}

func (g Grid) bitboard(m Mark) uint16 {
	return g.bitboards[m.index()]
}
