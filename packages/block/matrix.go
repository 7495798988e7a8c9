package block

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dense converts the block into a rows x cols gonum matrix. numbers, bools
// (1/0) and numeric strings convert; empty cells become NaN.
func (b *Block) Dense() (*mat.Dense, error) {
	m := mat.NewDense(b.rows, b.cols, nil)
	for r := 1; r <= b.rows; r++ {
		for c := 1; c <= b.cols; c++ {
			m.Set(r-1, c-1, math.NaN())
		}
	}
	for addr, v := range b.cells {
		f, ok := toNumber(v)
		if !ok {
			return nil, newError(TypeMismatch,
				"cell (%d, %d) holds non-numeric %T %v", addr.Row, addr.Column, v, v)
		}
		m.Set(addr.Row-1, addr.Column-1, f)
	}
	return m, nil
}

// FromMatrix copies every element of m into a block of the same shape.
// NaN elements are treated as empty cells.
func FromMatrix(m mat.Matrix) (*Block, error) {
	rows, cols := m.Dims()
	b, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if v := m.At(r, c); !math.IsNaN(v) {
				b.cells[CellAddress{Row: r + 1, Column: c + 1}] = v
			}
		}
	}
	return b, nil
}
