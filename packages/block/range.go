package block

import "iter"

// RangeAddress represents a rectangular range of cells, bounds inclusive
type RangeAddress struct {
	StartRow    int
	StartColumn int
	EndRow      int
	EndColumn   int
}

// Contains reports whether the cell lies inside the range
func (r RangeAddress) Contains(row, col int) bool {
	return row >= r.StartRow && row <= r.EndRow &&
		col >= r.StartColumn && col <= r.EndColumn
}

// Cell is a single cell yielded while iterating a range
type Cell struct {
	Row    int
	Column int
	Value  Primitive // nil for empty cells
}

// CellRange is a lazy, read-only window onto a block
type CellRange struct {
	bounds RangeAddress
	block  *Block
}

// Range returns a window over rows startRow..endRow and columns
// startCol..endCol. every bound must lie within the block's capacity and
// start must not exceed end.
func (b *Block) Range(startRow, startCol, endRow, endCol int) (*CellRange, error) {
	bounds := RangeAddress{
		StartRow:    startRow,
		StartColumn: startCol,
		EndRow:      endRow,
		EndColumn:   endCol,
	}
	if err := b.checkRow(startRow); err != nil {
		return nil, err
	}
	if err := b.checkRow(endRow); err != nil {
		return nil, err
	}
	if err := b.checkCol(startCol); err != nil {
		return nil, err
	}
	if err := b.checkCol(endCol); err != nil {
		return nil, err
	}
	if startRow > endRow || startCol > endCol {
		return nil, newError(InvalidRange, "range %v is inverted", bounds)
	}
	return &CellRange{bounds: bounds, block: b}, nil
}

func (b *Block) checkRow(row int) error {
	if row < 1 || row > b.rows {
		return newError(InvalidRange, "row bound %d outside 1..%d", row, b.rows)
	}
	return nil
}

func (b *Block) checkCol(col int) error {
	if col < 1 || col > b.cols {
		return newError(InvalidRange, "column bound %d outside 1..%d", col, b.cols)
	}
	return nil
}

// GetBounds returns the range boundaries
func (r *CellRange) GetBounds() RangeAddress {
	return r.bounds
}

// Iterate returns an iterator over all cells in the range, row by row.
// cells that were evicted or emptied after the range was taken are
// yielded with a nil value.
func (r *CellRange) Iterate() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for row := r.bounds.StartRow; row <= r.bounds.EndRow; row++ {
			for col := r.bounds.StartColumn; col <= r.bounds.EndColumn; col++ {
				cell := Cell{
					Row:    row,
					Column: col,
					Value:  r.block.cells[CellAddress{Row: row, Column: col}],
				}
				if !yield(cell) {
					return
				}
			}
		}
	}
}

// IterateValues returns an iterator over cell values in the range
func (r *CellRange) IterateValues() iter.Seq[Primitive] {
	return func(yield func(Primitive) bool) {
		for cell := range r.Iterate() {
			if !yield(cell.Value) {
				return
			}
		}
	}
}
