package block

// Clone returns an independent copy of the block
func (b *Block) Clone() *Block {
	c := newUnchecked(b.rows, b.cols)
	for addr, v := range b.cells {
		c.cells[addr] = v
	}
	c.highestRow = b.highestRow
	c.highestCol = b.highestCol
	return c
}

// Reshape returns a copy with the given capacity. a zero argument keeps the
// current row or column capacity. cells that do not fit are not copied.
func (b *Block) Reshape(rows, cols int) (*Block, error) {
	if rows == 0 {
		rows = b.rows
	}
	if cols == 0 {
		cols = b.cols
	}
	c, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for addr, v := range b.cells {
		if addr.Row <= rows && addr.Column <= cols {
			c.cells[addr] = v
		}
	}
	return c, nil
}

// Minimized returns the smallest copy that still holds every stored cell.
// an empty block minimizes to 1x1.
func (b *Block) Minimized() *Block {
	// highest used bounds are always within capacity, so this cannot fail
	c, _ := b.Reshape(b.HighestUsedRow(), b.HighestUsedCol())
	return c
}

// Transposed returns a copy with rows and columns swapped
func (b *Block) Transposed() *Block {
	c := newUnchecked(b.cols, b.rows)
	for addr, v := range b.cells {
		c.cells[CellAddress{Row: addr.Column, Column: addr.Row}] = v
	}
	return c
}

// Value materializes the block as a dense rows x cols table. empty cells
// are nil.
func (b *Block) Value() [][]Primitive {
	out := make([][]Primitive, b.rows)
	for r := range out {
		out[r] = make([]Primitive, b.cols)
	}
	for addr, v := range b.cells {
		out[addr.Row-1][addr.Column-1] = v
	}
	return out
}
