// Package block implements a sparse, 1-indexed, resizable 2-D grid for
// spreadsheet-like rectangular data.
//
// architecture:
// - only non-empty cells are stored, keyed by CellAddress
// - the declared capacity (rows x cols) defines the valid index range and
// may be shrunk or grown at any time; shrinking evicts cells immediately
// - the highest used row/column are cached lazily. writes can only raise
// the cache, deletions and capacity changes invalidate it
//
// a Block is a plain value object and is not safe for concurrent mutation.
package block

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Block is a sparse grid of cells with a declared row and column capacity
type Block struct {
	cells      map[CellAddress]Primitive // non-empty cells only
	rows       int                       // declared row capacity, >= 1
	cols       int                       // declared column capacity, >= 1
	highestRow int                       // cached highest used row, 0 = unset
	highestCol int                       // cached highest used column, 0 = unset
}

// New creates an empty block with the given capacity
func New(rows, cols int) (*Block, error) {
	if rows < 1 {
		return nil, newError(InvalidDimension, "number of rows must be >= 1, got %d", rows)
	}
	if cols < 1 {
		return nil, newError(InvalidDimension, "number of columns must be >= 1, got %d", cols)
	}
	return &Block{
		cells: make(map[CellAddress]Primitive),
		rows:  rows,
		cols:  cols,
	}, nil
}

// newUnchecked is used by derived views whose dimensions are known valid
func newUnchecked(rows, cols int) *Block {
	return &Block{
		cells: make(map[CellAddress]Primitive),
		rows:  rows,
		cols:  cols,
	}
}

type fromValueOptions struct {
	columnLike bool
	rows       *int
	cols       *int
}

// Option configures FromValue
type Option func(*fromValueOptions)

// ColumnLike turns a flat sequence into a single column instead of a
// single row.
func ColumnLike() Option {
	return func(opts *fromValueOptions) {
		opts.columnLike = true
	}
}

// WithRows overrides the row capacity derived from the value.
func WithRows(n int) Option {
	return func(opts *fromValueOptions) {
		opts.rows = &n
	}
}

// WithCols overrides the column capacity derived from the value.
func WithCols(n int) Option {
	return func(opts *fromValueOptions) {
		opts.cols = &n
	}
}

// FromValue builds a block shaped after value:
//   - *Block: an independent copy, or an empty 1x1 block for a nil pointer
//   - a scalar: a 1x1 block (empty if the scalar is empty)
//   - a flat slice or array: one row, or one column with ColumnLike
//   - a slice of slices: one row per inner slice; the column capacity is
//     the widest row, counting cells that were filtered out as empty
//
// strings and []byte are scalars. WithRows and WithCols resize the result
// after the scan.
func FromValue(value any, opts ...Option) (*Block, error) {
	options := &fromValueOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.rows != nil && *options.rows < 1 {
		return nil, newError(InvalidDimension, "number of rows must be >= 1, got %d", *options.rows)
	}
	if options.cols != nil && *options.cols < 1 {
		return nil, newError(InvalidDimension, "number of columns must be >= 1, got %d", *options.cols)
	}

	var b *Block
	switch src, ok := value.(*Block); {
	case ok && src == nil:
		b = newUnchecked(1, 1)
	case ok:
		b = src.Clone()
	default:
		b = fromRows(toRows(value, options.columnLike))
	}

	if options.rows != nil {
		b.resizeRows(*options.rows)
	}
	if options.cols != nil {
		b.resizeCols(*options.cols)
	}
	return b, nil
}

// toRows normalizes value into a list of rows
func toRows(value any, columnLike bool) [][]Primitive {
	if !isSequence(value) {
		return [][]Primitive{{value}}
	}

	rv := reflect.ValueOf(value)
	if rv.Len() == 0 {
		return nil
	}

	if !isSequence(rv.Index(0).Interface()) {
		items := sequenceItems(rv)
		if columnLike {
			column := make([][]Primitive, len(items))
			for i, item := range items {
				column[i] = []Primitive{item}
			}
			return column
		}
		return [][]Primitive{items}
	}

	rows := make([][]Primitive, rv.Len())
	for i := range rows {
		item := rv.Index(i).Interface()
		if isSequence(item) {
			rows[i] = sequenceItems(reflect.ValueOf(item))
		} else {
			rows[i] = []Primitive{item}
		}
	}
	return rows
}

// fromRows stores rows into a block sized to fit them
func fromRows(rows [][]Primitive) *Block {
	width := 1
	for _, row := range rows {
		width = max(width, len(row))
	}
	b := newUnchecked(max(len(rows), 1), width)
	for r, row := range rows {
		for c, v := range row {
			if !IsEmpty(v) {
				b.cells[CellAddress{Row: r + 1, Column: c + 1}] = v
			}
		}
	}
	return b
}

func isSequence(value any) bool {
	if value == nil {
		return false
	}
	if _, ok := value.([]byte); ok {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

func sequenceItems(rv reflect.Value) []Primitive {
	items := make([]Primitive, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items
}

// Rows returns the declared row capacity
func (b *Block) Rows() int {
	return b.rows
}

// Cols returns the declared column capacity
func (b *Block) Cols() int {
	return b.cols
}

// SetRows changes the row capacity. cells beyond the new capacity are
// dropped.
func (b *Block) SetRows(n int) error {
	if n < 1 {
		return newError(InvalidDimension, "number of rows must be >= 1, got %d", n)
	}
	b.resizeRows(n)
	return nil
}

// resizeRows sets a row capacity already known to be >= 1
func (b *Block) resizeRows(n int) {
	b.rows = n
	b.invalidate()
	for addr := range b.cells {
		if addr.Row > n {
			delete(b.cells, addr)
		}
	}
}

// SetCols changes the column capacity. cells beyond the new capacity are
// dropped.
func (b *Block) SetCols(n int) error {
	if n < 1 {
		return newError(InvalidDimension, "number of columns must be >= 1, got %d", n)
	}
	b.resizeCols(n)
	return nil
}

// resizeCols sets a column capacity already known to be >= 1
func (b *Block) resizeCols(n int) {
	b.cols = n
	b.invalidate()
	for addr := range b.cells {
		if addr.Column > n {
			delete(b.cells, addr)
		}
	}
}

func (b *Block) checkIndex(row, col int) error {
	if row < 1 || row > b.rows {
		return newError(IndexOutOfRange, "row %d out of range 1..%d", row, b.rows)
	}
	if col < 1 || col > b.cols {
		return newError(IndexOutOfRange, "column %d out of range 1..%d", col, b.cols)
	}
	return nil
}

// Get returns the value at (row, col), or nil for an empty cell
func (b *Block) Get(row, col int) (Primitive, error) {
	if err := b.checkIndex(row, col); err != nil {
		return nil, err
	}
	return b.cells[CellAddress{Row: row, Column: col}], nil
}

// Set stores value at (row, col). an empty value deletes the cell.
func (b *Block) Set(row, col int, value Primitive) error {
	if err := b.checkIndex(row, col); err != nil {
		return err
	}
	addr := CellAddress{Row: row, Column: col}
	if IsEmpty(value) {
		delete(b.cells, addr)
		b.invalidate()
		return nil
	}

	b.cells[addr] = value
	// only raise caches that are already computed
	if b.highestRow != 0 {
		b.highestRow = max(b.highestRow, row)
	}
	if b.highestCol != 0 {
		b.highestCol = max(b.highestCol, col)
	}
	return nil
}

// Delete empties the cell at (row, col)
func (b *Block) Delete(row, col int) error {
	return b.Set(row, col, nil)
}

func (b *Block) invalidate() {
	b.highestRow = 0
	b.highestCol = 0
}

// HighestUsedRow returns the largest row holding a value, or 1 for an empty
// block.
func (b *Block) HighestUsedRow() int {
	if b.highestRow == 0 {
		b.highestRow = 1
		for addr := range b.cells {
			b.highestRow = max(b.highestRow, addr.Row)
		}
	}
	return b.highestRow
}

// HighestUsedCol returns the largest column holding a value, or 1 for an
// empty block.
func (b *Block) HighestUsedCol() int {
	if b.highestCol == 0 {
		b.highestCol = 1
		for addr := range b.cells {
			b.highestCol = max(b.highestCol, addr.Column)
		}
	}
	return b.highestCol
}

// Len returns the number of non-empty cells
func (b *Block) Len() int {
	return len(b.cells)
}

// All iterates over the non-empty cells in row-major order
func (b *Block) All() iter.Seq2[CellAddress, Primitive] {
	return func(yield func(CellAddress, Primitive) bool) {
		addrs := make([]CellAddress, 0, len(b.cells))
		for addr := range b.cells {
			addrs = append(addrs, addr)
		}
		slices.SortFunc(addrs, func(a, c CellAddress) int {
			if a.Row != c.Row {
				return a.Row - c.Row
			}
			return a.Column - c.Column
		})
		for _, addr := range addrs {
			if !yield(addr, b.cells[addr]) {
				return
			}
		}
	}
}

func (b *Block) String() string {
	return fmt.Sprintf("block.FromValue(%v)", b.Value())
}
