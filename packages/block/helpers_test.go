package block

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// BlockTestCase chains mutations and assertions against one block. the
// first failing step stops the rest of the chain.
type BlockTestCase struct {
	t     *testing.T
	name  string
	block *Block
	err   error
}

func NewBlockTestCase(t *testing.T, name string, rows, cols int) *BlockTestCase {
	t.Helper()
	b, err := New(rows, cols)
	require.NoError(t, err, name)
	return &BlockTestCase{t: t, name: name, block: b}
}

func NewBlockTestCaseFrom(t *testing.T, name string, value any, opts ...Option) *BlockTestCase {
	t.Helper()
	b, err := FromValue(value, opts...)
	require.NoError(t, err, name)
	return &BlockTestCase{t: t, name: name, block: b}
}

func (tc *BlockTestCase) Set(row, col int, value Primitive) *BlockTestCase {
	tc.t.Helper()
	if tc.err != nil {
		return tc
	}
	tc.err = tc.block.Set(row, col, value)
	if tc.err != nil {
		tc.t.Errorf("%s: Set(%d, %d) failed: %v", tc.name, row, col, tc.err)
	}
	return tc
}

func (tc *BlockTestCase) SetRows(n int) *BlockTestCase {
	tc.t.Helper()
	if tc.err != nil {
		return tc
	}
	tc.err = tc.block.SetRows(n)
	if tc.err != nil {
		tc.t.Errorf("%s: SetRows(%d) failed: %v", tc.name, n, tc.err)
	}
	return tc
}

func (tc *BlockTestCase) SetCols(n int) *BlockTestCase {
	tc.t.Helper()
	if tc.err != nil {
		return tc
	}
	tc.err = tc.block.SetCols(n)
	if tc.err != nil {
		tc.t.Errorf("%s: SetCols(%d) failed: %v", tc.name, n, tc.err)
	}
	return tc
}

func (tc *BlockTestCase) AssertCellEq(row, col int, expected Primitive) *BlockTestCase {
	tc.t.Helper()
	if tc.err != nil {
		return tc
	}
	actual, err := tc.block.Get(row, col)
	if err != nil {
		tc.t.Errorf("%s: Get(%d, %d) failed: %v", tc.name, row, col, err)
		return tc
	}
	if !equal(actual, expected) {
		tc.t.Errorf("%s: cell (%d, %d) = %v (%T), want %v (%T)", tc.name, row, col, actual, actual, expected, expected)
	}
	return tc
}

func (tc *BlockTestCase) AssertValue(expected [][]Primitive) *BlockTestCase {
	tc.t.Helper()
	if tc.err != nil {
		return tc
	}
	if diff := cmp.Diff(expected, tc.block.Value()); diff != "" {
		tc.t.Errorf("%s: value mismatch (-want +got):\n%s", tc.name, diff)
	}
	return tc
}

func (tc *BlockTestCase) AssertMinimized(expected [][]Primitive) *BlockTestCase {
	tc.t.Helper()
	if tc.err != nil {
		return tc
	}
	if diff := cmp.Diff(expected, tc.block.Minimized().Value()); diff != "" {
		tc.t.Errorf("%s: minimized value mismatch (-want +got):\n%s", tc.name, diff)
	}
	return tc
}

func (tc *BlockTestCase) AssertShape(rows, cols int) *BlockTestCase {
	tc.t.Helper()
	if tc.err != nil {
		return tc
	}
	if tc.block.Rows() != rows || tc.block.Cols() != cols {
		tc.t.Errorf("%s: shape = %dx%d, want %dx%d", tc.name, tc.block.Rows(), tc.block.Cols(), rows, cols)
	}
	return tc
}

func (tc *BlockTestCase) AssertHighestUsed(row, col int) *BlockTestCase {
	tc.t.Helper()
	if tc.err != nil {
		return tc
	}
	if got := tc.block.HighestUsedRow(); got != row {
		tc.t.Errorf("%s: HighestUsedRow() = %d, want %d", tc.name, got, row)
	}
	if got := tc.block.HighestUsedCol(); got != col {
		tc.t.Errorf("%s: HighestUsedCol() = %d, want %d", tc.name, got, col)
	}
	return tc
}

// row builds a dense row literal
func row(values ...Primitive) []Primitive {
	return values
}
