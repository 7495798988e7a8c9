package block

// lookupOptions holds the axis-neutral parameters of the lookup family.
// for row lookups (LookupRow, VLookup) from/to are rows and key/result
// are columns; column lookups swap the axes.
type lookupOptions struct {
	from       int
	to         int
	key        int
	result     int
	def        Primitive
	hasDefault bool
}

// LookupOption configures a lookup
type LookupOption func(*lookupOptions)

// WithRange limits the scan to the inclusive span from..to. the default is
// 1 to the highest used row (or column).
func WithRange(from, to int) LookupOption {
	return func(opts *lookupOptions) {
		opts.from = from
		opts.to = to
	}
}

// WithKey selects the column (or row, for column lookups) holding the
// search keys. defaults to 1.
func WithKey(n int) LookupOption {
	return func(opts *lookupOptions) {
		opts.key = n
	}
}

// WithResult selects the column (or row) whose value VLookup and HLookup
// return. defaults to the key plus one.
func WithResult(n int) LookupOption {
	return func(opts *lookupOptions) {
		opts.result = n
	}
}

// WithDefault makes a miss return v instead of ErrNotFound.
func WithDefault(v Primitive) LookupOption {
	return func(opts *lookupOptions) {
		opts.def = v
		opts.hasDefault = true
	}
}

func buildLookupOptions(highestUsed int, opts []LookupOption) *lookupOptions {
	options := &lookupOptions{from: 1, to: highestUsed, key: 1}
	for _, opt := range opts {
		opt(options)
	}
	if options.result == 0 {
		options.result = options.key + 1
	}
	return options
}

// axis describes one scan orientation so that rows and columns share a
// single search implementation
type axis struct {
	name      string
	scanLimit int // capacity along the scan direction
	keyLimit  int // capacity across it
	at        func(scan, key int) Primitive
}

func (b *Block) rowAxis() axis {
	return axis{
		name:      "row",
		scanLimit: b.rows,
		keyLimit:  b.cols,
		at: func(row, col int) Primitive {
			return b.cells[CellAddress{Row: row, Column: col}]
		},
	}
}

func (b *Block) columnAxis() axis {
	return axis{
		name:      "column",
		scanLimit: b.cols,
		keyLimit:  b.rows,
		at: func(col, row int) Primitive {
			return b.cells[CellAddress{Row: row, Column: col}]
		},
	}
}

func (a axis) validate(opts *lookupOptions, withResult bool) error {
	other := otherAxis(a.name)
	if opts.from < 1 || opts.from > a.scanLimit {
		return newError(InvalidRange, "%s_from %d outside 1..%d", a.name, opts.from, a.scanLimit)
	}
	if opts.to < 1 || opts.to > a.scanLimit {
		return newError(InvalidRange, "%s_to %d outside 1..%d", a.name, opts.to, a.scanLimit)
	}
	if opts.key < 1 || opts.key > a.keyLimit {
		return newError(InvalidRange, "key %s %d outside 1..%d", other, opts.key, a.keyLimit)
	}
	if withResult && (opts.result < 1 || opts.result > a.keyLimit) {
		return newError(InvalidRange, "result %s %d outside 1..%d", other, opts.result, a.keyLimit)
	}
	return nil
}

// find returns the first scan index whose key cell equals target
func (a axis) find(target Primitive, opts *lookupOptions) (int, bool) {
	for i := opts.from; i <= opts.to; i++ {
		if equal(a.at(i, opts.key), target) {
			return i, true
		}
	}
	return 0, false
}

func (a axis) index(target Primitive, opts *lookupOptions) (int, error) {
	if err := a.validate(opts, false); err != nil {
		return 0, err
	}
	if i, ok := a.find(target, opts); ok {
		return i, nil
	}
	if opts.hasDefault {
		return 0, nil
	}
	return 0, newError(NotFound, "%v not found in %s %d", target, otherAxis(a.name), opts.key)
}

func (a axis) project(target Primitive, opts *lookupOptions) (Primitive, error) {
	if err := a.validate(opts, true); err != nil {
		return nil, err
	}
	i, ok := a.find(target, opts)
	if !ok {
		if opts.hasDefault {
			return opts.def, nil
		}
		return nil, newError(NotFound, "%v not found in %s %d", target, otherAxis(a.name), opts.key)
	}
	return a.at(i, opts.result), nil
}

func otherAxis(name string) string {
	if name == "row" {
		return "column"
	}
	return "row"
}

// LookupRow returns the first row in the scan range whose key column equals
// target, or 0 (never a valid row) on a miss when WithDefault was given.
// the default value itself is ignored; 0 with a nil error is the only
// defaulted-miss result, otherwise a miss is ErrNotFound.
func (b *Block) LookupRow(target Primitive, opts ...LookupOption) (int, error) {
	return b.rowAxis().index(target, buildLookupOptions(b.HighestUsedRow(), opts))
}

// LookupColumn returns the first column in the scan range whose key row
// equals target, or 0 (never a valid column) on a miss when WithDefault was
// given. see LookupRow.
func (b *Block) LookupColumn(target Primitive, opts ...LookupOption) (int, error) {
	return b.columnAxis().index(target, buildLookupOptions(b.HighestUsedCol(), opts))
}

// VLookup finds target in the key column and returns the value of the
// result column on the same row, like the spreadsheet VLOOKUP with an
// exact match.
func (b *Block) VLookup(target Primitive, opts ...LookupOption) (Primitive, error) {
	return b.rowAxis().project(target, buildLookupOptions(b.HighestUsedRow(), opts))
}

// HLookup finds target in the key row and returns the value of the result
// row in the same column.
func (b *Block) HLookup(target Primitive, opts ...LookupOption) (Primitive, error) {
	return b.columnAxis().project(target, buildLookupOptions(b.HighestUsedCol(), opts))
}

// Lookup is VLookup
func (b *Block) Lookup(target Primitive, opts ...LookupOption) (Primitive, error) {
	return b.VLookup(target, opts...)
}
