package block

import (
	"math"
	"reflect"
	"strconv"
)

// Primitive represents a single cell value. any Go value can be stored,
// typical ones are:
//   - float64, int and the other numeric kinds
//   - string: text values
//   - bool: TRUE/FALSE
//   - nil: empty cells
//
// cells compare by exact value, so int(1) and float64(1) are different keys
// for lookups.
type Primitive any

// CellAddress is the 1-based coordinate of a cell within a block
type CellAddress struct {
	Row    int
	Column int
}

// IsEmpty reports whether value would be stored as an empty cell. nil, the
// empty string and NaN are empty; every other value, including 0 and false,
// is stored.
func IsEmpty(value Primitive) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	default:
		return false
	}
}

// equal compares two cell values without type coercion. values that
// cannot be compared with ==, such as slices, maps or structs holding them
// in interface fields, fall back to a deep comparison instead of panicking.
func equal(a, b Primitive) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	// interface fields can hide slices or maps inside a comparable type
	if !va.Comparable() || !vb.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

// toNumber converts value to number, returning ok=false if conversion fails
func toNumber(value Primitive) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		num, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return num, true
	case nil:
		return math.NaN(), true
	default:
		return 0, false
	}
}
