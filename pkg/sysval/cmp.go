package sysval

import (
	"bytes"
	"math"
	"strings"

	"golang.org/x/text/cases"
)

var nameFolder = cases.Fold()

// Ordering is the result of Cmp: Less, Equal, Greater, or Indeterminate.
type Ordering int8

const (
	Less          Ordering = -1
	Equal         Ordering = 0
	Greater       Ordering = 1
	Indeterminate Ordering = 2
)

// Cmp produces a total order within a type. NULL, cross-type pairs (other
// than the INTEGER/DECIMAL numeric promotion), REGEX, and ARRAY all compare
// as Indeterminate; NaN is never equal (or ordered) with anything, including
// itself. STRING comparison here is exact/case-sensitive — case-insensitive
// comparison in name contexts is the matcher's concern, not Cmp's.
func Cmp(a, b Value) Ordering {
	if a.tag == Null || b.tag == Null {
		return Indeterminate
	}

	if a.tag == b.tag {
		switch a.tag {
		case Integer:
			return cmpInt64(a.i, b.i)
		case Decimal:
			return cmpFloat64(a.f, b.f)
		case String:
			return cmpInt(strings.Compare(a.s, b.s))
		case Datetime:
			return cmpUint64(a.u, b.u)
		case Binary:
			return cmpInt(bytes.Compare(a.bin, b.bin))
		case Regex, Array:
			return Indeterminate
		default:
			return Indeterminate
		}
	}

	// Numeric promotion: INTEGER and DECIMAL compare by value.
	if a.tag == Integer && b.tag == Decimal {
		return cmpFloat64(float64(a.i), b.f)
	}
	if a.tag == Decimal && b.tag == Integer {
		return cmpFloat64(a.f, float64(b.i))
	}

	return Indeterminate
}

func cmpInt(n int) Ordering {
	switch {
	case n < 0:
		return Less
	case n > 0:
		return Greater
	default:
		return Equal
	}
}

func cmpInt64(a, b int64) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

func cmpUint64(a, b uint64) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

func cmpFloat64(a, b float64) Ordering {
	if math.IsNaN(a) || math.IsNaN(b) {
		return Indeterminate
	}
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// EqualFold orders a and b under Unicode case folding when both are STRING,
// the comparison the matcher applies in a name context (host/service/
// metric/attribute name, backend identifier). Non-STRING operands fall back
// to Cmp.
func EqualFold(a, b Value) Ordering {
	if a.tag == String && b.tag == String {
		return cmpInt(strings.Compare(nameFolder.String(a.s), nameFolder.String(b.s)))
	}
	return Cmp(a, b)
}
