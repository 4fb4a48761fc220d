package sysval

import "fmt"

// Tag identifies which payload of a Value is valid. The zero value is Null
// so a zero Value is always well-formed.
type Tag uint8

const (
	Null Tag = iota
	Integer
	Decimal
	String
	Datetime
	Binary
	Regex
	Array
)

// String implements fmt.Stringer.
func (t Tag) String() string {
	switch t {
	case Null:
		return "NULL"
	case Integer:
		return "INTEGER"
	case Decimal:
		return "DECIMAL"
	case String:
		return "STRING"
	case Datetime:
		return "DATETIME"
	case Binary:
		return "BINARY"
	case Regex:
		return "REGEX"
	case Array:
		return "ARRAY"
	default:
		return fmt.Sprintf("UNKNOWN_TAG_%d", uint8(t))
	}
}

// IsScalar reports whether t can be an ARRAY element type.
func (t Tag) IsScalar() bool {
	switch t {
	case Integer, Decimal, String, Datetime, Binary:
		return true
	default:
		return false
	}
}

// FormatStyle selects how Format renders a Value's textual representation.
type FormatStyle uint8

const (
	Unquoted FormatStyle = iota
	SingleQuoted
	DoubleQuoted
)

// ArithOp is a binary arithmetic operator dispatched by ExprEval/ExprType.
type ArithOp uint8

const (
	Add ArithOp = iota
	Sub
	Mul
	Div
)

func (op ArithOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "?"
	}
}
