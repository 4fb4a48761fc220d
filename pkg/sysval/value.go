package sysval

import (
	"regexp"
)

// arrayVal is the payload of an ARRAY(T) value: a fixed scalar element tag
// plus an owned buffer of scalar Values of that tag. Nested arrays are
// disallowed by construction (NewArray rejects an Array element tag).
type arrayVal struct {
	elemTag Tag
	elems   []Value
}

// regexVal is the payload of a REGEX value. The compiled pattern is the
// Value's owned state; Copy reuses the already-compiled *regexp.Regexp
// since compiled regex state is immutable once built.
type regexVal struct {
	src     string
	compile func() (*regexp.Regexp, error)
	re      *regexp.Regexp
	reErr   error
}

// Value is a tagged sum over {NULL, INTEGER, DECIMAL, STRING, DATETIME,
// BINARY, REGEX, ARRAY(T)}. The zero Value is NULL. Values are treated as
// immutable by every exported method; Copy gives callers an independent
// deep copy of any owned buffers.
type Value struct {
	tag Tag
	i   int64   // Integer payload
	u   uint64  // Datetime payload: ns since epoch
	f   float64 // Decimal payload
	s   string  // String payload
	bin []byte  // Binary payload
	re  *regexVal
	arr *arrayVal
}

// Tag returns the value's type tag.
func (v Value) Tag() Tag { return v.tag }

// IsNull reports whether v is NULL.
func (v Value) IsNull() bool { return v.tag == Null }

// NewNull returns the NULL value.
func NewNull() Value { return Value{tag: Null} }

// NewInt returns an INTEGER value.
func NewInt(i int64) Value { return Value{tag: Integer, i: i} }

// NewDecimal returns a DECIMAL value.
func NewDecimal(f float64) Value { return Value{tag: Decimal, f: f} }

// NewString returns a STRING value. The string is copied by value since Go
// strings are already immutable and share-safe.
func NewString(s string) Value { return Value{tag: String, s: s} }

// NewDatetime returns a DATETIME value: ns since epoch.
func NewDatetime(ns uint64) Value { return Value{tag: Datetime, u: ns} }

// NewBinary returns a BINARY value, deep-copying the supplied bytes so the
// caller's buffer may be reused or mutated afterwards.
func NewBinary(b []byte) Value {
	owned := make([]byte, len(b))
	copy(owned, b)
	return Value{tag: Binary, bin: owned}
}

// NewRegex compiles src and returns a REGEX value wrapping it. Compilation
// happens eagerly here; a STRING right-hand side of a REGEX matcher is
// instead compiled lazily by the query executor's per-query cache.
func NewRegex(src string) (Value, error) {
	re, err := regexp.Compile(src)
	if err != nil {
		return Value{}, &Error{Kind: ErrKindResource, Msg: "compiling regex " + src, Err: err}
	}
	return Value{tag: Regex, re: &regexVal{src: src, re: re}}, nil
}

// NewArray returns an ARRAY(elemTag) value over elems, which must each carry
// tag elemTag. elemTag must be scalar; arrays of arrays are rejected.
func NewArray(elemTag Tag, elems []Value) (Value, error) {
	if !elemTag.IsScalar() {
		return Value{}, &Error{Kind: ErrKindIncompatible, Msg: "array element type must be scalar, got " + elemTag.String()}
	}
	owned := make([]Value, len(elems))
	for i, e := range elems {
		if e.tag != elemTag {
			return Value{}, &Error{Kind: ErrKindIncompatible, Msg: "array element " + e.tag.String() + " does not match declared element type " + elemTag.String()}
		}
		owned[i] = e.Copy()
	}
	return Value{tag: Array, arr: &arrayVal{elemTag: elemTag, elems: owned}}, nil
}

// Int returns the INTEGER payload and whether v is tagged INTEGER.
func (v Value) Int() (int64, bool) {
	if v.tag != Integer {
		return 0, false
	}
	return v.i, true
}

// DecimalValue returns the DECIMAL payload and whether v is tagged DECIMAL.
func (v Value) DecimalValue() (float64, bool) {
	if v.tag != Decimal {
		return 0, false
	}
	return v.f, true
}

// Str returns the STRING payload and whether v is tagged STRING.
func (v Value) Str() (string, bool) {
	if v.tag != String {
		return "", false
	}
	return v.s, true
}

// DatetimeNS returns the DATETIME payload (ns since epoch) and whether v is
// tagged DATETIME.
func (v Value) DatetimeNS() (uint64, bool) {
	if v.tag != Datetime {
		return 0, false
	}
	return v.u, true
}

// Bytes returns the BINARY payload and whether v is tagged BINARY. The
// returned slice aliases v's owned buffer; callers must not mutate it.
func (v Value) Bytes() ([]byte, bool) {
	if v.tag != Binary {
		return nil, false
	}
	return v.bin, true
}

// CompiledRegex returns the compiled pattern and whether v is tagged REGEX.
func (v Value) CompiledRegex() (*regexp.Regexp, bool) {
	if v.tag != Regex || v.re == nil {
		return nil, false
	}
	return v.re.re, true
}

// RegexSource returns the original pattern source and whether v is tagged
// REGEX.
func (v Value) RegexSource() (string, bool) {
	if v.tag != Regex || v.re == nil {
		return "", false
	}
	return v.re.src, true
}

// ArrayElemTag returns the scalar element tag of an ARRAY value, and whether
// v is tagged ARRAY.
func (v Value) ArrayElemTag() (Tag, bool) {
	if v.tag != Array || v.arr == nil {
		return Null, false
	}
	return v.arr.elemTag, true
}

// ArrayElems returns the elements of an ARRAY value, and whether v is tagged
// ARRAY. The returned slice aliases v's owned buffer; callers must not
// mutate it.
func (v Value) ArrayElems() ([]Value, bool) {
	if v.tag != Array || v.arr == nil {
		return nil, false
	}
	return v.arr.elems, true
}

// Copy returns a deep, independent copy of v. Copy never fails for Values
// constructed through this package's constructors (OutOfMemory is only
// reachable via the Go runtime's own allocator, which panics rather than
// returning an error).
func (v Value) Copy() Value {
	switch v.tag {
	case Binary:
		return NewBinary(v.bin)
	case Array:
		elems := make([]Value, len(v.arr.elems))
		for i, e := range v.arr.elems {
			elems[i] = e.Copy()
		}
		return Value{tag: Array, arr: &arrayVal{elemTag: v.arr.elemTag, elems: elems}}
	case Regex:
		// Compiled regex state is immutable once built; sharing it across
		// copies is safe and avoids a redundant recompile.
		return Value{tag: Regex, re: v.re}
	default:
		return v
	}
}
