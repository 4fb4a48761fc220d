// Package sysval implements the tagged value union shared by every object
// stored in the SysDB tree and by the expression/matcher engine that queries
// it.
//
// A Value is one of: NULL, INTEGER, DECIMAL, STRING, DATETIME, BINARY, REGEX,
// or ARRAY of one of the preceding scalar kinds. Values are immutable once
// constructed; Copy always produces an independent deep copy so callers never
// need to reason about aliasing between a stored attribute and a value handed
// to a caller.
package sysval
