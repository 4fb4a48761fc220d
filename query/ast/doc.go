// Package ast defines the already-parsed query AST that the analyzer
// (query/analyzer) validates and the executor (query/exec) runs: expression
// trees, matcher trees, and the three top-level request shapes
// FETCH/LIST/LOOKUP plus the STORE and TIMESERIES statements that delegate
// to the writer API and an out-of-scope time-series backend respectively.
//
// Producing this tree from surface syntax is out of scope for this
// package; a frontend parser builds these nodes directly, or callers
// construct them programmatically through the Builder-style helpers in
// builder.go.
package ast
