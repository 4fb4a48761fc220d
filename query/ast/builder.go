package ast

import (
	"github.com/sysdb/sysdb/pkg/sysval"
	"github.com/sysdb/sysdb/store"
)

// The functions below are small factory helpers for constructing AST nodes
// programmatically — convenient for tests and library callers, favoring short top-level constructors over exposing struct literals
// everywhere.

// Lit wraps a constant value as an expression.
func Lit(v sysval.Value) Expr { return Const{Value: v} }

// F references a field on the current object.
func F(f Field) Expr { return FieldRef{Field: f} }

// Children switches into a typed child set of the current object.
func Children(kind store.Kind) Expr { return Typed{ChildKind: kind} }

// Cmp builds a Compare matcher.
func Cmp(op CompareOp, left, right Expr) Matcher { return Compare{Op: op, Left: left, Right: right} }

// AndOf combines matchers left-to-right with AND.
func AndOf(first Matcher, rest ...Matcher) Matcher {
	out := first
	for _, m := range rest {
		out = And{Left: out, Right: m}
	}
	return out
}

// OrOf combines matchers left-to-right with OR.
func OrOf(first Matcher, rest ...Matcher) Matcher {
	out := first
	for _, m := range rest {
		out = Or{Left: out, Right: m}
	}
	return out
}

// Negate wraps a matcher in NOT.
func Negate(m Matcher) Matcher { return Not{Inner: m} }

// Any builds an ANY iterator matcher over source.
func Any(source Expr, inner Matcher) Matcher {
	return Iterator{Mode: ANY, Source: source, Inner: inner}
}

// All builds an ALL iterator matcher over source.
func All(source Expr, inner Matcher) Matcher {
	return Iterator{Mode: ALL, Source: source, Inner: inner}
}

// IsNull builds an ISNULL unary matcher.
func IsNull(operand Expr) Matcher { return Unary{Op: ISNULL, Operand: operand} }
