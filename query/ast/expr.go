package ast

import (
	"github.com/sysdb/sysdb/pkg/sysval"
	"github.com/sysdb/sysdb/store"
)

// Field names a readable property of the object an expression is evaluated
// against.
type Field uint8

const (
	FieldName Field = iota
	FieldLastUpdate
	FieldAge
	FieldInterval
	FieldBackend
	FieldValue
	FieldTimeseries
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldLastUpdate:
		return "last_update"
	case FieldAge:
		return "age"
	case FieldInterval:
		return "interval"
	case FieldBackend:
		return "backends"
	case FieldValue:
		return "value"
	case FieldTimeseries:
		return "timeseries"
	default:
		return "unknown_field"
	}
}

// Expr is implemented by every expression-tree node kind: Const, FieldRef,
// Typed, and Binary. It is a closed set — the analyzer's exhaustive type
// switches depend on no other implementations existing outside this
// package.
type Expr interface {
	exprNode()
}

// Const evaluates to itself.
type Const struct {
	Value sysval.Value
}

func (Const) exprNode() {}

// FieldRef evaluates a Field against the current object.
type FieldRef struct {
	Field Field
}

func (FieldRef) exprNode() {}

// Typed switches evaluation context into the named child set of the
// current object, turning the node into an iterator source for ANY/ALL
// matchers (e.g. `attribute` inside a host-context query). A non-nil Inner
// is type-checked by the analyzer but not evaluated: the executor always
// iterates the current object's children, never those of Inner's result.
type Typed struct {
	ChildKind store.Kind
	Inner     Expr
}

func (Typed) exprNode() {}

// Binary applies an arithmetic operator to two expressions, dispatching to
// sysval.ExprEval.
type Binary struct {
	Op    sysval.ArithOp
	Left  Expr
	Right Expr
}

func (Binary) exprNode() {}

// Elem evaluates to the current iteration element when used inside an
// Iterator matcher whose Source yields scalar values (e.g. FieldBackend)
// rather than a typed child-object set. Using Elem outside such a context
// is a static error caught by the analyzer.
type Elem struct{}

func (Elem) exprNode() {}
