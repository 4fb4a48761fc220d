package analyzer

import (
	"github.com/sysdb/sysdb/pkg/sysdberr"
	"github.com/sysdb/sysdb/pkg/sysval"
	"github.com/sysdb/sysdb/query/ast"
	"github.com/sysdb/sysdb/store"
)

// exprType is the result of analyzing an expression: its static tag
// (Dynamic when the tag can only be known at runtime, e.g. an attribute
// value) and whether the expression is a valid ANY/ALL iteration source.
type exprType struct {
	tag      sysval.Tag
	dynamic  bool
	iterable bool
}

// Expr type-checks e against ctx and returns its static type information,
// or a TypeError naming the offending field/kind.
func Expr(ctx Context, e ast.Expr) (exprType, error) {
	switch n := e.(type) {
	case ast.Const:
		return exprType{tag: n.Value.Tag()}, nil

	case ast.FieldRef:
		return analyzeField(ctx, n.Field)

	case ast.Typed:
		if n.Inner != nil {
			if _, err := Expr(ctx, n.Inner); err != nil {
				return exprType{}, err
			}
		}
		if !store.CanHaveChildren(ctx.ObjectKind, n.ChildKind) {
			return exprType{}, sysdberr.New(sysdberr.TypeError,
				"invalid expression "+n.ChildKind.String()+" in "+ctx.ObjectKind.String()+" context")
		}
		return exprType{tag: sysval.Null, iterable: true}, nil

	case ast.Binary:
		lt, err := Expr(ctx, n.Left)
		if err != nil {
			return exprType{}, err
		}
		rt, err := Expr(ctx, n.Right)
		if err != nil {
			return exprType{}, err
		}
		if lt.iterable || rt.iterable {
			return exprType{}, sysdberr.New(sysdberr.TypeError, "arithmetic operands must not be iterable")
		}
		if lt.tag == sysval.Array || rt.tag == sysval.Array {
			return exprType{}, sysdberr.New(sysdberr.TypeError, "arithmetic is not defined over ARRAY operands")
		}
		if lt.dynamic || rt.dynamic {
			return exprType{dynamic: true}, nil
		}
		resultTag, err := sysval.ExprType(n.Op, lt.tag, rt.tag)
		if err != nil {
			return exprType{}, sysdberr.Wrap(sysdberr.TypeError, "incompatible operand types for "+n.Op.String(), err)
		}
		return exprType{tag: resultTag}, nil

	case ast.Elem:
		if !ctx.HasElem {
			return exprType{}, sysdberr.New(sysdberr.TypeError, "element reference used outside a scalar iteration context")
		}
		return exprType{tag: ctx.ElemTag}, nil

	default:
		return exprType{}, sysdberr.New(sysdberr.Internal, "unknown expression node")
	}
}

func analyzeField(ctx Context, f ast.Field) (exprType, error) {
	switch f {
	case ast.FieldName:
		return exprType{tag: sysval.String}, nil
	case ast.FieldLastUpdate, ast.FieldAge, ast.FieldInterval:
		return exprType{tag: sysval.Datetime}, nil
	case ast.FieldBackend:
		return exprType{tag: sysval.Array, iterable: true}, nil
	case ast.FieldValue:
		if ctx.ObjectKind != store.KindAttribute {
			return exprType{}, sysdberr.New(sysdberr.TypeError,
				"invalid expression "+f.String()+" in "+ctx.ObjectKind.String()+" context")
		}
		return exprType{dynamic: true}, nil
	case ast.FieldTimeseries:
		if ctx.ObjectKind != store.KindMetric {
			return exprType{}, sysdberr.New(sysdberr.TypeError,
				"invalid expression "+f.String()+" in "+ctx.ObjectKind.String()+" context")
		}
		return exprType{tag: sysval.Integer}, nil
	default:
		return exprType{}, sysdberr.New(sysdberr.Internal, "unknown field")
	}
}
