package analyzer

import (
	"fmt"

	"github.com/sysdb/sysdb/pkg/sysdberr"
	"github.com/sysdb/sysdb/pkg/sysval"
	"github.com/sysdb/sysdb/query/ast"
)

// Matcher type-checks m against ctx, returning a TypeError naming the
// offending node on failure.
func Matcher(ctx Context, m ast.Matcher) error {
	switch n := m.(type) {
	case ast.And:
		if err := Matcher(ctx, n.Left); err != nil {
			return err
		}
		return Matcher(ctx, n.Right)

	case ast.Or:
		if err := Matcher(ctx, n.Left); err != nil {
			return err
		}
		return Matcher(ctx, n.Right)

	case ast.Not:
		return Matcher(ctx, n.Inner)

	case ast.Compare:
		return analyzeCompare(ctx, n)

	case ast.Unary:
		return analyzeUnary(ctx, n)

	case ast.Iterator:
		return analyzeIterator(ctx, n)

	default:
		return sysdberr.New(sysdberr.Internal, "unknown matcher node")
	}
}

func analyzeCompare(ctx Context, n ast.Compare) error {
	lt, err := Expr(ctx, n.Left)
	if err != nil {
		return err
	}
	rt, err := Expr(ctx, n.Right)
	if err != nil {
		return err
	}
	if lt.iterable || rt.iterable {
		return sysdberr.New(sysdberr.TypeError, "comparison operands must not be iterable")
	}

	switch n.Op {
	case ast.IN:
		if lt.tag == sysval.Array {
			return sysdberr.New(sysdberr.TypeError, "IN requires a non-ARRAY left-hand side")
		}
		if !rt.dynamic && rt.tag != sysval.Array {
			return sysdberr.New(sysdberr.TypeError, "IN requires an ARRAY right-hand side")
		}
		return nil
	case ast.REGEXMatch, ast.NREGEXMatch:
		if !rt.dynamic && rt.tag != sysval.Regex && rt.tag != sysval.String {
			return sysdberr.New(sysdberr.TypeError, "REGEX requires a REGEX or STRING right-hand side")
		}
		return nil
	}

	if lt.tag == sysval.Array || rt.tag == sysval.Array {
		return sysdberr.New(sysdberr.TypeError, "comparison is not defined over ARRAY operands")
	}
	if lt.dynamic || rt.dynamic {
		return nil
	}
	if lt.tag == rt.tag {
		return nil
	}
	if isNumeric(lt.tag) && isNumeric(rt.tag) {
		return nil
	}
	return sysdberr.New(sysdberr.TypeError, "incompatible operand types for "+n.Op.String()+": "+lt.tag.String()+" vs "+rt.tag.String())
}

func isNumeric(t sysval.Tag) bool {
	return t == sysval.Integer || t == sysval.Decimal
}

func analyzeUnary(ctx Context, n ast.Unary) error {
	ot, err := Expr(ctx, n.Operand)
	if err != nil {
		return err
	}
	if ot.iterable {
		return sysdberr.New(sysdberr.TypeError, "unary operand must not be iterable")
	}
	switch n.Op {
	case ast.ISTRUE, ast.ISFALSE:
		if !ot.dynamic && ot.tag != sysval.Integer {
			return sysdberr.New(sysdberr.TypeError, n.Op.String()+" requires an INTEGER operand")
		}
	}
	return nil
}

func analyzeIterator(ctx Context, n ast.Iterator) error {
	if ctx.InsideIterator {
		return sysdberr.New(sysdberr.TypeError, "nested ANY/ALL iterators are not permitted")
	}
	st, err := Expr(ctx, n.Source)
	if err != nil {
		return err
	}
	if !st.iterable {
		return sysdberr.New(sysdberr.TypeError, "ANY/ALL source "+describeSource(n.Source)+" is not iterable")
	}

	switch src := n.Source.(type) {
	case ast.Typed:
		return Matcher(ctx.childObjectContext(src.ChildKind), n.Inner)
	case ast.FieldRef:
		if src.Field == ast.FieldBackend {
			return Matcher(ctx.elemContext(sysval.String), n.Inner)
		}
	}
	return sysdberr.New(sysdberr.TypeError, "unsupported ANY/ALL iteration source "+describeSource(n.Source))
}

// describeSource names an iterator source expression for error messages:
// the child kind for a Typed source, the field name for a FieldRef, or the
// node's own type name otherwise.
func describeSource(e ast.Expr) string {
	switch src := e.(type) {
	case ast.Typed:
		return src.ChildKind.String()
	case ast.FieldRef:
		return src.Field.String()
	default:
		return fmt.Sprintf("%T", e)
	}
}
