package exec

import (
	"github.com/sysdb/sysdb/pkg/sysdberr"
	"github.com/sysdb/sysdb/pkg/sysval"
	"github.com/sysdb/sysdb/query/ast"
	"github.com/sysdb/sysdb/store"
)

// evalCtx is the per-evaluation runtime state threaded through expression
// and matcher evaluation: the object currently in scope, the wall-clock
// reading used for every Age computed during this scan, the regex cache for
// this query, and the scalar "current element" available inside a
// backends() iteration.
type evalCtx struct {
	obj     store.Entity
	nowNS   uint64
	regexes *regexCache
	hasElem bool
	elem    sysval.Value
}

func newEvalCtx(obj store.Entity, nowNS uint64, regexes *regexCache) evalCtx {
	return evalCtx{obj: obj, nowNS: nowNS, regexes: regexes}
}

func (c evalCtx) withObj(obj store.Entity) evalCtx {
	n := c
	n.obj = obj
	n.hasElem = false
	n.elem = sysval.Value{}
	return n
}

func (c evalCtx) withElem(v sysval.Value) evalCtx {
	n := c
	n.hasElem = true
	n.elem = v
	return n
}

// evalExpr evaluates a scalar expression against c. A Typed node can never
// reach here: the analyzer guarantees it appears only as an Iterator's
// Source, which evalIterable handles directly.
func evalExpr(c evalCtx, e ast.Expr) (sysval.Value, error) {
	switch n := e.(type) {
	case ast.Const:
		return n.Value, nil

	case ast.FieldRef:
		return evalField(c, n.Field)

	case ast.Binary:
		l, err := evalExpr(c, n.Left)
		if err != nil {
			return sysval.Value{}, err
		}
		r, err := evalExpr(c, n.Right)
		if err != nil {
			return sysval.Value{}, err
		}
		return sysval.ExprEval(n.Op, l, r)

	case ast.Elem:
		if !c.hasElem {
			return sysval.Value{}, sysdberr.New(sysdberr.Internal, "element reference used outside scalar iteration")
		}
		return c.elem, nil

	default:
		return sysval.Value{}, sysdberr.New(sysdberr.Internal, "expression node not valid in scalar context")
	}
}

func evalField(c evalCtx, f ast.Field) (sysval.Value, error) {
	switch f {
	case ast.FieldName:
		return sysval.NewString(c.obj.Name()), nil
	case ast.FieldLastUpdate:
		return sysval.NewDatetime(c.obj.LastUpdate()), nil
	case ast.FieldAge:
		return sysval.NewDatetime(uint64(c.obj.Age(c.nowNS))), nil
	case ast.FieldInterval:
		return sysval.NewDatetime(c.obj.Interval()), nil
	case ast.FieldBackend:
		backends := c.obj.Backends()
		elems := make([]sysval.Value, len(backends))
		for i, b := range backends {
			elems[i] = sysval.NewString(b)
		}
		return sysval.NewArray(sysval.String, elems)
	case ast.FieldValue:
		attr, ok := c.obj.(*store.Attribute)
		if !ok {
			return sysval.NewNull(), nil
		}
		return attr.Value(), nil
	case ast.FieldTimeseries:
		metric, ok := c.obj.(*store.Metric)
		if !ok || metric.TimeseriesHandle() == nil {
			return sysval.NewInt(0), nil
		}
		return sysval.NewInt(1), nil
	default:
		return sysval.Value{}, sysdberr.New(sysdberr.Internal, "unknown field")
	}
}

// iterItem is one element of an Iterator's bound sequence: either a child
// entity (Typed source) or a scalar value (FieldBackend source).
type iterItem struct {
	obj store.Entity
	val sysval.Value
}

// evalIterable resolves an Iterator's Source to its bound sequence. The
// analyzer guarantees Source is either a Typed node or FieldRef{FieldBackend}.
func evalIterable(c evalCtx, e ast.Expr) ([]iterItem, error) {
	switch n := e.(type) {
	case ast.Typed:
		children, err := store.ChildrenOf(c.obj, n.ChildKind)
		if err != nil {
			return nil, err
		}
		items := make([]iterItem, len(children))
		for i, child := range children {
			items[i] = iterItem{obj: child}
		}
		return items, nil

	case ast.FieldRef:
		if n.Field != ast.FieldBackend {
			return nil, sysdberr.New(sysdberr.Internal, "field is not an iteration source")
		}
		backends := c.obj.Backends()
		items := make([]iterItem, len(backends))
		for i, b := range backends {
			items[i] = iterItem{val: sysval.NewString(b)}
		}
		return items, nil

	default:
		return nil, sysdberr.New(sysdberr.Internal, "expression is not an iteration source")
	}
}
