package exec

import (
	"regexp"

	"github.com/sysdb/sysdb/pkg/sysval"
	"github.com/sysdb/sysdb/query/ast"
)

// evalMatcher evaluates m against c, producing a three-valued result. It
// never returns a Go error: every failure mode the analyzer didn't already
// reject (a missing attribute, an incompatible runtime comparison, a regex
// against a non-string) collapses to Indeterminate rather than surfacing as
// an error to the caller.
func evalMatcher(c evalCtx, m ast.Matcher) Tri {
	switch n := m.(type) {
	case ast.And:
		left := evalMatcher(c, n.Left)
		if left == False {
			return False
		}
		return left.and(evalMatcher(c, n.Right))

	case ast.Or:
		left := evalMatcher(c, n.Left)
		if left == True {
			return True
		}
		return left.or(evalMatcher(c, n.Right))

	case ast.Not:
		return evalMatcher(c, n.Inner).not()

	case ast.Compare:
		return evalCompare(c, n)

	case ast.Unary:
		return evalUnary(c, n)

	case ast.Iterator:
		return evalIterator(c, n)

	default:
		return Indeterminate
	}
}

func evalCompare(c evalCtx, n ast.Compare) Tri {
	l, err := evalExpr(c, n.Left)
	if err != nil {
		return Indeterminate
	}
	r, err := evalExpr(c, n.Right)
	if err != nil {
		return Indeterminate
	}

	nameCtx := isNameContext(n.Left) || isNameContext(n.Right)

	switch n.Op {
	case ast.IN:
		elems, ok := r.ArrayElems()
		if !ok {
			return Indeterminate
		}
		for _, elem := range elems {
			if compareOperands(nameCtx, l, elem) == sysval.Equal {
				return True
			}
		}
		return False

	case ast.REGEXMatch, ast.NREGEXMatch:
		return evalRegex(c, n.Op, l, r)
	}

	ord := compareOperands(nameCtx, l, r)
	if ord == sysval.Indeterminate {
		return Indeterminate
	}
	switch n.Op {
	case ast.LT:
		return triFromBool(ord == sysval.Less)
	case ast.LE:
		return triFromBool(ord == sysval.Less || ord == sysval.Equal)
	case ast.EQ:
		return triFromBool(ord == sysval.Equal)
	case ast.NE:
		return triFromBool(ord != sysval.Equal)
	case ast.GE:
		return triFromBool(ord == sysval.Greater || ord == sysval.Equal)
	case ast.GT:
		return triFromBool(ord == sysval.Greater)
	default:
		return Indeterminate
	}
}

// isNameContext reports whether an operand expression is a host/service/
// metric/attribute name or a backend identifier — the two STRING contexts
// where equality is case-insensitive rather than exact. An Elem always
// qualifies: evalIterable only ever binds it to a backend string.
func isNameContext(e ast.Expr) bool {
	switch n := e.(type) {
	case ast.FieldRef:
		return n.Field == ast.FieldName || n.Field == ast.FieldBackend
	case ast.Elem:
		return true
	default:
		return false
	}
}

// compareOperands orders a against b, folding STRING case when the
// comparison is in a name context.
func compareOperands(nameCtx bool, a, b sysval.Value) sysval.Ordering {
	if nameCtx {
		return sysval.EqualFold(a, b)
	}
	return sysval.Cmp(a, b)
}

func evalRegex(c evalCtx, op ast.CompareOp, left, right sysval.Value) Tri {
	var re *regexp.Regexp
	if compiled, ok := right.CompiledRegex(); ok {
		re = compiled
	} else if pattern, ok := right.Str(); ok {
		compiled, err := c.regexes.compile(pattern)
		if err != nil {
			return Indeterminate
		}
		re = compiled
	} else {
		return Indeterminate
	}

	matched := triFromBool(matchLeft(re, left))
	if op == ast.NREGEXMatch {
		return matched.not()
	}
	return matched
}

func matchLeft(re *regexp.Regexp, left sysval.Value) bool {
	if left.IsNull() {
		return false
	}
	return re.MatchString(left.Format(sysval.Unquoted))
}

func evalUnary(c evalCtx, n ast.Unary) Tri {
	v, err := evalExpr(c, n.Operand)
	if err != nil {
		return Indeterminate
	}
	switch n.Op {
	case ast.ISNULL:
		return triFromBool(v.IsNull())
	case ast.ISTRUE, ast.ISFALSE:
		i, ok := v.Int()
		if !ok {
			return Indeterminate
		}
		isTrue := i != 0
		if n.Op == ast.ISTRUE {
			return triFromBool(isTrue)
		}
		return triFromBool(!isTrue)
	default:
		return Indeterminate
	}
}

func evalIterator(c evalCtx, n ast.Iterator) Tri {
	items, err := evalIterable(c, n.Source)
	if err != nil {
		return Indeterminate
	}
	if len(items) == 0 {
		if n.Mode == ast.ALL {
			return True
		}
		return False
	}

	switch n.Mode {
	case ast.ANY:
		acc := False
		for _, it := range items {
			r := evalMatcher(elemCtx(c, it), n.Inner)
			if r == True {
				return True
			}
			acc = acc.or(r)
		}
		return acc
	case ast.ALL:
		acc := True
		for _, it := range items {
			r := evalMatcher(elemCtx(c, it), n.Inner)
			if r == False {
				return False
			}
			acc = acc.and(r)
		}
		return acc
	default:
		return Indeterminate
	}
}

func elemCtx(c evalCtx, it iterItem) evalCtx {
	if it.obj != nil {
		return c.withObj(it.obj)
	}
	return c.withElem(it.val)
}
