package sysval

// ExprType is the static result-type oracle consumed by the analyzer: a pure
// function of the two operand tags and the operator. It never evaluates
// anything; it only predicts what ExprEval would produce, or reports that
// the combination is incompatible.
func ExprType(op ArithOp, ta, tb Tag) (Tag, error) {
	switch op {
	case Add:
		switch {
		case ta == Integer && tb == Integer:
			return Integer, nil
		case isNumeric(ta) && isNumeric(tb):
			return Decimal, nil
		case ta == String && tb == String:
			return String, nil
		}
	case Sub:
		switch {
		case ta == Integer && tb == Integer:
			return Integer, nil
		case isNumeric(ta) && isNumeric(tb):
			return Decimal, nil
		case ta == Datetime && tb == Datetime:
			return Datetime, nil
		}
	case Mul, Div:
		switch {
		case ta == Integer && tb == Integer:
			return Integer, nil
		case isNumeric(ta) && isNumeric(tb):
			return Decimal, nil
		}
	}
	return Null, &Error{Kind: ErrKindIncompatible, Msg: "operator " + op.String() + " is not defined for " + ta.String() + " and " + tb.String()}
}

func isNumeric(t Tag) bool { return t == Integer || t == Decimal }

// ExprEval performs the concrete arithmetic. A type mismatch here (which the
// analyzer should have prevented via ExprType) surfaces as an EvalError
// rather than a panic.
func ExprEval(op ArithOp, a, b Value) (Value, error) {
	resultTag, err := ExprType(op, a.tag, b.tag)
	if err != nil {
		return Value{}, err
	}

	switch {
	case a.tag == String && b.tag == String && op == Add:
		return NewString(a.s + b.s), nil

	case a.tag == Datetime && b.tag == Datetime && op == Sub:
		// Interval between two instants, expressed as a DATETIME holding the
		// magnitude in ns.
		if a.u >= b.u {
			return NewDatetime(a.u - b.u), nil
		}
		return NewDatetime(b.u - a.u), nil

	case resultTag == Integer:
		ai, _ := a.Int()
		bi, _ := b.Int()
		switch op {
		case Add:
			return NewInt(ai + bi), nil
		case Sub:
			return NewInt(ai - bi), nil
		case Mul:
			return NewInt(ai * bi), nil
		case Div:
			if bi == 0 {
				return Value{}, &Error{Kind: ErrKindIncompatible, Msg: "integer division by zero"}
			}
			return NewInt(ai / bi), nil
		}

	case resultTag == Decimal:
		af := asFloat(a)
		bf := asFloat(b)
		switch op {
		case Add:
			return NewDecimal(af + bf), nil
		case Sub:
			return NewDecimal(af - bf), nil
		case Mul:
			return NewDecimal(af * bf), nil
		case Div:
			return NewDecimal(af / bf), nil
		}
	}

	return Value{}, &Error{Kind: ErrKindIncompatible, Msg: "operator " + op.String() + " is not defined for " + a.tag.String() + " and " + b.tag.String()}
}

func asFloat(v Value) float64 {
	switch v.tag {
	case Integer:
		return float64(v.i)
	case Decimal:
		return v.f
	default:
		return 0
	}
}
