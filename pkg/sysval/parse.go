package sysval

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Parse interprets text as a Value of the requested tag. ARRAY is not a
// valid target tag for Parse; build arrays with NewArray from already-typed
// elements instead.
func Parse(text string, target Tag) (Value, error) {
	switch target {
	case Null:
		return NewNull(), nil
	case Integer:
		i, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return Value{}, &Error{Kind: ErrKindParse, Msg: "parsing INTEGER from " + text, Err: err}
		}
		return NewInt(i), nil
	case Decimal:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return Value{}, &Error{Kind: ErrKindParse, Msg: "parsing DECIMAL from " + text, Err: err}
		}
		return NewDecimal(f), nil
	case String:
		return NewString(text), nil
	case Datetime:
		t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(text))
		if err != nil {
			return Value{}, &Error{Kind: ErrKindParse, Msg: "parsing DATETIME from " + text, Err: err}
		}
		return NewDatetime(uint64(t.UnixNano())), nil
	case Binary:
		trimmed := strings.TrimPrefix(strings.TrimSpace(text), "0x")
		b, err := hex.DecodeString(trimmed)
		if err != nil {
			return Value{}, &Error{Kind: ErrKindParse, Msg: "parsing BINARY from " + text, Err: err}
		}
		return NewBinary(b), nil
	case Regex:
		return NewRegex(text)
	default:
		return Value{}, &Error{Kind: ErrKindParse, Msg: "cannot parse into tag " + target.String()}
	}
}
