package sysval

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Format renders v as text in the given style. Formatting is total: every
// Value, including NULL, has a representation.
func (v Value) Format(style FormatStyle) string {
	switch v.tag {
	case Null:
		return quoteIfNeeded("null", style)
	case Integer:
		return quoteIfNeeded(strconv.FormatInt(v.i, 10), style)
	case Decimal:
		return quoteIfNeeded(strconv.FormatFloat(v.f, 'g', -1, 64), style)
	case String:
		return quoteString(v.s, style)
	case Datetime:
		return quoteIfNeeded(time.Unix(0, int64(v.u)).UTC().Format(time.RFC3339Nano), style)
	case Binary:
		return quoteIfNeeded("0x"+hex.EncodeToString(v.bin), style)
	case Regex:
		src := ""
		if v.re != nil {
			src = v.re.src
		}
		return quoteIfNeeded("/"+src+"/", style)
	case Array:
		parts := make([]string, len(v.arr.elems))
		for i, e := range v.arr.elems {
			parts[i] = e.Format(Unquoted)
		}
		return quoteIfNeeded("["+strings.Join(parts, ", ")+"]", style)
	default:
		return quoteIfNeeded("", style)
	}
}

func quoteIfNeeded(s string, style FormatStyle) string {
	switch style {
	case SingleQuoted:
		return "'" + strings.ReplaceAll(s, "'", "\\'") + "'"
	case DoubleQuoted:
		return "\"" + strings.ReplaceAll(s, "\"", "\\\"") + "\""
	default:
		return s
	}
}

func quoteString(s string, style FormatStyle) string {
	switch style {
	case SingleQuoted:
		return "'" + strings.ReplaceAll(s, "'", "\\'") + "'"
	case DoubleQuoted:
		return "\"" + strings.ReplaceAll(s, "\"", "\\\"") + "\""
	default:
		return s
	}
}
