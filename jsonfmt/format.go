package jsonfmt

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/sysdb/sysdb/pkg/sysval"
	"github.com/sysdb/sysdb/query/exec"
	"github.com/sysdb/sysdb/store"
)

// Writer accumulates a JSON result into a single growable in-memory buffer.
// Nothing is flushed to the network while the store's read lock is held;
// the caller drains Bytes() only after the producing Cursor is exhausted.
type Writer struct {
	buf bytes.Buffer
}

// New returns an empty Writer.
func New() *Writer { return &Writer{} }

// Bytes returns the accumulated JSON.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// WriteList drains cur as a top-level array of shallow records.
func (w *Writer) WriteList(cur *exec.Cursor) {
	w.buf.WriteByte('[')
	first := true
	for {
		rec, ok := cur.Next()
		if !ok {
			break
		}
		if !first {
			w.buf.WriteByte(',')
		}
		first = false
		writeShallow(&w.buf, rec.Obj)
	}
	w.buf.WriteByte(']')
}

// WriteLookup drains cur as a top-level array of full subtrees.
func (w *Writer) WriteLookup(cur *exec.Cursor) {
	w.buf.WriteByte('[')
	first := true
	for {
		rec, ok := cur.Next()
		if !ok {
			break
		}
		if !first {
			w.buf.WriteByte(',')
		}
		first = false
		writeSubtree(&w.buf, rec.Subtree)
	}
	w.buf.WriteByte(']')
}

// WriteFetch writes rec's subtree as a single object, no outer array.
func (w *Writer) WriteFetch(rec exec.Record) {
	writeSubtree(&w.buf, rec.Subtree)
}

func writeShallow(buf *bytes.Buffer, obj store.Entity) {
	buf.WriteByte('{')
	buf.WriteString(`"name":`)
	writeJSONString(buf, obj.Name())
	writeTypeField(buf, obj)
	writeBaseTail(buf, obj)
	buf.WriteByte('}')
}

func writeSubtree(buf *bytes.Buffer, node *exec.SubtreeNode) {
	obj := node.Object()
	buf.WriteByte('{')
	buf.WriteString(`"name":`)
	writeJSONString(buf, obj.Name())
	writeTypeField(buf, obj)
	writeBaseTail(buf, obj)

	switch obj.Kind() {
	case store.KindHost:
		buf.WriteString(`,"services":`)
		writeSubtreeArray(buf, node.Services())
		buf.WriteString(`,"metrics":`)
		writeSubtreeArray(buf, node.Metrics())
		buf.WriteString(`,"attributes":`)
		writeSubtreeArray(buf, node.Attributes())
	case store.KindService, store.KindMetric:
		buf.WriteString(`,"attributes":`)
		writeSubtreeArray(buf, node.Attributes())
	}
	buf.WriteByte('}')
}

func writeSubtreeArray(buf *bytes.Buffer, nodes []*exec.SubtreeNode) {
	buf.WriteByte('[')
	for i, n := range nodes {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeSubtree(buf, n)
	}
	buf.WriteByte(']')
}

// writeTypeField emits the one field that varies by entity kind,
// immediately after "name" (matching the documented FETCH shape): "value"
// for Attribute, "timeseries" for Metric, nothing for Host/Service.
func writeTypeField(buf *bytes.Buffer, obj store.Entity) {
	switch o := obj.(type) {
	case *store.Attribute:
		buf.WriteString(`,"value":`)
		writeValue(buf, o.Value())
	case *store.Metric:
		buf.WriteString(`,"timeseries":`)
		if o.TimeseriesHandle() != nil {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	}
}

func writeBaseTail(buf *bytes.Buffer, obj store.Entity) {
	buf.WriteString(`,"last_update":`)
	writeJSONString(buf, formatTimestamp(obj.LastUpdate()))
	buf.WriteString(`,"update_interval":`)
	writeJSONString(buf, formatInterval(obj.Interval()))
	buf.WriteString(`,"backends":`)
	writeStringArray(buf, obj.Backends())
}

func writeStringArray(buf *bytes.Buffer, items []string) {
	buf.WriteByte('[')
	for i, s := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(buf, s)
	}
	buf.WriteByte(']')
}

// writeValue renders a sysval.Value as raw JSON: numbers and NULL unquoted,
// ARRAY as a JSON array of its rendered elements, and everything else
// (including DATETIME/BINARY/REGEX, which have no native JSON type) as an
// escaped string.
func writeValue(buf *bytes.Buffer, v sysval.Value) {
	switch v.Tag() {
	case sysval.Null:
		buf.WriteString("null")
	case sysval.Integer:
		i, _ := v.Int()
		buf.WriteString(strconv.FormatInt(i, 10))
	case sysval.Decimal:
		f, _ := v.DecimalValue()
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case sysval.String:
		s, _ := v.Str()
		writeJSONString(buf, s)
	case sysval.Datetime:
		ns, _ := v.DatetimeNS()
		writeJSONString(buf, formatTimestamp(ns))
	case sysval.Array:
		elems, _ := v.ArrayElems()
		buf.WriteByte('[')
		for i, e := range elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeValue(buf, e)
		}
		buf.WriteByte(']')
	default:
		// BINARY, REGEX: no native JSON representation, render their
		// canonical text form.
		writeJSONString(buf, v.Format(sysval.Unquoted))
	}
}

func formatTimestamp(ns uint64) string {
	return time.Unix(0, int64(ns)).UTC().Format(time.RFC3339Nano)
}

func formatInterval(ns uint64) string {
	return time.Duration(ns).String()
}

// writeJSONString writes s as a quoted, escaped JSON string.
func writeJSONString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}
