package jsonfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sysdb/sysdb/pkg/sysval"
	"github.com/sysdb/sysdb/query/ast"
	"github.com/sysdb/sysdb/query/exec"
	"github.com/sysdb/sysdb/store"
)

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(store.DefaultLimits(), nil)
	_, err := s.StoreHost("web01", 1_700_000_000_000_000_000, "agent")
	require.NoError(t, err)
	_, err = s.StoreAttribute("web01", "region", sysval.NewString("us-east"), 1_700_000_000_000_000_001, "agent")
	require.NoError(t, err)
	_, err = s.StoreMetric("web01", "cpu.load", &store.TimeseriesHandle{StoreType: "rrd", StoreID: "x"}, 1_700_000_000_000_000_002, "agent")
	require.NoError(t, err)
	return s
}

func TestWriteFetch_HostShape(t *testing.T) {
	s := seededStore(t)
	rec, err := exec.Fetch(s, ast.Fetch{Kind: store.KindHost, Host: "web01"}, 1_700_000_000_100_000_000)
	require.NoError(t, err)

	w := New()
	w.WriteFetch(rec)
	out := w.Bytes()

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(out, &parsed))
	require.Equal(t, "web01", parsed["name"])
	require.Contains(t, parsed, "last_update")
	require.Contains(t, parsed, "update_interval")
	require.Contains(t, parsed, "backends")
	require.Contains(t, parsed, "services")
	require.Contains(t, parsed, "metrics")
	require.Contains(t, parsed, "attributes")
	require.NotContains(t, parsed, "value")
	require.NotContains(t, parsed, "timeseries")

	s2 := string(out)
	require.Less(t, strings.Index(s2, `"name"`), strings.Index(s2, `"last_update"`))
	require.Less(t, strings.Index(s2, `"last_update"`), strings.Index(s2, `"update_interval"`))
	require.Less(t, strings.Index(s2, `"update_interval"`), strings.Index(s2, `"backends"`))
	require.Less(t, strings.Index(s2, `"backends"`), strings.Index(s2, `"services"`))
}

func TestWriteFetch_AttributeEmitsValueBeforeBaseFields(t *testing.T) {
	s := seededStore(t)
	rec, err := exec.Fetch(s, ast.Fetch{Kind: store.KindAttribute, Host: "web01", Name: "region"}, 1_700_000_000_100_000_000)
	require.NoError(t, err)

	w := New()
	w.WriteFetch(rec)
	out := string(w.Bytes())

	require.Less(t, strings.Index(out, `"name"`), strings.Index(out, `"value"`))
	require.Less(t, strings.Index(out, `"value"`), strings.Index(out, `"last_update"`))
	require.Contains(t, out, `"value":"us-east"`)
}

func TestWriteFetch_MetricEmitsTimeseriesBoolean(t *testing.T) {
	s := seededStore(t)
	rec, err := exec.Fetch(s, ast.Fetch{Kind: store.KindMetric, Host: "web01", Name: "cpu.load"}, 1_700_000_000_100_000_000)
	require.NoError(t, err)

	w := New()
	w.WriteFetch(rec)
	out := string(w.Bytes())
	require.Contains(t, out, `"timeseries":true`)
}

func TestWriteList_ShallowRecordsHaveNoChildArrays(t *testing.T) {
	s := seededStore(t)
	cur := exec.List(s, ast.List{Kind: store.KindHost}, 1_700_000_000_100_000_000)

	w := New()
	w.WriteList(cur)
	out := string(w.Bytes())
	require.NotContains(t, out, `"services"`)
	require.NotContains(t, out, `"attributes"`)
}

func TestWriteValue_NullIsUnquoted(t *testing.T) {
	var buf []byte
	w := New()
	writeValue(&w.buf, sysval.NewNull())
	buf = w.Bytes()
	require.Equal(t, "null", string(buf))
}

func TestWriteJSONString_EscapesControlCharacters(t *testing.T) {
	w := New()
	writeJSONString(&w.buf, "a\nb\"c")
	require.Equal(t, `"a\nb\"c"`, string(w.Bytes()))
}
