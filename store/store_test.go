package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sysdb/sysdb/pkg/sysval"
)

func testLimits() Limits {
	return Limits{
		MaxChildrenPerParent: 4,
		MaxNameLen:           32,
		MaxHosts:             4,
		MaxArrayLen:          4,
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(testLimits(), nil)
}

func TestStoreHost_CreatesOnFirstWrite(t *testing.T) {
	s := newTestStore(t)

	outcome, err := s.StoreHost("web01", 100, "agentA")
	require.NoError(t, err)
	require.Equal(t, Applied, outcome)

	host, ok := s.GetHost("web01")
	require.True(t, ok)
	require.Equal(t, "web01", host.Name())
	require.Equal(t, uint64(100), host.LastUpdate())
	require.Equal(t, []string{"agentA"}, host.Backends())
}

func TestStoreHost_EqualTimestampIsStale(t *testing.T) {
	s := newTestStore(t)

	_, err := s.StoreHost("web01", 100, "agentA")
	require.NoError(t, err)

	outcome, err := s.StoreHost("web01", 100, "agentB")
	require.NoError(t, err)
	require.Equal(t, Stale, outcome)

	host, _ := s.GetHost("web01")
	require.Equal(t, []string{"agentA"}, host.Backends(), "stale update must not merge backend set")
}

func TestStoreHost_OlderTimestampIsStale(t *testing.T) {
	s := newTestStore(t)

	_, err := s.StoreHost("web01", 100, "agentA")
	require.NoError(t, err)

	outcome, err := s.StoreHost("web01", 50, "agentB")
	require.NoError(t, err)
	require.Equal(t, Stale, outcome)
}

func TestStoreHost_IntervalEWMA(t *testing.T) {
	s := newTestStore(t)

	_, err := s.StoreHost("web01", 1000, "a")
	require.NoError(t, err)
	host, _ := s.GetHost("web01")
	require.Equal(t, uint64(0), host.Interval(), "no interval until a second update arrives")

	_, err = s.StoreHost("web01", 2000, "a")
	require.NoError(t, err)
	require.Equal(t, uint64(1000), host.Interval(), "first gap seeds the interval directly")

	_, err = s.StoreHost("web01", 3600, "a")
	require.NoError(t, err)
	// gap=1600, delta=1600-1000=600, interval += 600/16 = 37 -> 1037
	require.Equal(t, uint64(1037), host.Interval())
}

func TestStoreHost_RejectsEmptyName(t *testing.T) {
	s := newTestStore(t)
	_, err := s.StoreHost("", 1, "a")
	require.Error(t, err)
}

func TestStoreHost_EnforcesMaxHosts(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < s.limits.MaxHosts; i++ {
		_, err := s.StoreHost(string(rune('a'+i)), uint64(i+1), "a")
		require.NoError(t, err)
	}
	_, err := s.StoreHost("overflow", 999, "a")
	require.Error(t, err)
}

func TestStoreService_RequiresExistingHost(t *testing.T) {
	s := newTestStore(t)
	_, err := s.StoreService("nohost", "nginx", 1, "a")
	require.Error(t, err)
}

func TestStoreService_CreatesUnderHost(t *testing.T) {
	s := newTestStore(t)
	_, err := s.StoreHost("web01", 1, "a")
	require.NoError(t, err)

	outcome, err := s.StoreService("web01", "nginx", 2, "a")
	require.NoError(t, err)
	require.Equal(t, Applied, outcome)

	host, _ := s.GetHost("web01")
	svc, ok := host.GetService("nginx")
	require.True(t, ok)
	require.Equal(t, KindService, svc.Kind())
	require.Equal(t, host, svc.Parent())
}

func TestStoreMetric_NilHandleNeverClearsExisting(t *testing.T) {
	s := newTestStore(t)
	_, err := s.StoreHost("web01", 1, "a")
	require.NoError(t, err)

	_, err = s.StoreMetric("web01", "cpu.load", &TimeseriesHandle{StoreType: "rrd", StoreID: "x"}, 2, "a")
	require.NoError(t, err)

	_, err = s.StoreMetric("web01", "cpu.load", nil, 3, "a")
	require.NoError(t, err)

	host, _ := s.GetHost("web01")
	m, _ := host.GetMetric("cpu.load")
	require.NotNil(t, m.TimeseriesHandle())
	require.Equal(t, "rrd", m.TimeseriesHandle().StoreType)
}

func TestStoreAttribute_ReplacesValueOnAdvance(t *testing.T) {
	s := newTestStore(t)
	_, err := s.StoreHost("web01", 1, "a")
	require.NoError(t, err)

	_, err = s.StoreAttribute("web01", "region", sysval.NewString("us-east"), 2, "a")
	require.NoError(t, err)

	outcome, err := s.StoreAttribute("web01", "region", sysval.NewString("us-west"), 3, "a")
	require.NoError(t, err)
	require.Equal(t, Applied, outcome)

	host, _ := s.GetHost("web01")
	attr, _ := host.GetAttribute("region")
	v, _ := attr.Value().Str()
	require.Equal(t, "us-west", v)
}

func TestStoreAttribute_EnforcesMaxArrayLen(t *testing.T) {
	s := newTestStore(t)
	_, err := s.StoreHost("web01", 1, "a")
	require.NoError(t, err)

	elems := make([]sysval.Value, s.limits.MaxArrayLen+1)
	for i := range elems {
		elems[i] = sysval.NewInt(int64(i))
	}
	arr, err := sysval.NewArray(sysval.Integer, elems)
	require.NoError(t, err)

	_, err = s.StoreAttribute("web01", "toolong", arr, 2, "a")
	require.Error(t, err)
}

func TestStoreService_EnforcesMaxChildrenPerParent(t *testing.T) {
	s := newTestStore(t)
	_, err := s.StoreHost("web01", 1, "a")
	require.NoError(t, err)

	for i := 0; i < s.limits.MaxChildrenPerParent; i++ {
		_, err := s.StoreService("web01", string(rune('a'+i)), uint64(i+2), "a")
		require.NoError(t, err)
	}
	_, err = s.StoreService("web01", "overflow", 999, "a")
	require.Error(t, err)
}
