package store

import "github.com/sysdb/sysdb/internal/omap"

// Header is the state every entity variant shares: name, last_update,
// interval, and backend set. It is embedded by value in Host/Service/
// Metric/Attribute rather than simulated with a pointer-cast, keeping each
// entity's own fields right alongside the shared ones.
type Header struct {
	name       string
	lastUpdate uint64
	interval   uint64
	backends   *omap.Map[struct{}]
}

func newHeader(name string, ts uint64, backend string) Header {
	h := Header{name: name, lastUpdate: ts, backends: omap.New[struct{}]()}
	h.addBackend(backend)
	return h
}

// Name returns the entity's name, as supplied at creation (original case).
func (h *Header) Name() string { return h.name }

// LastUpdate returns the ns-since-epoch timestamp of the most recent
// non-stale write.
func (h *Header) LastUpdate() uint64 { return h.lastUpdate }

// Interval returns the EWMA of inter-update gaps.
func (h *Header) Interval() uint64 { return h.interval }

// Age returns now-lastUpdate; it is a derived read-time quantity, never
// stored.
func (h *Header) Age(nowNS uint64) int64 {
	return int64(nowNS) - int64(h.lastUpdate)
}

// Backends returns the accumulated backend set in sorted (case-folded name)
// order.
func (h *Header) Backends() []string {
	entries := h.backends.All()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func (h *Header) addBackend(backend string) {
	if backend == "" {
		return
	}
	h.backends.InsertOrGet(backend, func() struct{} { return struct{}{} })
}

// applyTimestamp compares ts against the current last_update and, if ts is
// strictly newer, advances last_update and rolls the interval EWMA
// forward. It reports whether the update was applied (false means stale:
// ts <= last_update — an equal timestamp is stale too; see DESIGN.md).
func (h *Header) applyTimestamp(ts uint64) (applied bool) {
	prev := h.lastUpdate
	if ts <= prev {
		return false
	}

	if h.interval == 0 {
		h.interval = ts - prev
	} else {
		gap := ts - prev
		// interval += (gap - interval) / 16, computed in signed arithmetic
		// since gap may be smaller than the running interval.
		delta := int64(gap) - int64(h.interval)
		h.interval = uint64(int64(h.interval) + delta/16)
	}
	h.lastUpdate = ts
	return true
}
