package store

import (
	"github.com/sysdb/sysdb/internal/omap"
	"github.com/sysdb/sysdb/pkg/sysval"
)

// Entity is the common interface every stored object satisfies: the sum
// type Host|Service|Metric|Attribute, accessed through a small interface
// rather than an unsafe pointer-cast over a shared header layout.
type Entity interface {
	Kind() Kind
	Name() string
	LastUpdate() uint64
	Interval() uint64
	Backends() []string
	// Parent returns the entity's non-owning back-reference, or nil for
	// Host (the only root type).
	Parent() Entity
}

// TimeseriesHandle is the opaque pointer into an out-of-scope time-series
// backend a Metric may carry.
type TimeseriesHandle struct {
	StoreType string
	StoreID   string
}

// Host is the only root entity type; it owns services, metrics, and
// attributes, each in its own case-insensitively-keyed child map.
type Host struct {
	Header
	services   *omap.Map[*Service]
	metrics    *omap.Map[*Metric]
	attributes *omap.Map[*Attribute]
}

func newHost(name string, ts uint64, backend string) *Host {
	return &Host{
		Header:     newHeader(name, ts, backend),
		services:   omap.New[*Service](),
		metrics:    omap.New[*Metric](),
		attributes: omap.New[*Attribute](),
	}
}

func (h *Host) Kind() Kind     { return KindHost }
func (h *Host) Parent() Entity { return nil }

// GetService returns the named service, if present.
func (h *Host) GetService(name string) (*Service, bool) { return h.services.Lookup(name) }

// GetMetric returns the named metric, if present.
func (h *Host) GetMetric(name string) (*Metric, bool) { return h.metrics.Lookup(name) }

// GetAttribute returns the named attribute, if present.
func (h *Host) GetAttribute(name string) (*Attribute, bool) { return h.attributes.Lookup(name) }

// Services returns every service in name order.
func (h *Host) Services() []*Service { return values(h.services) }

// Metrics returns every metric in name order.
func (h *Host) Metrics() []*Metric { return values(h.metrics) }

// Attributes returns every attribute in name order.
func (h *Host) Attributes() []*Attribute { return values(h.attributes) }

// Service hangs off exactly one Host and owns only attributes.
type Service struct {
	Header
	host       *Host
	attributes *omap.Map[*Attribute]
}

func newService(host *Host, name string, ts uint64, backend string) *Service {
	return &Service{
		Header:     newHeader(name, ts, backend),
		host:       host,
		attributes: omap.New[*Attribute](),
	}
}

func (s *Service) Kind() Kind     { return KindService }
func (s *Service) Parent() Entity { return s.host }
func (s *Service) Host() *Host    { return s.host }

func (s *Service) GetAttribute(name string) (*Attribute, bool) { return s.attributes.Lookup(name) }
func (s *Service) Attributes() []*Attribute                    { return values(s.attributes) }

// Metric hangs off exactly one Host, owns attributes, and may carry an
// opaque time-series handle.
type Metric struct {
	Header
	host       *Host
	tsHandle   *TimeseriesHandle
	attributes *omap.Map[*Attribute]
}

func newMetric(host *Host, name string, ts uint64, backend string) *Metric {
	return &Metric{
		Header:     newHeader(name, ts, backend),
		host:       host,
		attributes: omap.New[*Attribute](),
	}
}

func (m *Metric) Kind() Kind     { return KindMetric }
func (m *Metric) Parent() Entity { return m.host }
func (m *Metric) Host() *Host    { return m.host }

// TimeseriesHandle returns the recorded handle, or nil if none has ever
// been set. A non-nil handle is never cleared by a nil update — only
// replaced by another non-nil handle.
func (m *Metric) TimeseriesHandle() *TimeseriesHandle { return m.tsHandle }

func (m *Metric) GetAttribute(name string) (*Attribute, bool) { return m.attributes.Lookup(name) }
func (m *Metric) Attributes() []*Attribute                    { return values(m.attributes) }

// Attribute is a named, typed value hanging off a Host, Service, or Metric.
// It has no children of its own.
type Attribute struct {
	Header
	owner Entity
	value sysval.Value
}

func newAttribute(owner Entity, name string, val sysval.Value, ts uint64, backend string) *Attribute {
	return &Attribute{
		Header: newHeader(name, ts, backend),
		owner:  owner,
		value:  val.Copy(),
	}
}

func (a *Attribute) Kind() Kind       { return KindAttribute }
func (a *Attribute) Parent() Entity   { return a.owner }
func (a *Attribute) Value() sysval.Value { return a.value }

func values[V any](m *omap.Map[V]) []V {
	entries := m.All()
	out := make([]V, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}
