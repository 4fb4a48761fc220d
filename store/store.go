package store

import (
	"log/slog"
	"sync"

	"github.com/sysdb/sysdb/internal/omap"
	"github.com/sysdb/sysdb/pkg/sysdberr"
)

// Store is the process-wide root: every host, and every service/metric/
// attribute hanging off one, is reachable only through it. A single
// reader/writer lock guards the whole tree: writers hold it for
// one writer-API call, readers hold it for one scan, including every
// callback into the formatter.
type Store struct {
	mu     sync.RWMutex
	hosts  *omap.Map[*Host]
	limits Limits
	logger *slog.Logger
}

// New returns an empty Store.
func New(limits Limits, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		hosts:  omap.New[*Host](),
		limits: limits,
		logger: logger,
	}
}

// RLock acquires the store's read lock. Callers must pair every RLock with
// an RUnlock and must not call into any writer method while holding it.
// Query execution (package query/exec) is the intended caller: it holds the
// lock for the lifetime of a Cursor so the emitted subtree is a consistent
// snapshot.
func (s *Store) RLock() { s.mu.RLock() }

// RUnlock releases the store's read lock.
func (s *Store) RUnlock() { s.mu.RUnlock() }

// GetHostLocked returns the named host. The caller must hold the read (or
// write) lock.
func (s *Store) GetHostLocked(name string) (*Host, bool) { return s.hosts.Lookup(name) }

// HostsLocked returns every host in name order. The caller must hold the
// read (or write) lock.
func (s *Store) HostsLocked() []*Host { return values(s.hosts) }

// GetHost is a convenience single-lookup that takes the read lock itself.
// It is not suitable for use during a scan that must observe one consistent
// snapshot across multiple accesses; see GetHostLocked for that.
func (s *Store) GetHost(name string) (*Host, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hosts.Lookup(name)
}

// Outcome is the uniform return value of every writer-API call.
type Outcome uint8

const (
	// Applied means the object was created or its state advanced.
	Applied Outcome = iota
	// Stale means the supplied timestamp did not exceed the stored one; no
	// state changed.
	Stale
)

func validateName(name string, limits Limits) error {
	if name == "" {
		return sysdberr.New(sysdberr.ArgumentError, "name must not be empty")
	}
	if len([]rune(name)) > limits.MaxNameLen {
		return sysdberr.New(sysdberr.Resource, "name exceeds maximum length")
	}
	return nil
}

// StoreHost creates or updates a host.
func (s *Store) StoreHost(name string, ts uint64, backend string) (Outcome, error) {
	if err := validateName(name, s.limits); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.hosts.Lookup(name); ok {
		if existing.applyTimestamp(ts) {
			existing.addBackend(backend)
			return Applied, nil
		}
		s.logger.Debug("stale host update", "host", name, "ts", ts, "last_update", existing.LastUpdate())
		return Stale, nil
	}

	if s.hosts.Len() >= s.limits.MaxHosts {
		return 0, sysdberr.New(sysdberr.Resource, "store: maximum host count reached")
	}

	s.hosts.InsertOrGet(name, func() *Host { return newHost(name, ts, backend) })
	return Applied, nil
}

// StoreService creates or updates a service under an existing host.
func (s *Store) StoreService(hostName, name string, ts uint64, backend string) (Outcome, error) {
	if err := validateName(name, s.limits); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	host, ok := s.hosts.Lookup(hostName)
	if !ok {
		return 0, sysdberr.New(sysdberr.ArgumentError, "store service: host "+hostName+" does not exist")
	}

	if existing, ok := host.services.Lookup(name); ok {
		if existing.applyTimestamp(ts) {
			existing.addBackend(backend)
			return Applied, nil
		}
		s.logger.Debug("stale service update", "host", hostName, "service", name)
		return Stale, nil
	}

	if host.services.Len() >= s.limits.MaxChildrenPerParent {
		return 0, sysdberr.New(sysdberr.Resource, "store: host "+hostName+" has reached the maximum service count")
	}

	host.services.InsertOrGet(name, func() *Service { return newService(host, name, ts, backend) })
	return Applied, nil
}

// StoreMetric creates or updates a metric under an existing host. tsHandle
// may be nil; a nil handle never clears a previously recorded non-nil one.
func (s *Store) StoreMetric(hostName, name string, tsHandle *TimeseriesHandle, ts uint64, backend string) (Outcome, error) {
	if err := validateName(name, s.limits); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	host, ok := s.hosts.Lookup(hostName)
	if !ok {
		return 0, sysdberr.New(sysdberr.ArgumentError, "store metric: host "+hostName+" does not exist")
	}

	if existing, ok := host.metrics.Lookup(name); ok {
		if existing.applyTimestamp(ts) {
			existing.addBackend(backend)
			if tsHandle != nil {
				h := *tsHandle
				existing.tsHandle = &h
			}
			return Applied, nil
		}
		s.logger.Debug("stale metric update", "host", hostName, "metric", name)
		return Stale, nil
	}

	if host.metrics.Len() >= s.limits.MaxChildrenPerParent {
		return 0, sysdberr.New(sysdberr.Resource, "store: host "+hostName+" has reached the maximum metric count")
	}

	m, _ := host.metrics.InsertOrGet(name, func() *Metric { return newMetric(host, name, ts, backend) })
	if tsHandle != nil {
		h := *tsHandle
		m.tsHandle = &h
	}
	return Applied, nil
}
