package store

import (
	"github.com/sysdb/sysdb/internal/omap"
	"github.com/sysdb/sysdb/pkg/sysdberr"
	"github.com/sysdb/sysdb/pkg/sysval"
)

// StoreAttribute creates or updates an attribute hanging directly off a
// host.
func (s *Store) StoreAttribute(hostName, key string, val sysval.Value, ts uint64, backend string) (Outcome, error) {
	if err := validateName(key, s.limits); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	host, ok := s.hosts.Lookup(hostName)
	if !ok {
		return 0, sysdberr.New(sysdberr.ArgumentError, "store attribute: host "+hostName+" does not exist")
	}

	return s.applyAttribute(host.attributes, host, key, val, ts, backend)
}

// StoreServiceAttribute creates or updates an attribute hanging off a
// service under an existing host.
func (s *Store) StoreServiceAttribute(hostName, serviceName, key string, val sysval.Value, ts uint64, backend string) (Outcome, error) {
	if err := validateName(key, s.limits); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	host, ok := s.hosts.Lookup(hostName)
	if !ok {
		return 0, sysdberr.New(sysdberr.ArgumentError, "store service attribute: host "+hostName+" does not exist")
	}
	svc, ok := host.services.Lookup(serviceName)
	if !ok {
		return 0, sysdberr.New(sysdberr.ArgumentError, "store service attribute: service "+serviceName+" does not exist on host "+hostName)
	}

	return s.applyAttribute(svc.attributes, svc, key, val, ts, backend)
}

// StoreMetricAttribute creates or updates an attribute hanging off a metric
// under an existing host.
func (s *Store) StoreMetricAttribute(hostName, metricName, key string, val sysval.Value, ts uint64, backend string) (Outcome, error) {
	if err := validateName(key, s.limits); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	host, ok := s.hosts.Lookup(hostName)
	if !ok {
		return 0, sysdberr.New(sysdberr.ArgumentError, "store metric attribute: host "+hostName+" does not exist")
	}
	metric, ok := host.metrics.Lookup(metricName)
	if !ok {
		return 0, sysdberr.New(sysdberr.ArgumentError, "store metric attribute: metric "+metricName+" does not exist on host "+hostName)
	}

	return s.applyAttribute(metric.attributes, metric, key, val, ts, backend)
}

// applyAttribute is the shared insert-or-update body for all three
// attribute writers: replace Value by deep copy only when the timestamp
// actually advances.
func (s *Store) applyAttribute(bag *omap.Map[*Attribute], owner Entity, key string, val sysval.Value, ts uint64, backend string) (Outcome, error) {
	if elems, ok := val.ArrayElems(); ok && len(elems) > s.limits.MaxArrayLen {
		return 0, sysdberr.New(sysdberr.Resource, "store: attribute value array exceeds maximum length")
	}

	if existing, ok := bag.Lookup(key); ok {
		if existing.applyTimestamp(ts) {
			existing.addBackend(backend)
			existing.value = val.Copy()
			return Applied, nil
		}
		s.logger.Debug("stale attribute update", "owner", owner.Name(), "key", key)
		return Stale, nil
	}

	if bag.Len() >= s.limits.MaxChildrenPerParent {
		return 0, sysdberr.New(sysdberr.Resource, "store: "+owner.Name()+" has reached the maximum attribute count")
	}

	bag.InsertOrGet(key, func() *Attribute { return newAttribute(owner, key, val, ts, backend) })
	return Applied, nil
}
