package exec

import (
	"github.com/sysdb/sysdb/pkg/sysdberr"
	"github.com/sysdb/sysdb/query/ast"
	"github.com/sysdb/sysdb/store"
)

// Timeseries resolves q's metric and returns its recorded handle for an
// out-of-scope time-series backend to consult; actually reading samples
// from that backend is outside this module's contract.
func Timeseries(s *store.Store, q ast.Timeseries) (*store.TimeseriesHandle, error) {
	s.RLock()
	defer s.RUnlock()

	host, ok := s.GetHostLocked(q.Host)
	if !ok {
		return nil, sysdberr.New(sysdberr.NotFound, "host "+q.Host+" not found")
	}
	metric, ok := host.GetMetric(q.Metric)
	if !ok {
		return nil, sysdberr.New(sysdberr.NotFound, "metric "+q.Metric+" not found on host "+q.Host)
	}
	handle := metric.TimeseriesHandle()
	if handle == nil {
		return nil, sysdberr.New(sysdberr.NotFound, "metric "+q.Metric+" has no recorded timeseries handle")
	}
	return handle, nil
}
