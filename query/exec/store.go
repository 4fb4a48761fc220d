package exec

import (
	"github.com/sysdb/sysdb/pkg/sysdberr"
	"github.com/sysdb/sysdb/query/ast"
	"github.com/sysdb/sysdb/store"
)

// Store executes an already-analyzed ast.StoreStmt by delegating to the
// matching store.Store writer call after validation.
func Store(s *store.Store, q ast.StoreStmt) (store.Outcome, error) {
	switch q.Op {
	case ast.StoreHostOp:
		return s.StoreHost(q.Host, q.Timestamp, q.Backend)
	case ast.StoreServiceOp:
		return s.StoreService(q.Host, q.Service, q.Timestamp, q.Backend)
	case ast.StoreMetricOp:
		return s.StoreMetric(q.Host, q.Metric, q.TSHandle, q.Timestamp, q.Backend)
	case ast.StoreAttributeOp:
		return s.StoreAttribute(q.Host, q.Key, q.Value, q.Timestamp, q.Backend)
	case ast.StoreServiceAttributeOp:
		return s.StoreServiceAttribute(q.Host, q.Service, q.Key, q.Value, q.Timestamp, q.Backend)
	case ast.StoreMetricAttributeOp:
		return s.StoreMetricAttribute(q.Host, q.Metric, q.Key, q.Value, q.Timestamp, q.Backend)
	default:
		return 0, sysdberr.New(sysdberr.Internal, "unknown store op")
	}
}
