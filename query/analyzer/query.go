package analyzer

import (
	"github.com/sysdb/sysdb/pkg/sysdberr"
	"github.com/sysdb/sysdb/query/ast"
	"github.com/sysdb/sysdb/store"
)

// Fetch type-checks a Fetch statement's Filter against the object kind it
// will be evaluated on, and enforces the Name presence rule: Name must be
// empty for KindHost and non-empty otherwise.
func Fetch(q ast.Fetch) error {
	if q.Kind == store.KindHost && q.Name != "" {
		return sysdberr.New(sysdberr.TypeError, "FETCH HOST does not take a name")
	}
	if q.Kind != store.KindHost && q.Name == "" {
		return sysdberr.New(sysdberr.TypeError, "FETCH "+q.Kind.String()+" requires a name")
	}
	if q.Filter == nil {
		return nil
	}
	return Matcher(Context{ObjectKind: q.Kind}, q.Filter)
}

// List type-checks a List statement's Filter.
func List(q ast.List) error {
	if q.Filter == nil {
		return nil
	}
	return Matcher(Context{ObjectKind: q.Kind}, q.Filter)
}

// Lookup type-checks a Lookup statement's Matcher and Filter, both against
// the same object kind (both are scoped to "the object currently being
// considered", not to any already-matched child).
func Lookup(q ast.Lookup) error {
	ctx := Context{ObjectKind: q.Kind}
	if q.Matcher != nil {
		if err := Matcher(ctx, q.Matcher); err != nil {
			return err
		}
	}
	if q.Filter != nil {
		if err := Matcher(ctx, q.Filter); err != nil {
			return err
		}
	}
	return nil
}

// Store enforces the per-StoreOp field-presence matrix: each writer call
// takes exactly the coordinates and payload its target level requires,
// nothing more.
func Store(q ast.StoreStmt) error {
	if q.Host == "" {
		return sysdberr.New(sysdberr.TypeError, "STORE requires a host")
	}
	switch q.Op {
	case ast.StoreHostOp:
		if q.Service != "" || q.Metric != "" || q.Key != "" {
			return sysdberr.New(sysdberr.TypeError, "STORE HOST takes only a host name")
		}
	case ast.StoreServiceOp:
		if q.Service == "" {
			return sysdberr.New(sysdberr.TypeError, "STORE SERVICE requires a service name")
		}
		if q.Metric != "" || q.Key != "" {
			return sysdberr.New(sysdberr.TypeError, "STORE SERVICE does not take a metric or key")
		}
	case ast.StoreMetricOp:
		if q.Metric == "" {
			return sysdberr.New(sysdberr.TypeError, "STORE METRIC requires a metric name")
		}
		if q.Service != "" || q.Key != "" {
			return sysdberr.New(sysdberr.TypeError, "STORE METRIC does not take a service or key")
		}
	case ast.StoreAttributeOp:
		if q.Key == "" {
			return sysdberr.New(sysdberr.TypeError, "STORE ATTRIBUTE requires a key")
		}
		if q.Service != "" || q.Metric != "" {
			return sysdberr.New(sysdberr.TypeError, "STORE ATTRIBUTE (host-level) does not take a service or metric")
		}
	case ast.StoreServiceAttributeOp:
		if q.Service == "" || q.Key == "" {
			return sysdberr.New(sysdberr.TypeError, "STORE SERVICE ATTRIBUTE requires a service and key")
		}
		if q.Metric != "" {
			return sysdberr.New(sysdberr.TypeError, "STORE SERVICE ATTRIBUTE does not take a metric")
		}
	case ast.StoreMetricAttributeOp:
		if q.Metric == "" || q.Key == "" {
			return sysdberr.New(sysdberr.TypeError, "STORE METRIC ATTRIBUTE requires a metric and key")
		}
		if q.Service != "" {
			return sysdberr.New(sysdberr.TypeError, "STORE METRIC ATTRIBUTE does not take a service")
		}
	default:
		return sysdberr.New(sysdberr.Internal, "unknown store op")
	}
	return nil
}

// Timeseries enforces End > Start; an empty range is never a valid query.
func Timeseries(q ast.Timeseries) error {
	if q.Host == "" || q.Metric == "" {
		return sysdberr.New(sysdberr.TypeError, "TIMESERIES requires a host and metric")
	}
	if q.End <= q.Start {
		return sysdberr.New(sysdberr.TypeError, "TIMESERIES requires end > start")
	}
	return nil
}
