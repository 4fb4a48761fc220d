package exec

import (
	"github.com/sysdb/sysdb/pkg/sysdberr"
	"github.com/sysdb/sysdb/query/ast"
	"github.com/sysdb/sysdb/store"
)

// List runs an ast.List: a flat scan of every entity of q.Kind, filtered by
// q.Filter, yielding shallow records. The caller must drain the cursor (or
// Close it) to release the read lock.
func List(s *store.Store, q ast.List, nowNS uint64) *Cursor {
	s.RLock()
	return &Cursor{
		s:          s,
		candidates: scanAll(s, q.Kind),
		c:          newEvalCtx(nil, nowNS, newRegexCache()),
		matcher:    q.Filter,
		full:       false,
	}
}

// Lookup runs an ast.Lookup: a flat scan of every entity of q.Kind selected
// by q.Matcher, yielding a pruned full subtree per selected record.
func Lookup(s *store.Store, q ast.Lookup, nowNS uint64) *Cursor {
	s.RLock()
	return &Cursor{
		s:          s,
		candidates: scanAll(s, q.Kind),
		c:          newEvalCtx(nil, nowNS, newRegexCache()),
		matcher:    q.Matcher,
		filter:     q.Filter,
		full:       true,
	}
}

// Fetch dereferences a single path and returns its pruned full subtree, or
// a NotFound error if the path does not exist or is filtered out entirely.
func Fetch(s *store.Store, q ast.Fetch, nowNS uint64) (Record, error) {
	s.RLock()
	defer s.RUnlock()

	obj, err := locateFetch(s, q)
	if err != nil {
		return Record{}, err
	}

	c := newEvalCtx(obj, nowNS, newRegexCache())
	node, included := pruneSubtree(c, obj, q.Filter)
	if !included {
		return Record{}, sysdberr.New(sysdberr.NotFound, "fetch "+q.Kind.String()+" "+fetchPath(q)+": filtered out")
	}
	return Record{Obj: obj, Subtree: node}, nil
}

func locateFetch(s *store.Store, q ast.Fetch) (store.Entity, error) {
	host, ok := s.GetHostLocked(q.Host)
	if !ok {
		return nil, sysdberr.New(sysdberr.NotFound, "host "+q.Host+" not found")
	}

	switch q.Kind {
	case store.KindHost:
		return host, nil
	case store.KindService:
		svc, ok := host.GetService(q.Name)
		if !ok {
			return nil, sysdberr.New(sysdberr.NotFound, "service "+q.Name+" not found on host "+q.Host)
		}
		return svc, nil
	case store.KindMetric:
		m, ok := host.GetMetric(q.Name)
		if !ok {
			return nil, sysdberr.New(sysdberr.NotFound, "metric "+q.Name+" not found on host "+q.Host)
		}
		return m, nil
	case store.KindAttribute:
		a, ok := host.GetAttribute(q.Name)
		if !ok {
			return nil, sysdberr.New(sysdberr.NotFound, "attribute "+q.Name+" not found on host "+q.Host)
		}
		return a, nil
	default:
		return nil, sysdberr.New(sysdberr.Internal, "unknown fetch kind")
	}
}

func fetchPath(q ast.Fetch) string {
	if q.Kind == store.KindHost {
		return q.Host
	}
	return q.Host + "." + q.Name
}
