package exec

import (
	"sort"
	"strings"

	"github.com/sysdb/sysdb/query/ast"
	"github.com/sysdb/sysdb/store"
)

// Record is one result the formatter consumes: always the matched entity,
// and — for FETCH/LOOKUP — its pruned subtree.
type Record struct {
	Obj     store.Entity
	Subtree *SubtreeNode
}

// Cursor is a lazy, non-restartable iterator over a scan's surviving
// records. It holds the store's read lock from creation until Next returns
// false or Close is called; callers that abandon a scan midway must call
// Close themselves when they abandon a scan early.
type Cursor struct {
	s          *store.Store
	candidates []store.Entity
	pos        int
	c          evalCtx
	matcher    ast.Matcher // selects which candidates become records; nil = all
	filter     ast.Matcher // recursive subtree prune, only used when full
	full       bool
	closed     bool
}

// Next advances the cursor and reports whether a record was produced. Once
// it returns false the underlying read lock has already been released.
func (cur *Cursor) Next() (Record, bool) {
	if cur.closed {
		return Record{}, false
	}
	for cur.pos < len(cur.candidates) {
		obj := cur.candidates[cur.pos]
		cur.pos++

		if cur.matcher != nil && evalMatcher(cur.c.withObj(obj), cur.matcher) != True {
			continue
		}
		if !cur.full {
			return Record{Obj: obj}, true
		}
		node, included := pruneSubtree(cur.c, obj, cur.filter)
		if !included {
			continue
		}
		return Record{Obj: obj, Subtree: node}, true
	}
	cur.Close()
	return Record{}, false
}

// Close releases the read lock. Safe to call more than once.
func (cur *Cursor) Close() {
	if cur.closed {
		return
	}
	cur.closed = true
	cur.s.RUnlock()
}

// scanAll returns every entity of kind across every host, in case-insensitive
// name order.
func scanAll(s *store.Store, kind store.Kind) []store.Entity {
	hosts := s.HostsLocked()
	var out []store.Entity
	switch kind {
	case store.KindHost:
		for _, h := range hosts {
			out = append(out, h)
		}
	case store.KindService:
		for _, h := range hosts {
			for _, svc := range h.Services() {
				out = append(out, svc)
			}
		}
	case store.KindMetric:
		for _, h := range hosts {
			for _, m := range h.Metrics() {
				out = append(out, m)
			}
		}
	case store.KindAttribute:
		for _, h := range hosts {
			for _, a := range h.Attributes() {
				out = append(out, a)
			}
			for _, svc := range h.Services() {
				for _, a := range svc.Attributes() {
					out = append(out, a)
				}
			}
			for _, m := range h.Metrics() {
				for _, a := range m.Attributes() {
					out = append(out, a)
				}
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name()) < strings.ToLower(out[j].Name())
	})
	return out
}
