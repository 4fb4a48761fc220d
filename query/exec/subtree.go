package exec

import (
	"github.com/sysdb/sysdb/query/ast"
	"github.com/sysdb/sysdb/store"
)

// SubtreeNode is a pruned copy of one entity's position in the store tree:
// the entity itself plus whichever of its children survived recursive
// filtering. Children are grouped by kind since the formatter emits one
// JSON array per child kind. Exported read-only so package jsonfmt can walk
// it without reaching into exec's evaluation internals.
type SubtreeNode struct {
	obj      store.Entity
	services []*SubtreeNode
	metrics  []*SubtreeNode
	attrs    []*SubtreeNode
}

// Object returns the entity this node wraps.
func (n *SubtreeNode) Object() store.Entity { return n.obj }

// Services returns the surviving service children, in scan order.
func (n *SubtreeNode) Services() []*SubtreeNode { return n.services }

// Metrics returns the surviving metric children, in scan order.
func (n *SubtreeNode) Metrics() []*SubtreeNode { return n.metrics }

// Attributes returns the surviving attribute children, in scan order.
func (n *SubtreeNode) Attributes() []*SubtreeNode { return n.attrs }

func (n *SubtreeNode) addChild(kind store.Kind, child *SubtreeNode) {
	switch kind {
	case store.KindService:
		n.services = append(n.services, child)
	case store.KindMetric:
		n.metrics = append(n.metrics, child)
	case store.KindAttribute:
		n.attrs = append(n.attrs, child)
	}
}

func childKindsOf(k store.Kind) []store.Kind {
	switch k {
	case store.KindHost:
		return []store.Kind{store.KindService, store.KindMetric, store.KindAttribute}
	case store.KindService, store.KindMetric:
		return []store.Kind{store.KindAttribute}
	default:
		return nil
	}
}

// pruneSubtree recursively applies filter to obj and its descendants. A node
// survives (the returned bool) if it passes filter itself, or if at least
// one of its children survives — so a parent with no surviving children is
// still emitted when it itself passes. A nil filter always passes.
func pruneSubtree(c evalCtx, obj store.Entity, filter ast.Matcher) (*SubtreeNode, bool) {
	node := &SubtreeNode{obj: obj}
	included := filter == nil || evalMatcher(c.withObj(obj), filter) == True

	for _, kind := range childKindsOf(obj.Kind()) {
		children, err := store.ChildrenOf(obj, kind)
		if err != nil {
			continue
		}
		for _, child := range children {
			childNode, childIncluded := pruneSubtree(c, child, filter)
			if childIncluded {
				node.addChild(kind, childNode)
				included = true
			}
		}
	}
	return node, included
}
