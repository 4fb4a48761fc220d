package store

import "github.com/sysdb/sysdb/pkg/sysdberr"

// ChildrenOf returns obj's children of the given kind as a generic Entity
// slice, in name order. It is the single place the query engine's Typed
// expression nodes (C6) and iterator matchers (C7) go to switch into a
// child-set context, so the per-kind validity rules only need enforcing
// once here (the analyzer additionally rejects invalid combinations
// statically, before this function is ever called at execution time).
func ChildrenOf(obj Entity, kind Kind) ([]Entity, error) {
	switch o := obj.(type) {
	case *Host:
		switch kind {
		case KindService:
			return toEntities(o.Services()), nil
		case KindMetric:
			return toEntities(o.Metrics()), nil
		case KindAttribute:
			return toEntities(o.Attributes()), nil
		}
	case *Service:
		if kind == KindAttribute {
			return toEntities(o.Attributes()), nil
		}
	case *Metric:
		if kind == KindAttribute {
			return toEntities(o.Attributes()), nil
		}
	case *Attribute:
		// Attribute has no children of any kind.
	}
	return nil, sysdberr.New(sysdberr.ArgumentError, obj.Kind().String()+" has no "+kind.String()+" children")
}

// CanHaveChildren reports whether parent objects of kind parent may have
// children of kind child, independent of any particular instance. The
// analyzer uses this to reject Typed expression nodes statically.
func CanHaveChildren(parent, child Kind) bool {
	switch parent {
	case KindHost:
		return child == KindService || child == KindMetric || child == KindAttribute
	case KindService, KindMetric:
		return child == KindAttribute
	default:
		return false
	}
}

func toEntities[V Entity](in []V) []Entity {
	out := make([]Entity, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
