package analyzer

import (
	"github.com/sysdb/sysdb/pkg/sysval"
	"github.com/sysdb/sysdb/store"
)

// Context is the scoped, per-call analysis state threaded through
// expression/matcher recursion. It is never held as package state.
type Context struct {
	// ObjectKind is the kind of object the expression under analysis would
	// be evaluated against at runtime.
	ObjectKind store.Kind

	// InsideIterator is true once analysis has descended into an ANY/ALL
	// matcher; a second nested Iterator is rejected.
	InsideIterator bool

	// HasElem and ElemTag describe the "current element" type available to
	// an ast.Elem expression, valid only when analyzing the Inner matcher
	// of an Iterator whose Source yields scalars (e.g. backends) rather
	// than a typed child-object set.
	HasElem bool
	ElemTag sysval.Tag
}

// childObjectContext returns the Context an Iterator's Inner matcher is analyzed
// with, given the kind of the Source it iterates.
func (c Context) childObjectContext(kind store.Kind) Context {
	return Context{ObjectKind: kind, InsideIterator: true}
}

func (c Context) elemContext(tag sysval.Tag) Context {
	return Context{ObjectKind: c.ObjectKind, InsideIterator: true, HasElem: true, ElemTag: tag}
}
