package omap

import (
	"sort"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

func fold(name string) string {
	return folder.String(name)
}

type entry[V any] struct {
	name string // as supplied at insert time
	key  string // case-folded, used for ordering and lookup
	val  V
}

// Map is an ordered map keyed by case-insensitive name. The zero value is
// not usable; construct with New.
type Map[V any] struct {
	entries []entry[V]
	index   map[string]int // fold(name) -> index into entries
}

// New returns an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{index: make(map[string]int)}
}

// Len returns the number of entries.
func (m *Map[V]) Len() int { return len(m.entries) }

// Lookup returns the value stored under name (compared case-insensitively)
// and whether it was found.
func (m *Map[V]) Lookup(name string) (V, bool) {
	var zero V
	idx, ok := m.index[fold(name)]
	if !ok {
		return zero, false
	}
	return m.entries[idx].val, true
}

// InsertOrGet returns the existing value for name if present; otherwise it
// calls create, inserts the result in sorted position, and returns it along
// with created=true.
func (m *Map[V]) InsertOrGet(name string, create func() V) (val V, created bool) {
	k := fold(name)
	if idx, ok := m.index[k]; ok {
		return m.entries[idx].val, false
	}

	v := create()
	pos := sort.Search(len(m.entries), func(i int) bool { return m.entries[i].key >= k })

	m.entries = append(m.entries, entry[V]{})
	copy(m.entries[pos+1:], m.entries[pos:])
	m.entries[pos] = entry[V]{name: name, key: k, val: v}

	for i := pos; i < len(m.entries); i++ {
		m.index[m.entries[i].key] = i
	}

	return v, true
}

// Set unconditionally replaces (or inserts) the value under name, preserving
// sorted position. The store's writers do not call it: they update payload
// state (e.g. Attribute.Value) directly on the object returned by Lookup.
func (m *Map[V]) Set(name string, v V) {
	k := fold(name)
	if idx, ok := m.index[k]; ok {
		m.entries[idx].val = v
		return
	}
	m.InsertOrGet(name, func() V { return v })
}

// Entry is a single (original-case name, value) pair yielded by All.
type Entry[V any] struct {
	Name  string
	Value V
}

// All returns every entry in case-folded key order.
func (m *Map[V]) All() []Entry[V] {
	out := make([]Entry[V], len(m.entries))
	for i, e := range m.entries {
		out[i] = Entry[V]{Name: e.name, Value: e.val}
	}
	return out
}
