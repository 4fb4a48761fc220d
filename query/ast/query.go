package ast

import (
	"github.com/sysdb/sysdb/pkg/sysval"
	"github.com/sysdb/sysdb/store"
)

// Fetch dereferences a single path. Name must be empty for
// Kind==store.KindHost (Host is fully identified by Host; the analyzer
// rejects a name there); it is required otherwise.
type Fetch struct {
	Kind   store.Kind
	Host   string
	Name   string
	Filter Matcher
}

// List scans every object of Kind in name order, emitting a shallow record
// per object that passes Filter.
type List struct {
	Kind   store.Kind
	Filter Matcher
}

// Lookup scans every object of Kind in name order, emitting a full subtree
// for each object passing both Matcher and Filter.
type Lookup struct {
	Kind    store.Kind
	Matcher Matcher // nil means "always true"
	Filter  Matcher // nil means "always true"
}

// StoreOp identifies which of the six writer-API calls a StoreStmt
// delegates to.
type StoreOp uint8

const (
	StoreHostOp StoreOp = iota
	StoreServiceOp
	StoreMetricOp
	StoreAttributeOp
	StoreServiceAttributeOp
	StoreMetricAttributeOp
)

// StoreStmt carries whichever fields StoreOp requires; the analyzer checks
// that exactly those fields are populated for the given Op.
type StoreStmt struct {
	Op        StoreOp
	Host      string
	Service   string
	Metric    string
	Key       string
	Value     sysval.Value
	TSHandle  *store.TimeseriesHandle
	Timestamp uint64
	Backend   string
}

// Timeseries delegates to the out-of-scope time-series backend named by the
// metric's recorded handle.
type Timeseries struct {
	Host   string
	Metric string
	Start  uint64
	End    uint64
}
