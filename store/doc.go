// Package store implements the in-memory SysDB object tree: hosts, the
// services/metrics/attributes hung off them, the store root that guards the
// whole tree with a single reader/writer lock, and the writer API consumed
// by source adapters.
//
// The store never deletes: once created, an object lives until the process
// exits. Mutation is limited to updating a header's last_update/interval/
// backend-set and an entity's type-specific payload (Attribute.Value,
// Metric's timeseries handle).
package store
