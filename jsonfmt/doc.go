// Package jsonfmt renders query results as JSON. It writes into a single
// growable in-memory buffer — no network I/O happens while the store's
// read lock is held — and produces: a top-level array of shallow records
// for LIST, a top-level array of full subtrees for LOOKUP, and a single
// object (no outer array) for FETCH.
package jsonfmt
