// Package exec implements the query executor: it runs an already-analyzed
// ast.Fetch/ast.List/ast.Lookup against a store.Store and produces a lazy,
// non-restartable Cursor of records for the JSON formatter to drain. The
// store's read lock is held from Cursor creation until the scan is
// exhausted or explicitly closed.
package exec
