// Package analyzer implements the static type/context check that runs
// before execution: it walks an expression or matcher tree with a Context
// describing the current object kind and iterator nesting, and rejects
// ill-typed queries before the executor ever touches the store.
//
// Every rejection is a single *sysdberr.Error of kind sysdberr.TypeError
// carrying a human-readable, single-line message. Field and child-set
// errors (an invalid field for the context, a non-iterable ANY/ALL source)
// name the offending field or kind; rejections of an operator rule (nested
// iterators, iterable or ARRAY operands, IN/REGEX right-hand sides, STORE
// and TIMESERIES shape checks) state the rule without naming the operand.
// The Context value is created fresh by each top-level check (Fetch, List,
// Lookup) and threaded explicitly through recursion — never a package
// global — so the analysis context is scoped to the current request only.
package analyzer
