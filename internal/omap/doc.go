// Package omap implements the ordered, case-insensitively-keyed child
// container used for every host/service/metric/attribute child set in the
// store tree.
//
// Keys are compared under Unicode case folding (golang.org/x/text/cases),
// not a byte-wise strings.ToLower, so names differing only by a fold-stable
// case rule anywhere in the repertoire still collide as the same key.
// Iteration always walks entries in folded-key order; insertion order is
// not retained. There is no Delete: the store is monotonically growing.
package omap
