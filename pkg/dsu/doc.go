// Package dsu provides the disjoint-set union family: the classic
// union-find structure, a potentialised variant that maintains relative
// weights between elements of a component, and an aggregated variant that
// folds a monoid product per component.
package dsu
