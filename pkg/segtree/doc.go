// Package segtree provides segment trees over the monoids and actions
// defined in pkg/algebra: point update / range fold in Tree, and range
// update / range fold with lazy propagation in Lazy. Both answer every
// operation in O(log n).
package segtree
