// Package algebra defines the algebraic abstractions the range-query
// structures in this module are parameterised by.
//
// A Monoid is an associative operation with an identity element. A Group is a
// monoid where every element has an inverse, which is what allows a Fenwick
// tree to answer arbitrary range folds from prefix folds alone. An Action is a
// monoid of operators together with a rule for applying an operator to a
// value; lazy segment trees are parameterised by a monoid and an action on it.
//
// The package ships the instances that cover the vast majority of contest
// usage (Sum, Min, Max, GCD, Xor, and the add/assign/affine actions). Anything
// else is a small struct away: implement the interface and every structure in
// this module accepts it.
package algebra
