// Package pathpool implements a flyweight interning pool for hierarchical
// paths (namespaces, filesystem-like paths, symbol paths).
//
// Each distinct path is stored exactly once as a (parent, tag) pair, so
// every common prefix is shared across all stored paths and adding a path
// costs memory proportional to the new tag only, never to path length. A
// stored path collapses to a small integer PathID with O(1) equality, copy,
// and hashing; reconstructing the full tag sequence is an explicit query
// (TagList).
//
// The pool is append-only: ids are dense, assigned in creation order, and
// stay valid for the pool's whole lifetime. There is no deletion and no
// internal locking: one logical owner mutates a pool, see Pool for the
// exact concurrency contract.
package pathpool
