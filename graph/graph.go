// Package graph offers small dependency-graph helpers over elements of
// any comparable type. Graphs are given functionally, as a function
// from an element to the elements it depends on.
package graph

import (
	"errors"
	"slices"
)

// Deps resolves an element to its direct dependencies.
type Deps[T comparable] func(T) []T

// ErrCycle is returned by Reorder when dependencies cannot be
// satisfied by any ordering.
var ErrCycle = errors.New("dependency cycle")

// CycleExists reports whether following deps from node can reach node
// again.
func CycleExists[T comparable](node T, deps Deps[T]) bool {
	seen := make(map[T]bool)
	todo := append([]T(nil), deps(node)...)
	for len(todo) > 0 {
		n := todo[0]
		todo = todo[1:]
		if n == node {
			return true
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		todo = append(todo, deps(n)...)
	}
	return false
}

// Leafage returns the dependency-free elements reachable from elts
// through deps, in discovery order. Elements of elts without
// dependencies are themselves leaves.
func Leafage[T comparable](elts []T, deps Deps[T]) []T {
	seen := make(map[T]bool)
	var leafs []T
	todo := append([]T(nil), elts...)
	for len(todo) > 0 {
		e := todo[0]
		todo = todo[1:]
		if seen[e] {
			continue
		}
		seen[e] = true
		ds := deps(e)
		if len(ds) == 0 {
			leafs = append(leafs, e)
			continue
		}
		todo = append(todo, ds...)
	}
	return leafs
}

// InvertDeps returns the reverse-dependency lookup over elts: the
// returned function maps an element to the elements of elts that
// depend on it directly. The reverse edges are computed once, up
// front.
func InvertDeps[T comparable](elts []T, deps Deps[T]) Deps[T] {
	rev := make(map[T][]T)
	for _, e := range elts {
		for _, d := range deps(e) {
			rev[d] = append(rev[d], e)
		}
	}
	return func(e T) []T { return rev[e] }
}

// Reorder rearranges elts in place so every element comes after its
// dependencies, moving as few elements as it can and dropping
// duplicates. Dependencies on elements absent from elts are not
// supported. Returns ErrCycle when no ordering can satisfy deps.
func Reorder[T comparable](elts []T, deps Deps[T]) ([]T, error) {
	for _, e := range elts {
		if CycleExists(e, deps) {
			return elts, ErrCycle
		}
	}
	leafs := make(map[T]bool)
	for _, l := range Leafage(elts, deps) {
		leafs[l] = true
	}
	inv := InvertDeps(elts, deps)

	idx := 0
	for idx < len(elts) {
		e := elts[idx]
		if slices.Index(elts[:idx], e) >= 0 {
			elts = append(elts[:idx], elts[idx+1:]...)
			continue
		}
		if leafs[e] {
			delete(leafs, e)
			// elements whose deps are now all placed become leaves
			for _, p := range inv(e) {
				placed := true
				for _, d := range deps(p) {
					if d != e && slices.Index(elts[:idx], d) < 0 {
						placed = false
						break
					}
				}
				if placed {
					leafs[p] = true
				}
			}
			idx++
			continue
		}
		last := -1
		for _, d := range deps(e) {
			if i := slices.Index(elts, d); i > last {
				last = i
			}
		}
		if last <= idx {
			return elts, ErrCycle
		}
		elts[idx], elts[last] = elts[last], elts[idx]
	}
	return elts, nil
}
