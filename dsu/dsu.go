// SPDX-License-Identifier: MIT

// Package dsu implements a disjoint-set (union-find) forest over string keys,
// with path halving and union by size.
//
// Both spanning-tree engines in this module rely on it: the partial-tree
// solver uses it as the vertex → partition index, and Kruskal uses it to
// reject edges whose endpoints are already connected.
//
// Complexity: Find and Union run in O(α(n)) amortized time.
package dsu

import "errors"

// ErrUnknownKey indicates that a key was never added to the set.
var ErrUnknownKey = errors.New("dsu: unknown key")

// DisjointSet is a growable union-find forest. The zero value is not usable;
// construct with New.
type DisjointSet struct {
	index  map[string]int
	keys   []string
	parent []int
	size   []int
	count  int // number of disjoint sets
}

// New returns a DisjointSet in which every key starts in its own set.
// Duplicate keys are ignored.
func New(keys ...string) *DisjointSet {
	d := &DisjointSet{
		index:  make(map[string]int, len(keys)),
		keys:   make([]string, 0, len(keys)),
		parent: make([]int, 0, len(keys)),
		size:   make([]int, 0, len(keys)),
	}
	for _, k := range keys {
		d.Add(k)
	}

	return d
}

// Add inserts key as a singleton set. It reports false if key already exists.
func (d *DisjointSet) Add(key string) bool {
	if _, ok := d.index[key]; ok {
		return false
	}
	i := len(d.keys)
	d.index[key] = i
	d.keys = append(d.keys, key)
	d.parent = append(d.parent, i)
	d.size = append(d.size, 1)
	d.count++

	return true
}

// Has reports whether key was added.
func (d *DisjointSet) Has(key string) bool {
	_, ok := d.index[key]

	return ok
}

// Find returns the representative key of the set containing key.
func (d *DisjointSet) Find(key string) (string, error) {
	i, ok := d.index[key]
	if !ok {
		return "", ErrUnknownKey
	}

	return d.keys[d.root(i)], nil
}

// root walks to the set root, halving the path on the way.
func (d *DisjointSet) root(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}

	return i
}

// Union merges the sets containing a and b. It reports whether a merge
// happened (false when both keys were already in one set).
func (d *DisjointSet) Union(a, b string) (bool, error) {
	ia, ok := d.index[a]
	if !ok {
		return false, ErrUnknownKey
	}
	ib, ok := d.index[b]
	if !ok {
		return false, ErrUnknownKey
	}
	ra, rb := d.root(ia), d.root(ib)
	if ra == rb {
		return false, nil
	}
	// Attach the smaller tree under the larger root.
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.count--

	return true, nil
}

// Connected reports whether a and b belong to the same set.
// Unknown keys are never connected.
func (d *DisjointSet) Connected(a, b string) bool {
	ia, ok := d.index[a]
	if !ok {
		return false
	}
	ib, ok := d.index[b]
	if !ok {
		return false
	}

	return d.root(ia) == d.root(ib)
}

// SizeOf returns the number of keys in the set containing key.
func (d *DisjointSet) SizeOf(key string) (int, error) {
	i, ok := d.index[key]
	if !ok {
		return 0, ErrUnknownKey
	}

	return d.size[d.root(i)], nil
}

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

// Len returns the number of keys.
func (d *DisjointSet) Len() int { return len(d.keys) }

// Sets returns the members of every set, each in insertion order, with sets
// ordered by their earliest-inserted member.
func (d *DisjointSet) Sets() [][]string {
	slot := make(map[int]int, d.count)
	out := make([][]string, 0, d.count)
	for i, k := range d.keys {
		r := d.root(i)
		s, ok := slot[r]
		if !ok {
			s = len(out)
			slot[r] = s
			out = append(out, nil)
		}
		out[s] = append(out[s], k)
	}

	return out
}
