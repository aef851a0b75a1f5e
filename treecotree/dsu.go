// Package treecotree: disjoint-set union used by both spanning passes.
package treecotree

// dsu is a disjoint-set (union-find) over integer ids 0..n−1 with path
// compression and union by rank. Decompose runs one instance over the
// vertex ids and a second over the face ids.
type dsu struct {
	parent []int
	rank   []int
}

// newDSU returns a dsu with every id in its own singleton set.
func newDSU(n int) *dsu {
	d := &dsu{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns the set representative of u, compressing the path as it walks.
func (d *dsu) find(u int) int {
	// Walk up until the root (parent[u] == u).
	for d.parent[u] != u {
		// Path compression: make u point to its grandparent.
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v by rank.
// It reports whether a merge happened (false when already joined).
func (d *dsu) union(u, v int) bool {
	rootU := d.find(u)
	rootV := d.find(v)
	if rootU == rootV {
		// Already in the same set; adding this edge would close a cycle.
		return false
	}

	// Attach smaller-rank tree under larger-rank root.
	if d.rank[rootU] < d.rank[rootV] {
		d.parent[rootU] = rootV
	} else {
		d.parent[rootV] = rootU
		// If ranks are equal, the resulting root gains one rank.
		if d.rank[rootU] == d.rank[rootV] {
			d.rank[rootU]++
		}
	}

	return true
}
