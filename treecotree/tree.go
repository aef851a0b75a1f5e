// Package treecotree: the rooted primal spanning tree.
//
// Tree is built once per decomposition and then serves as the single
// transiently-mutated structure of the pipeline: cycle extraction adds a
// cotree edge, reads the induced cycle, and removes the edge again.
// Structural (parent link) edges can never be removed, so a matched
// Insert/Remove pair always restores the tree exactly.
package treecotree

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/homology/mesh"
)

// Tree is a rooted spanning tree over the mesh vertices.
//
// parent/depth are fixed at construction; adj carries the same edges
// plus any temporarily inserted extras. Not safe for concurrent use.
type Tree struct {
	root   int
	parent []int // parent[v] = parent vertex; parent[root] = −1
	depth  []int // depth[v]  = #edges from root
	adj    []map[int]struct{}
}

// newTree builds the rooted tree from the spanning edge set via a
// breadth-first walk with sorted neighbor order, so parent pointers are
// deterministic for a given edge set and root.
func newTree(numVertices int, edges []mesh.Edge, root int) *Tree {
	t := &Tree{
		root:   root,
		parent: make([]int, numVertices),
		depth:  make([]int, numVertices),
		adj:    make([]map[int]struct{}, numVertices),
	}

	// 1. Sorted neighbor lists: edges arrive in ascending canonical order,
	//    so appending both directions keeps each list ascending too.
	nbs := make([][]int, numVertices)
	for _, e := range edges {
		nbs[e.U] = append(nbs[e.U], e.V)
		nbs[e.V] = append(nbs[e.V], e.U)
	}
	for v := range nbs {
		sort.Ints(nbs[v])
		t.adj[v] = make(map[int]struct{}, len(nbs[v]))
		for _, w := range nbs[v] {
			t.adj[v][w] = struct{}{}
		}
	}

	// 2. BFS from the root assigns parent and depth.
	for v := range t.parent {
		t.parent[v] = -1
	}
	visited := make([]bool, numVertices)
	visited[root] = true
	queue := []int{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, w := range nbs[u] {
			if !visited[w] {
				visited[w] = true
				t.parent[w] = u
				t.depth[w] = t.depth[u] + 1
				queue = append(queue, w)
			}
		}
	}

	return t
}

// Root returns the root vertex.
func (t *Tree) Root() int { return t.root }

// Parent returns the parent of v, or −1 for the root.
func (t *Tree) Parent(v int) int { return t.parent[v] }

// Depth returns the number of edges between v and the root.
func (t *Tree) Depth(v int) int { return t.depth[v] }

// Len returns the current number of edges in the tree.
func (t *Tree) Len() int {
	n := 0
	for _, m := range t.adj {
		n += len(m)
	}

	return n / 2
}

// Has reports whether the unordered pair {u, v} is currently a tree edge.
func (t *Tree) Has(u, v int) bool {
	if u < 0 || u >= len(t.adj) || v < 0 || v >= len(t.adj) {
		return false
	}
	_, ok := t.adj[u][v]

	return ok
}

// Edges returns a snapshot of the current edge set in ascending
// canonical order. The snapshot is independent of later mutations.
func (t *Tree) Edges() []mesh.Edge {
	out := make([]mesh.Edge, 0, t.Len())
	for u := range t.adj {
		for v := range t.adj[u] {
			if u < v {
				out = append(out, mesh.Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// Insert temporarily adds the non-tree edge {u, v}, turning the tree
// into a unicyclic graph. It does not touch parent/depth bookkeeping:
// the inserted edge is exactly the back edge of the induced cycle.
func (t *Tree) Insert(u, v int) error {
	if u < 0 || u >= len(t.adj) || v < 0 || v >= len(t.adj) || u == v {
		return fmt.Errorf("treecotree: Insert(%d,%d): %w", u, v, ErrVertexNotInTree)
	}
	if t.Has(u, v) {
		return fmt.Errorf("treecotree: Insert(%d,%d): %w", u, v, ErrEdgeExists)
	}

	t.adj[u][v] = struct{}{}
	t.adj[v][u] = struct{}{}

	return nil
}

// Remove deletes a previously Inserted edge {u, v}, restoring the tree
// to its pre-Insert state. Structural parent-link edges are refused,
// which makes corruption of the spanning tree impossible through this API.
func (t *Tree) Remove(u, v int) error {
	if u < 0 || u >= len(t.adj) || v < 0 || v >= len(t.adj) {
		return fmt.Errorf("treecotree: Remove(%d,%d): %w", u, v, ErrVertexNotInTree)
	}
	if !t.Has(u, v) {
		return fmt.Errorf("treecotree: Remove(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	if t.parent[u] == v || t.parent[v] == u {
		return fmt.Errorf("treecotree: Remove(%d,%d): %w", u, v, ErrTreeEdge)
	}

	delete(t.adj[u], v)
	delete(t.adj[v], u)

	return nil
}

// Path returns the unique tree path from u to v (both inclusive), found
// by walking parent pointers to the lowest common ancestor. Inserted
// extra edges are ignored: only structural links participate.
func (t *Tree) Path(u, v int) ([]int, error) {
	if u < 0 || u >= len(t.adj) || v < 0 || v >= len(t.adj) {
		return nil, fmt.Errorf("treecotree: Path(%d,%d): %w", u, v, ErrVertexNotInTree)
	}

	// 1. Climb the deeper endpoint until both sit at equal depth.
	up := []int{u}   // u → ... → lca, in walk order
	down := []int{v} // v → ... → lca, in walk order (reversed later)
	a, b := u, v
	for t.depth[a] > t.depth[b] {
		a = t.parent[a]
		up = append(up, a)
	}
	for t.depth[b] > t.depth[a] {
		b = t.parent[b]
		down = append(down, b)
	}

	// 2. Climb both in lockstep until they meet at the LCA.
	for a != b {
		a = t.parent[a]
		up = append(up, a)
		b = t.parent[b]
		down = append(down, b)
	}

	// 3. Stitch: up already ends at the LCA; append the v-side in reverse,
	//    skipping its final element (the LCA itself).
	path := up
	for i := len(down) - 2; i >= 0; i-- {
		path = append(path, down[i])
	}

	return path, nil
}
