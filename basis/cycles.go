// Package basis: homology generator extraction.
//
// Each cotree edge (u,v), reinserted into the primal spanning tree,
// closes exactly one cycle (tree + 1 edge ⇒ unicyclic graph). That
// cycle — the tree path u…v plus the step (v,u) — is one homology
// generator; the 2g generators are pairwise independent because each
// contains its own cotree edge and, the rest of it being tree path,
// no other cycle's cotree edge.
package basis

import (
	"fmt"

	"github.com/katalvlaran/homology/treecotree"
)

// Cycles extracts one homology generator per cotree edge, in cotree
// order. The decomposition's spanning tree is mutated transiently
// (insert cotree edge → read cycle → remove it) and is guaranteed to be
// back to its original edge set when Cycles returns, on success, error,
// and cancellation alike.
//
// A genus-0 decomposition yields an empty, non-nil slice.
//
// Complexity: O(g·V) worst case (each tree path is at most V vertices).
func Cycles(dec *treecotree.Decomposition, opts ...Option) ([]Cycle, error) {
	// 1. Validate input.
	if dec == nil || dec.Tree == nil {
		return nil, ErrNilDecomposition
	}

	// 2. Apply options.
	bopts := DefaultOptions()
	for _, fn := range opts {
		fn(&bopts)
	}

	// 3. One extraction per cotree edge, in decomposition order.
	cycles := make([]Cycle, 0, len(dec.CotreeEdges))
	for _, e := range dec.CotreeEdges {
		// Cancellation check between extractions; the tree is untouched here.
		select {
		case <-bopts.Ctx.Done():
			return nil, bopts.Ctx.Err()
		default:
		}

		c, err := extract(dec.Tree, e.U, e.V)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, c)
	}

	return cycles, nil
}

// extract performs one scoped add→discover→remove round on the tree.
// The deferred Remove runs even when discovery fails, so an error never
// leaves the tree holding the extra edge.
func extract(t *treecotree.Tree, u, v int) (c Cycle, err error) {
	// a. Reinsert the cotree edge; the tree becomes unicyclic.
	if err = t.Insert(u, v); err != nil {
		return nil, fmt.Errorf("basis: insert cotree edge (%d,%d): %w", u, v, err)
	}
	defer func() {
		// c. Restore the tree no matter how discovery went.
		if rerr := t.Remove(u, v); rerr != nil && err == nil {
			err = fmt.Errorf("basis: remove cotree edge (%d,%d): %w", u, v, rerr)
		}
	}()

	// b. The unique cycle is the tree path u…v closed by the back step (v,u).
	path, perr := t.Path(u, v)
	if perr != nil {
		return nil, fmt.Errorf("basis: path (%d,%d): %w", u, v, perr)
	}

	c = make(Cycle, 0, len(path))
	for i := 1; i < len(path); i++ {
		c = append(c, Step{From: path[i-1], To: path[i]})
	}
	c = append(c, Step{From: v, To: u})

	// A simple mesh admits no closed walk shorter than a triangle.
	if len(c) < 3 || !c.Closed() {
		return nil, fmt.Errorf("basis: cotree edge (%d,%d) gave walk of %d steps: %w",
			u, v, len(c), ErrOpenWalk)
	}

	return c, nil
}
