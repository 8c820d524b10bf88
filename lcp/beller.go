// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package lcp assembles the three LCP-construction engines (§4.E, §4.G,
// §4.I) on top of fmindex, stabbing and doubling, plus the shared .LCP
// serialization format (§6).
package lcp

import (
	"github.com/regindex/Labeled-Graph-LCP/fmindex"
	"github.com/regindex/Labeled-Graph-LCP/lcpval"
	"github.com/regindex/Labeled-Graph-LCP/queue"
)

// BellerGen computes the LCP vector by the generalized-Beller BFS (§4.E):
// a breadth-first traversal of the Wheeler automaton in reverse, one
// interval-queue layer per LCP value.
func BellerGen(idx *fmindex.Index) []lcpval.Value {
	n := idx.NumStates()
	lcp := make([]lcpval.Value, n)
	for i := range lcp {
		lcp[i] = lcpval.Infinite
	}

	q := queue.NewInterval(n)
	q.Push(0, n)
	for q.Advance() {
		for !q.Empty() {
			l, r := q.Pop()
			if !lcp[l].IsInfinite() {
				// an earlier, shallower traversal already labeled l.
				continue
			}
			// the root interval [0,n) is popped at layer 0 and carries no
			// LCP value of its own; lcp[0] is set after the loop.
			if q.L() > 0 {
				lcp[l] = lcpval.Len(q.L() - 1)
			}
			for _, child := range idx.ForwardAll(l, r) {
				if lcp[child.Lo].IsInfinite() {
					q.Push(child.Lo, child.Hi)
				}
			}
		}
	}
	lcp[0] = lcpval.Len(0)
	return lcp
}
