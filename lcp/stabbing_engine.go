// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package lcp

import (
	"github.com/regindex/Labeled-Graph-LCP/fmindex"
	"github.com/regindex/Labeled-Graph-LCP/lcpval"
	"github.com/regindex/Labeled-Graph-LCP/queue"
	"github.com/regindex/Labeled-Graph-LCP/stabbing"
)

// IntervalStabbing computes the LCP vector by the interval-stabbing BFS
// (§4.G): rather than re-deriving forward_all at every layer, it seeds one
// state per label at LCP 0 and advances by stabbing the position each
// popped state corresponds to against the maximal-monochromatic-interval
// side-structure.
func IntervalStabbing(idx *fmindex.Index, sds *stabbing.Stabbing) []lcpval.Value {
	n := idx.NumStates()
	lcp := make([]lcpval.Value, n)
	for i := range lcp {
		lcp[i] = lcpval.Infinite
	}

	q := queue.NewSingle(n)
	for _, i := range sds.ZeroEntries() {
		lcp[i] = lcpval.Len(0)
		q.Push(i)
	}
	for q.Advance() {
		for !q.Empty() {
			i := q.Pop()
			for _, bridge := range sds.Stab(idx.StateToPos(i)) {
				dest := idx.Forward(bridge.Right, bridge.Char)
				lcp[dest] = lcpval.Len(q.L() + 1)
				q.Push(dest)
			}
		}
	}
	lcp[0] = lcpval.Len(0)
	return lcp
}
