// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package doubling implements the data structure backing the
// Manber-Myers-style prefix-doubling LCP engine (§4.H/§4.I): a mutable LCP
// vector with range-minimum support (H), a bucket-id bitvector (I), and a
// predecessor vector (M).
//
// Grounded on doubling_ds.hpp, with one deliberate simplification: M's
// initial construction there replays the out-degree bitstring byte by byte
// with a run-length counter that depends on reads past end-of-file leaving
// the last byte in place — a C++ stream quirk, not a documented format.
// The same result — for each edge, its destination bucket slot gets the
// edge's source state as predecessor — falls out directly from the
// rank/C-array arithmetic fmindex.Index already uses for forward search,
// so that is what this package uses instead (DESIGN.md).
package doubling

import (
	"github.com/regindex/Labeled-Graph-LCP/bitvector"
	"github.com/regindex/Labeled-Graph-LCP/graph"
	"github.com/regindex/Labeled-Graph-LCP/lcpval"
)

// noPred marks a state with no predecessor (a source).
const noPred = -1

// Doubling is the H/I/M triple plus the current prefix length h.
type Doubling struct {
	n, s, sigma int
	h           int

	pred   []int
	bucket *bitvector.Vector
	lcp    []lcpval.Value
	rmq    *sparseTable
}

// Build constructs the doubling data structure from a loaded graph,
// deriving character frequencies directly from g.L rather than reusing the
// FM-index's wavelet tree, mirroring the reference algorithm's own
// independent frequency pass (§4.H is a self-contained module).
func Build(g *graph.Graph) *Doubling {
	d := &Doubling{n: g.N, s: g.S, h: 1}
	d.pred = make([]int, d.n)
	for i := 0; i < d.s; i++ {
		d.pred[i] = noPred
	}
	d.lcp = make([]lcpval.Value, d.n)
	d.bucket = bitvector.New(d.n)

	var freq [128]int
	for _, c := range g.L {
		freq[c]++
	}

	d.bucket.Set(0)
	d.bucket.Set(d.s)
	var starts [128]int
	sum := d.s
	for c := 0; c < 128; c++ {
		if freq[c] == 0 {
			continue
		}
		starts[c] = sum
		d.bucket.Set(sum)
		d.lcp[sum] = lcpval.Len(0)
		d.sigma++
		sum += freq[c]
	}
	d.bucket.Rebuild()
	d.rmq = newSparseTable(d.lcp)

	cursor := starts
	for k, c := range g.L {
		dest := cursor[c]
		cursor[c]++
		d.pred[dest] = g.StateOf(k)
	}
	return d
}

// NumStates returns n.
func (d *Doubling) NumStates() int { return d.n }

// NumSources returns s.
func (d *Doubling) NumSources() int { return d.s }

// Sigma returns the number of distinct edge labels.
func (d *Doubling) Sigma() int { return d.sigma }

// H returns the current prefix length.
func (d *Doubling) H() int { return d.h }

// Pred returns the predecessor of state i at the current prefix length, or
// (0, false) if i is a source (no predecessor).
func (d *Doubling) Pred(i int) (int, bool) {
	if d.pred[i] == noPred {
		return 0, false
	}
	return d.pred[i], true
}

// Bucket returns the id of the length-h bucket containing state i: the
// number of bucket-start positions at or before i.
func (d *Doubling) Bucket(i int) int {
	return d.bucket.Rank1(i + 1)
}

// RMQ returns the minimum LCP value over the half-open range (i,j], i.e.
// positions i+1..j.
func (d *Doubling) RMQ(i, j int) lcpval.Value {
	return d.lcp[d.rmq.query(i+1, j)]
}

// LCPAt returns the current value of LCP entry i.
func (d *Doubling) LCPAt(i int) lcpval.Value { return d.lcp[i] }

// UpdateLCP sets LCP entry i. The caller must call RebuildRMQ (directly, or
// implicitly via Step) before the next RMQ call.
func (d *Doubling) UpdateLCP(i int, v lcpval.Value) { d.lcp[i] = v }

// LCPVector returns the current LCP vector. The slice is not copied;
// callers must not mutate it.
func (d *Doubling) LCPVector() []lcpval.Value { return d.lcp }

// Step doubles the prefix length and updates M, I and H's RMQ support for
// the new length. It returns false once h exceeds n-s, signaling that
// prefix doubling has converged.
func (d *Doubling) Step() bool {
	d.h *= 2
	if d.h > d.n-d.s {
		return false
	}
	d.updatePredecessorVector()
	d.updateBucketVector()
	d.rmq = newSparseTable(d.lcp)
	return true
}

// updatePredecessorVector advances every predecessor from distance h/2 to
// distance h using pred_{2h}(i) = pred_h(pred_h(i)). Iteration must run in
// ascending i: the branch on M[i] > i vs M[i] <= i decides whether M[M[i]]
// still holds the pre-update (pred_h) value or must be read from the
// scratch copy instead, and that is only correct when earlier indices have
// already been updated by the time a later index needs them.
func (d *Doubling) updatePredecessorVector() {
	temp := make([]int, d.n)
	for i := range temp {
		temp[i] = noPred
	}
	for i := d.s; i < d.n; i++ {
		if d.pred[i] == noPred {
			continue
		}
		temp[i] = d.pred[i]
		if d.pred[i] > i {
			d.pred[i] = d.pred[d.pred[i]]
		} else {
			d.pred[i] = temp[d.pred[i]]
		}
	}
}

// updateBucketVector marks every state whose LCP was filled in the
// previous round and is at least h/2 as the start of a new bucket.
func (d *Doubling) updateBucketVector() {
	hHalf := d.h / 2
	for i := d.s; i < d.n; i++ {
		if d.lcp[i].IsFilled() && d.lcp[i].AtLeast(hHalf) {
			d.bucket.Set(i)
		}
	}
	d.bucket.Rebuild()
}
