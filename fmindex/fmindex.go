// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package fmindex implements the WG-FM-index (§4.C): forward search over a
// (pruned) Wheeler automaton built on top of a wavelet tree over the
// outgoing-label sequence L and the out-degree bitvector, generalizing the
// classical FM-index's LF-mapping the way a plain BWT's inverse transform
// generalizes via cumulative character counts (the same cumulative-count
// idea bzip2/bwt.go's decodeBWT relies on).
package fmindex

import (
	"github.com/regindex/Labeled-Graph-LCP/graph"
	"github.com/regindex/Labeled-Graph-LCP/wavelet"
)

// Index is a constructed WG-FM-index over a loaded Graph.
type Index struct {
	g     *graph.Graph
	l     *wavelet.Tree
	cless [128]int // cless[c] = number of edges in L with label strictly less than c
}

// New builds the wavelet tree over g.L and the C array, and returns the
// ready-to-query index. g is retained.
func New(g *graph.Graph) *Index {
	idx := &Index{g: g, l: wavelet.Build(g.L)}
	var cum int
	for c := 0; c < 128; c++ {
		idx.cless[c] = cum
		cum += int(idx.l.Freq(byte(c)))
	}
	return idx
}

// NumStates returns n.
func (idx *Index) NumStates() int { return idx.g.N }

// NumSources returns s.
func (idx *Index) NumSources() int { return idx.g.S }

// NumEdges returns m (= L's length).
func (idx *Index) NumEdges() int { return idx.g.M }

// Alphabet returns the distinct edge labels, ascending.
func (idx *Index) Alphabet() []byte { return idx.l.Alphabet() }

// PosToNode maps an L position to the state it is outgoing from
// (state(p) = rank0(select1(p+1)), the number of 0-bits in front of edge
// p's 1-bit, §3).
func (idx *Index) PosToNode(p int) int {
	return idx.g.Out.Rank0(idx.g.Out.Select1(p + 1))
}

// StateToPos maps a state-order boundary i to the L position where the
// edges of state i begin: rank1(select0(i)), the number of 1-bits in front
// of the i-th 0-bit (§3, §4.C). A boundary past the last 0-bit maps to m.
func (idx *Index) StateToPos(i int) int {
	if i > idx.g.Out.Rank0(idx.g.Out.Size()) {
		return idx.g.M
	}
	return idx.g.Out.Rank1(idx.g.Out.Select0(i))
}

// ChildInterval is one non-empty destination interval produced by ForwardAll:
// the states reachable from the queried interval by exactly one edge labeled
// Char.
type ChildInterval struct {
	Char byte
	Lo   int
	Hi   int
}

// ForwardAll runs one generalized forward-search step over the state
// interval [i,j): for every label c reachable from any state in [i,j), it
// returns the destination-state interval reached by edges labeled c (§4.C).
func (idx *Index) ForwardAll(i, j int) []ChildInterval {
	lo, hi := idx.StateToPos(i), idx.StateToPos(j)
	syms := idx.l.IntervalSymbols(lo, hi)
	out := make([]ChildInterval, 0, len(syms))
	for _, sr := range syms {
		shift := idx.cless[sr.Char] + idx.g.S
		a, b := sr.RankLo+shift, sr.RankHi+shift
		if a < b {
			out = append(out, ChildInterval{Char: sr.Char, Lo: a, Hi: b})
		}
	}
	return out
}

// Forward runs a single-state, single-label forward-search step: p is
// already an L position (not a raw state index), matching the single-edge
// call sites in the stabbing engine that have already resolved one (the
// Right end of a bridge returned by Stab) (§4.C).
func (idx *Index) Forward(p int, c byte) int {
	return idx.l.Rank(c, p) + idx.cless[c] + idx.g.S
}

// FirstOccurrence returns, for every label c in the alphabet, the pair
// (c, select(c,1)-equivalent first L position), used to seed the
// interval-stabbing BFS (§4.C). Select is 1-indexed; the "0-th" occurrence
// convention used below corresponds to k=1 here.
func (idx *Index) FirstOccurrence() []ChildInterval {
	alpha := idx.l.Alphabet()
	out := make([]ChildInterval, len(alpha))
	for k, c := range alpha {
		p := idx.l.Select(c, 1)
		out[k] = ChildInterval{Char: c, Lo: p, Hi: p + 1}
	}
	return out
}

// Rank exposes the wavelet tree's rank, used directly by the stabbing
// engine when it already holds an L position.
func (idx *Index) Rank(c byte, i int) int { return idx.l.Rank(c, i) }

// SelectWT exposes the wavelet tree's select (1-indexed), used by the
// stabbing engine to locate the pair of occurrences of c bounding a
// candidate bridge.
func (idx *Index) SelectWT(c byte, k int) int { return idx.l.Select(c, k) }

// FreqWT returns the total number of occurrences of c in L.
func (idx *Index) FreqWT(c byte) int { return int(idx.l.Freq(c)) }

// Cless returns the number of edges labeled strictly less than c.
func (idx *Index) Cless(c byte) int { return idx.cless[c] }

// Sources returns s, the shift applied to every destination-state index.
func (idx *Index) Sources() int { return idx.g.S }
