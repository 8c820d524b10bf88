// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package randwg generates random pruned Wheeler automata in memory for
// the stress-test scenario E5 (σ ≤ 5, n ≤ 512, 100 trials): each generated
// graph is checked by all three engines for agreement and by the
// correctness oracle, without ever touching disk.
//
// Construction builds a random predecessor forest (occasionally with a
// back edge, to exercise the Infinite/cycle path) and derives the Wheeler
// order directly by sorting states on their reversed incoming-label
// history, capped at 1024 steps (twice E5's largest n) — long enough that
// any two histories still equal at that depth are part of the same
// infinite backward cycle, the same reasoning the correctness oracle uses to treat a
// revisited state pair as a confirmed cycle rather than walk forever.
package randwg

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"sort"

	"github.com/regindex/Labeled-Graph-LCP/bitvector"
	"github.com/regindex/Labeled-Graph-LCP/graph"
)

// rand is a deterministic pseudo-random source: an AES-keystream
// construction chosen so a given seed reproduces byte-identical output
// across Go versions.
type rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func newRand(seed int64) *rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	c, _ := aes.NewCipher(key[:])
	return &rand{Block: c}
}

func (r *rand) next() uint64 {
	r.Encrypt(r.blk[:], r.blk[:])
	return binary.LittleEndian.Uint64(r.blk[:8])
}

func (r *rand) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n))
}

// edge is one random predecessor assignment: state dest is reached from
// origin by label.
type edge struct {
	origin, label int
}

// Graph is a generated automaton, in the same shape graph.Load produces,
// plus the raw predecessor/label arrays the oracle can check directly
// without a round trip through a .dot file.
type Graph struct {
	*graph.Graph
	Pred   []int // parallel to Wheeler order; noPred for sources
	Labels []byte
}

const noPred = -1

// Generate builds one random pruned Wheeler automaton with at most
// maxStates states and maxSigma distinct labels, seeded deterministically.
func Generate(seed int64, maxStates, maxSigma int) *Graph {
	r := newRand(seed)
	n := 2 + r.intn(maxStates-1)
	sigma := 1 + r.intn(maxSigma)
	s := 1 + r.intn(n/2+1)
	if s > n {
		s = n
	}

	// original order: 0..s-1 are sources; s..n-1 get a random parent among
	// all states placed so far (including ones that will themselves later
	// be proven non-source), biased to occasionally reattach to a
	// descendant to manufacture a back edge (a deliberate cycle).
	parent := make([]int, n)
	label := make([]byte, n)
	for i := 0; i < s; i++ {
		parent[i] = noPred
	}
	for i := s; i < n; i++ {
		parent[i] = r.intn(i)
		label[i] = byte('a' + r.intn(sigma))
	}
	// Occasionally rewire one non-source to point forward, creating a
	// cycle, to exercise the Infinite path (E4-style stress).
	if n > s+1 && r.intn(4) == 0 {
		i := s + r.intn(n-s)
		j := s + r.intn(n-s)
		if i != j {
			parent[i] = j
			label[i] = byte('a' + r.intn(sigma))
		}
	}

	order := wheelerOrder(n, s, parent, label)

	// order[w] = original state id occupying Wheeler position w.
	// wheelerPos[orig] = inverse mapping.
	wheelerPos := make([]int, n)
	for w, orig := range order {
		wheelerPos[orig] = w
	}

	// Build L in Wheeler (origin-state) order: each state's outgoing
	// edges, grouped, labels only (destinations are implicit via the
	// parent/label arrays already computed).
	children := make([][]int, n)
	for i := s; i < n; i++ {
		children[parent[i]] = append(children[parent[i]], i)
	}

	var l []byte
	var outBits []bool
	for w := 0; w < n; w++ {
		orig := order[w]
		kids := children[orig]
		sort.Slice(kids, func(a, b int) bool { return wheelerPos[kids[a]] < wheelerPos[kids[b]] })
		if w >= s {
			outBits = append(outBits, false)
		}
		for range kids {
			outBits = append(outBits, true)
		}
	}
	for w := 0; w < n; w++ {
		orig := order[w]
		for _, k := range children[orig] {
			l = append(l, label[k])
		}
	}

	out := bitvector.New(len(outBits))
	for i, b := range outBits {
		if b {
			out.Set(i)
		}
	}
	out.Rebuild()

	g := &graph.Graph{L: l, Out: out, N: n, S: s, M: len(l)}

	predByWheeler := make([]int, n)
	labelByWheeler := make([]byte, n)
	for w := 0; w < n; w++ {
		orig := order[w]
		if parent[orig] == noPred {
			predByWheeler[w] = noPred
		} else {
			predByWheeler[w] = wheelerPos[parent[orig]]
			labelByWheeler[w] = label[orig]
		}
	}

	return &Graph{Graph: g, Pred: predByWheeler, Labels: labelByWheeler}
}

// wheelerOrder sorts all n original-numbered states into Wheeler order:
// sources first (by id, their relative order among themselves is free,
// since no backward history distinguishes them), then every other state
// ordered by its reversed incoming-label history, deepest-cycle ties
// broken arbitrarily but consistently.
func wheelerOrder(n, s int, parent []int, label []byte) []int {
	const maxDepth = 1024 // 2 * max n (E5's ceiling is 512)

	history := make([][]byte, n)
	for i := 0; i < n; i++ {
		var h []byte
		cur := i
		for step := 0; step < maxDepth && parent[cur] != noPred; step++ {
			h = append(h, label[cur])
			cur = parent[cur]
		}
		history[i] = h
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		sa, sb := parent[ia] == noPred, parent[ib] == noPred
		if sa != sb {
			return sa // sources sort first
		}
		if sa && sb {
			return ia < ib
		}
		ha, hb := history[ia], history[ib]
		for k := 0; k < len(ha) && k < len(hb); k++ {
			if ha[k] != hb[k] {
				return ha[k] < hb[k]
			}
		}
		if len(ha) != len(hb) {
			return len(ha) < len(hb)
		}
		return ia < ib
	})
	return order
}
