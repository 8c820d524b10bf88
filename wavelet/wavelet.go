// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package wavelet implements a Huffman-shaped wavelet tree over the
// outgoing-label sequence L of a (pruned) Wheeler automaton (§4.B). It
// supports rank/select over individual labels and the interval_symbols
// primitive the WG-FM-index and the interval-stabbing engine both depend
// on.
package wavelet

import (
	"sort"

	"github.com/regindex/Labeled-Graph-LCP/bitvector"
)

// alphabetSize bounds the label alphabet: ASCII bytes in [1,127] (§3); 0 is
// reserved as "absent" and never appears in L.
const alphabetSize = 128

type node struct {
	bv          *bitvector.Vector // nil at leaves
	left, right *node
	sym         byte // valid at leaves only
	leaf        bool
}

// Tree is a Huffman-shaped wavelet tree over a byte sequence.
type Tree struct {
	root     *node
	size     int
	freq     [alphabetSize]uint64
	alphabet []byte // ascending, only symbols with freq>0
	codeOf   [alphabetSize]code
	hasCode  [alphabetSize]bool
}

// Build constructs the wavelet tree over seq. seq is not retained.
func Build(seq []byte) *Tree {
	t := &Tree{size: len(seq)}
	var freq64 [alphabetSize]uint64
	for _, b := range seq {
		if b == 0 || b >= alphabetSize {
			panic(errMalformed("wavelet: label byte out of the [1,127] alphabet"))
		}
		freq64[b]++
	}
	t.freq = freq64
	for sym, f := range freq64 {
		if f > 0 {
			t.alphabet = append(t.alphabet, byte(sym))
		}
	}
	sort.Slice(t.alphabet, func(i, j int) bool { return t.alphabet[i] < t.alphabet[j] })

	lens := codeLengths(freq64[:])
	codes := assignCanonicalCodes(lens)
	for sym, c := range codes {
		t.codeOf[sym] = c
		t.hasCode[sym] = true
	}

	t.root = buildNode(seq, codes, 0)
	return t
}

type errMalformed string

func (e errMalformed) Error() string { return string(e) }

// buildNode recursively partitions seq by successive Huffman-code bits,
// matching the textbook wavelet-tree-shaped-by-a-prefix-code construction:
// every element takes the root-to-leaf path given by its own code, and each
// internal node stores only the one bit distinguishing "went left" from
// "went right" at that depth.
func buildNode(seq []byte, codes map[int]code, depth uint8) *node {
	if len(seq) == 0 {
		return &node{leaf: true}
	}
	first := seq[0]
	uniform := true
	for _, b := range seq {
		if b != first {
			uniform = false
			break
		}
	}
	if uniform {
		return &node{leaf: true, sym: first}
	}

	bv := bitvector.New(len(seq))
	var left, right []byte
	for i, b := range seq {
		if codes[int(b)].bit(depth) == 1 {
			bv.Set(i)
			right = append(right, b)
		} else {
			left = append(left, b)
		}
	}
	bv.Rebuild()
	return &node{
		bv:    bv,
		left:  buildNode(left, codes, depth+1),
		right: buildNode(right, codes, depth+1),
	}
}

// Size returns the length of the original sequence.
func (t *Tree) Size() int { return t.size }

// Alphabet returns the distinct symbols present, in ascending order.
func (t *Tree) Alphabet() []byte { return t.alphabet }

// Freq returns the total number of occurrences of c in the sequence.
func (t *Tree) Freq(c byte) uint64 {
	if int(c) >= alphabetSize {
		return 0
	}
	return t.freq[c]
}

// CharAt returns the k-th symbol (0-indexed) of the ascending alphabet.
func (t *Tree) CharAt(k int) byte { return t.alphabet[k] }

// FreqAt returns the frequency of the k-th symbol (0-indexed) of the
// ascending alphabet.
func (t *Tree) FreqAt(k int) uint64 { return t.freq[t.alphabet[k]] }

// Get returns the symbol at position i.
func (t *Tree) Get(i int) byte {
	n := t.root
	for !n.leaf {
		if n.bv.Get(i) {
			i = n.bv.Rank1(i)
			n = n.right
		} else {
			i = n.bv.Rank0(i)
			n = n.left
		}
	}
	return n.sym
}

// Rank returns the number of occurrences of c in [0, i).
func (t *Tree) Rank(c byte, i int) int {
	if !t.hasCode[c] {
		return 0
	}
	cd := t.codeOf[c]
	n := t.root
	hi := i
	for depth := uint8(0); depth < cd.len; depth++ {
		if n.leaf {
			break
		}
		if cd.bit(depth) == 1 {
			hi = n.bv.Rank1(hi)
			n = n.right
		} else {
			hi = n.bv.Rank0(hi)
			n = n.left
		}
	}
	return hi
}

// Select returns the position of the k-th (1-indexed) occurrence of c. The
// caller must ensure 1 <= k <= Freq(c).
func (t *Tree) Select(c byte, k int) int {
	if !t.hasCode[c] || k <= 0 {
		panic(errMalformed("wavelet: select out of range"))
	}
	if t.root.leaf {
		// A single-symbol tree (Build's uniform fast path) has no
		// bitvector at all: every position holds c.
		return k - 1
	}
	cd := t.codeOf[c]
	path := make([]*node, 0, cd.len+1)
	bitsAtDepth := make([]uint32, 0, cd.len)
	n := t.root
	path = append(path, n)
	for depth := uint8(0); depth < cd.len; depth++ {
		if n.leaf {
			break
		}
		b := cd.bit(depth)
		bitsAtDepth = append(bitsAtDepth, b)
		if b == 1 {
			n = n.right
		} else {
			n = n.left
		}
		path = append(path, n)
	}
	// Walk back up from the leaf's immediate parent to the root. Select1/
	// Select0 already return a 0-indexed position within that node's own
	// sequence; every level above it needs a 1-indexed occurrence count
	// instead, so the result is bumped by one before it feeds the next
	// (shallower) parent. The root-level result is the final answer
	// as-is: it is already the absolute 0-indexed position.
	pos := k
	for d := len(bitsAtDepth) - 1; d >= 0; d-- {
		parent := path[d]
		if bitsAtDepth[d] == 1 {
			pos = parent.bv.Select1(pos)
		} else {
			pos = parent.bv.Select0(pos)
		}
		if d > 0 {
			pos++
		}
	}
	return pos
}

// SymbolRank pairs a distinct symbol occurring in a queried range with its
// rank at the two range endpoints.
type SymbolRank struct {
	Char   byte
	RankLo int
	RankHi int
}

// IntervalSymbols returns, for every distinct symbol c occurring at least
// once in seq[i:j), the triple (c, rank(c,i), rank(c,j)) (§4.B). The order
// of the returned symbols is unspecified; callers must not depend on it.
func (t *Tree) IntervalSymbols(i, j int) []SymbolRank {
	var out []SymbolRank
	if i >= j {
		return out
	}
	var walk func(n *node, lo, hi int)
	walk = func(n *node, lo, hi int) {
		if lo >= hi {
			return
		}
		if n.leaf {
			out = append(out, SymbolRank{Char: n.sym, RankLo: lo, RankHi: hi})
			return
		}
		lo0, hi0 := n.bv.Rank0(lo), n.bv.Rank0(hi)
		lo1, hi1 := n.bv.Rank1(lo), n.bv.Rank1(hi)
		walk(n.left, lo0, hi0)
		walk(n.right, lo1, hi1)
	}
	walk(t.root, i, j)
	return out
}
