// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package wavelet

import "container/heap"

// code is a canonical prefix code: the top len bits of val (MSB-first) are
// significant.
type code struct {
	val uint32
	len uint8
}

// huffmanNode is either a leaf (sym valid) or an internal node (left/right
// set); used only to discover code lengths, the same separation the
// teacher's prefix-code machinery draws between "code lengths" and "code
// values" (brotli/prefix.go, flate/prefix.go both keep a length table
// separate from the value assignment).
type huffmanNode struct {
	freq        uint64
	sym         int // -1 for internal nodes
	left, right *huffmanNode
}

type huffmanHeap []*huffmanNode

func (h huffmanHeap) Len() int { return len(h) }
func (h huffmanHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	// Break ties deterministically on symbol so construction is
	// reproducible across runs (needed for the "re-running an engine
	// produces a byte-identical .LCP" property, §8).
	return h[i].sym < h[j].sym
}
func (h huffmanHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *huffmanHeap) Push(x interface{}) { *h = append(*h, x.(*huffmanNode)) }
func (h *huffmanHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// codeLengths runs the standard Huffman merge algorithm over a symbol
// frequency table and returns, for each symbol with freq[sym] > 0, the
// depth of its leaf in the merge tree. The alphabet here (at most 127
// distinct ASCII labels, §3) never needs DEFLATE-style code-length capping,
// so this is the textbook algorithm rather than a length-limited variant.
func codeLengths(freq []uint64) map[int]uint8 {
	h := &huffmanHeap{}
	for sym, f := range freq {
		if f > 0 {
			heap.Push(h, &huffmanNode{freq: f, sym: sym})
		}
	}
	if h.Len() == 0 {
		return map[int]uint8{}
	}
	if h.Len() == 1 {
		only := (*h)[0]
		return map[int]uint8{only.sym: 1}
	}
	for h.Len() > 1 {
		a := heap.Pop(h).(*huffmanNode)
		b := heap.Pop(h).(*huffmanNode)
		heap.Push(h, &huffmanNode{freq: a.freq + b.freq, sym: -1, left: a, right: b})
	}
	root := heap.Pop(h).(*huffmanNode)

	lens := make(map[int]uint8)
	var walk func(n *huffmanNode, depth uint8)
	walk = func(n *huffmanNode, depth uint8) {
		if n.sym >= 0 {
			lens[n.sym] = depth
			return
		}
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(root, 0)
	return lens
}

// assignCanonicalCodes assigns canonical prefix code values to a set of
// (symbol, length) pairs, following the same "next-code-per-length" table
// construction used to assign canonical DEFLATE/Brotli codes elsewhere
// (prefixDecoder.Init's assignCodes branch) —
// only the bit order differs: this wavelet tree reads codes MSB-first while
// descending the tree, so no bit-reversal is applied.
func assignCanonicalCodes(lens map[int]uint8) map[int]code {
	const maxBits = 32
	var bitCount [maxBits + 1]int
	maxLen := uint8(0)
	syms := make([]int, 0, len(lens))
	for sym, l := range lens {
		bitCount[l]++
		if l > maxLen {
			maxLen = l
		}
		syms = append(syms, sym)
	}
	// Sort symbols ascending so identical-length codes are assigned in a
	// fixed, reproducible order.
	for i := 1; i < len(syms); i++ {
		for j := i; j > 0 && syms[j-1] > syms[j]; j-- {
			syms[j-1], syms[j] = syms[j], syms[j-1]
		}
	}

	var nextCode [maxBits + 1]uint32
	var c uint32
	for bits := uint8(1); bits <= maxLen; bits++ {
		c = (c + uint32(bitCount[bits-1])) << 1
		nextCode[bits] = c
	}

	out := make(map[int]code, len(syms))
	for _, sym := range syms {
		l := lens[sym]
		out[sym] = code{val: nextCode[l], len: l}
		nextCode[l]++
	}
	return out
}

func (c code) bit(level uint8) uint32 {
	return (c.val >> (uint(c.len) - uint(level) - 1)) & 1
}
