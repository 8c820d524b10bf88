// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package stabbing implements the interval-stabbing side-structure (§3,
// §4.F/§4.G): a bit-packed view of L, divided into fixed-size blocks, that
// answers "which maximal monochromatic intervals does position i fall
// strictly inside, and have they been reported already" in roughly
// constant time per result. This underlies the interval-stabbing BFS
// (§4.G), the second LCP-computation strategy this module provides.
package stabbing

import (
	"github.com/regindex/Labeled-Graph-LCP/fmindex"
)

// blockSize is the number of L positions per block (sigma in the
// reference algorithm: coincidentally equal to the alphabet size, which
// keeps the per-block scratch array exactly alphabet-sized).
const blockSize = 128

// bits128 is a 128-bit set, one bit per possible edge label, dense enough
// that get/set/clear are two word ops instead of a bitvector.Vector's
// rank-indexed machinery (which this package never needs: it only ever
// tests, sets and clears single bits).
type bits128 [2]uint64

func (b *bits128) set(i int)     { b[i/64] |= 1 << uint(i%64) }
func (b *bits128) clear(i int)   { b[i/64] &^= 1 << uint(i%64) }
func (b bits128) get(i int) bool { return b[i/64]&(1<<uint(i%64)) != 0 }

// Bridge is one maximal monochromatic interval reported by Stab: the
// interval (left, right] over label Char, identified by its right
// endpoint, as the glossary's "Bridge" is defined.
type Bridge struct {
	Char  byte
	Right int
}

// Stabbing is the packed side-structure over one L sequence.
type Stabbing struct {
	idx *fmindex.Index

	body    [][blockSize]byte // per-block copy of L, zero-padded in the last block
	borders []bits128         // length len(body)+1; borders[k] = labels crossing the boundary between block k-1 and block k
	stabbed []bits128         // per-block, per-local-position "already reported" flags
}

// Build constructs the packed side-structure over l (the same label
// sequence the FM-index idx was built from).
func Build(l []byte, idx *fmindex.Index) *Stabbing {
	nBlocks := (len(l) + blockSize - 1) / blockSize
	if nBlocks == 0 {
		nBlocks = 1
	}
	s := &Stabbing{
		idx:     idx,
		body:    make([][blockSize]byte, nBlocks),
		borders: make([]bits128, nBlocks+1),
		stabbed: make([]bits128, nBlocks),
	}
	for k := range s.body {
		end := (k + 1) * blockSize
		if end > len(l) {
			end = len(l)
		}
		copy(s.body[k][:], l[k*blockSize:end])
	}

	var lastBlock [128]int
	for c := range lastBlock {
		lastBlock[c] = -1
	}
	for pos, c := range l {
		blockNo := pos/blockSize + 1 // 1-indexed count of blocks touched so far
		if prev := lastBlock[c]; prev != -1 && prev != blockNo {
			for j := prev; j < blockNo; j++ {
				s.borders[j].set(int(c))
			}
		}
		lastBlock[c] = blockNo
	}
	return s
}

// getCrossingInterval tests whether position i falls inside the maximal
// monochromatic interval over label c that straddles the block containing
// i (i.e. one of its two occurrences bounding the interval lies in a
// different block). It reports the interval's right endpoint once, the
// first time it is stabbed.
func (s *Stabbing) getCrossingInterval(i int, c byte) (right int, crossed bool) {
	rank := s.idx.Rank(c, i)
	freq := s.idx.FreqWT(c)
	if rank <= 0 || rank >= freq {
		return 0, false
	}
	left := s.idx.SelectWT(c, rank)
	right = s.idx.SelectWT(c, rank+1)

	leftBlock := left / blockSize
	localOff := left - leftBlock*blockSize
	if s.stabbed[leftBlock].get(localOff) {
		return 0, false
	}
	if i <= left || i > right {
		return 0, false
	}
	s.stabbed[leftBlock].set(localOff)
	for j := leftBlock; j < right/blockSize; j++ {
		s.borders[j+1].clear(int(c))
	}
	return right, true
}

// Stab returns every maximal monochromatic interval that strictly contains
// i and has not yet been reported, scanning i's own block and the two
// blocks' worth of border labels that cross into it (§3, §4.G).
func (s *Stabbing) Stab(i int) []Bridge {
	blk := i / blockSize
	offset := i - blk*blockSize
	body := &s.body[blk]

	var seenAt [128]int
	for i := range seenAt {
		seenAt[i] = -1
	}
	const handled = -2

	var res []Bridge
	for j := 0; j < offset; j++ {
		seenAt[body[j]] = j
	}
	for j := offset; j < blockSize; j++ {
		c := body[j]
		if seenAt[c] > -1 {
			localPos := seenAt[c]
			if !s.stabbed[blk].get(localPos) {
				res = append(res, Bridge{Char: c, Right: blk*blockSize + j})
				s.stabbed[blk].set(localPos)
			}
			seenAt[c] = handled
		}
	}

	for c := 0; c < 128; c++ {
		if seenAt[c] == handled {
			continue
		}
		if s.borders[blk].get(c) || s.borders[blk+1].get(c) {
			if right, ok := s.getCrossingInterval(i, byte(c)); ok {
				res = append(res, Bridge{Char: byte(c), Right: right})
			}
		}
	}
	return res
}

// ZeroEntries returns, for every distinct edge label c, the destination
// state forward(first_occurrence(c), c) — the set of states whose LCP is
// 0 by construction, seeding the interval-stabbing BFS's first layer
// (§4.G).
func (s *Stabbing) ZeroEntries() []int {
	firsts := s.idx.FirstOccurrence()
	res := make([]int, 0, len(firsts))
	for _, f := range firsts {
		res = append(res, s.idx.Forward(f.Lo, f.Char))
	}
	return res
}
