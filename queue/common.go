// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package queue implements the hybrid BFS queue (§4.D): each LCP layer is
// held either as a plain FIFO of items or as one or two fixed-size bitmaps
// scanned word-at-a-time with a trailing-zero-count primitive. The choice
// is made at Advance, for the layer about to be filled, from the size of
// the layer just promoted compared with the density trigger; a layer does
// not change representation while it is being filled — the same representation-per-layer
// trick bitvector-backed formats elsewhere in this module use, generalized
// per Beller et al.'s hybrid queue.
//
// This is exposed as two monomorphic types, Interval and Single, rather
// than one generic queue: the Beller engine only ever pushes interval
// pairs and the interval-stabbing engine only ever pushes single indices.
package queue

import "math/bits"

// bitmap is a fixed-size bit array scanned monotonically from the low end,
// the same "clear bits as you find them, never move backward" discipline
// the original hybrid queue relies on to make push O(1) and pop amortized
// O(1) once a layer has switched to bitmap representation.
type bitmap struct {
	words  []uint64
	cursor int // word index already fully drained
}

func newBitmap(n int) *bitmap {
	return &bitmap{words: make([]uint64, (n+64)/64+1)}
}

func (bm *bitmap) reset() {
	for i := range bm.words {
		bm.words[i] = 0
	}
	bm.cursor = 0
}

func (bm *bitmap) set(i int) {
	bm.words[i/64] |= 1 << uint(i%64)
}

// popLeftmost returns the position of the lowest remaining set bit and
// clears it. The caller must ensure at least one bit remains.
func (bm *bitmap) popLeftmost() int {
	for bm.words[bm.cursor] == 0 {
		bm.cursor++
	}
	w := bm.words[bm.cursor]
	pos := bm.cursor*64 + bits.TrailingZeros64(w)
	bm.words[bm.cursor] &^= 1 << uint(pos%64)
	return pos
}
