// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package queue

import "math"

// pair is a half-open interval of state indices.
type pair struct{ A, B int }

// Interval is the hybrid queue used by the Beller-generalized BFS (§4.E):
// items are (a,b) state intervals.
type Interval struct {
	n       int
	trigger float64

	fifo     []pair
	fifoHead int

	curBitmap, nextBitmap bool
	b, e                  *bitmap
	bn, en                *bitmap
	bitSet                int

	size int
	l    int
}

// NewInterval returns a queue sized for states 0..n-1 (n+1 bitmap slots to
// accommodate the half-open interval's closed right endpoint at n).
func NewInterval(n int) *Interval {
	q := &Interval{n: n + 1, l: -1, trigger: math.Inf(1)}
	if n >= 2 {
		q.trigger = float64(n) / (2 * math.Log(float64(n)))
	}
	return q
}

// Push enqueues (a,b) into the layer currently being filled.
func (q *Interval) Push(a, b int) {
	if q.nextBitmap {
		q.bn.set(a)
		q.en.set(b)
		q.bitSet++
		return
	}
	q.fifo = append(q.fifo, pair{a, b})
}

// Advance closes the current layer, promotes the filled next layer to
// current, and decides the representation of the new next layer based on
// how large the layer just closed turned out to be. It returns false iff
// the new current layer is empty, which signals BFS termination.
func (q *Interval) Advance() bool {
	if q.fifoHead > 0 {
		q.fifo = q.fifo[q.fifoHead:]
		q.fifoHead = 0
	}
	q.l++
	q.curBitmap = q.nextBitmap
	if q.curBitmap {
		q.size = q.bitSet
		q.b, q.bn = q.bn, q.b
		q.e, q.en = q.en, q.e
		q.bitSet = 0
	} else {
		q.size = len(q.fifo)
		q.b, q.e = nil, nil
	}

	if q.size == 0 {
		return false
	}

	if float64(q.size) > q.trigger {
		q.nextBitmap = true
		if q.bn == nil {
			q.bn, q.en = newBitmap(q.n), newBitmap(q.n)
		} else {
			q.bn.reset()
			q.en.reset()
		}
	} else {
		q.nextBitmap = false
		q.bn, q.en = nil, nil
	}
	return true
}

// Pop removes and returns one item from the current layer. The caller must
// ensure the queue is non-empty.
func (q *Interval) Pop() (a, b int) {
	q.size--
	if q.curBitmap {
		return q.b.popLeftmost(), q.e.popLeftmost()
	}
	p := q.fifo[q.fifoHead]
	q.fifoHead++
	return p.A, p.B
}

// Empty reports whether the current layer has been fully drained.
func (q *Interval) Empty() bool { return q.size == 0 }

// Size returns the number of items remaining in the current layer.
func (q *Interval) Size() int { return q.size }

// L returns the LCP value currently being assigned to popped items.
func (q *Interval) L() int { return q.l }
