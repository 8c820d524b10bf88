// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package queue

import "math"

// Single is the hybrid queue used by the interval-stabbing BFS (§4.G):
// items are plain state indices. Its density trigger is n/ln(n), twice as
// permissive as Interval's n/(2 ln n), since each item here costs one
// bitmap rather than two (§4.D).
type Single struct {
	n       int
	trigger float64

	fifo     []int
	fifoHead int

	curBitmap, nextBitmap bool
	b, bn                 *bitmap
	bitSet                int

	size int
	l    int
}

// NewSingle returns a queue sized for states 0..n-1.
func NewSingle(n int) *Single {
	q := &Single{n: n + 1, l: -1, trigger: math.Inf(1)}
	if n >= 2 {
		q.trigger = float64(n) / math.Log(float64(n))
	}
	return q
}

// Push enqueues i into the layer currently being filled.
func (q *Single) Push(i int) {
	if q.nextBitmap {
		q.bn.set(i)
		q.bitSet++
		return
	}
	q.fifo = append(q.fifo, i)
}

// Advance closes the current layer and promotes the next layer to current;
// see Interval.Advance.
func (q *Single) Advance() bool {
	if q.fifoHead > 0 {
		q.fifo = q.fifo[q.fifoHead:]
		q.fifoHead = 0
	}
	q.l++
	q.curBitmap = q.nextBitmap
	if q.curBitmap {
		q.size = q.bitSet
		q.b, q.bn = q.bn, q.b
		q.bitSet = 0
	} else {
		q.size = len(q.fifo)
		q.b = nil
	}

	if q.size == 0 {
		return false
	}

	if float64(q.size) > q.trigger {
		q.nextBitmap = true
		if q.bn == nil {
			q.bn = newBitmap(q.n)
		} else {
			q.bn.reset()
		}
	} else {
		q.nextBitmap = false
		q.bn = nil
	}
	return true
}

// Pop removes and returns one item from the current layer.
func (q *Single) Pop() int {
	q.size--
	if q.curBitmap {
		return q.b.popLeftmost()
	}
	v := q.fifo[q.fifoHead]
	q.fifoHead++
	return v
}

// Empty reports whether the current layer has been fully drained.
func (q *Single) Empty() bool { return q.size == 0 }

// Size returns the number of items remaining in the current layer.
func (q *Single) Size() int { return q.size }

// L returns the LCP value currently being assigned to popped items.
func (q *Single) L() int { return q.l }
