// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package lcp

import (
	"github.com/regindex/Labeled-Graph-LCP/doubling"
	"github.com/regindex/Labeled-Graph-LCP/lcpval"
)

// PrefixDoubling computes the LCP vector by the Manber-Myers-style prefix
// doubling algorithm (§4.I): each round resolves every pair of adjacent
// states whose length-h predecessor buckets already disagree, using the
// doubling data structure's range-minimum support to read off the exact
// divergence point.
func PrefixDoubling(d *doubling.Doubling) []lcpval.Value {
	n := d.NumStates()
	sigma := d.Sigma()
	notFilled := n - sigma - 1

	for {
		for i := 1; i < n; i++ {
			if d.LCPAt(i).IsFilled() {
				continue
			}
			p, pOK := d.Pred(i)
			if !pOK {
				d.UpdateLCP(i, lcpval.Infinite)
				notFilled--
				continue
			}
			// Pred(i-1) defaults to state 0 when i-1 is itself a source; every
			// source permanently shares bucket 1, so this is exactly
			// bucket(pred(i-1)) even when i-1 has no real predecessor.
			q, _ := d.Pred(i - 1)
			if d.Bucket(p) != d.Bucket(q) {
				lo, hi := p, q
				if lo > hi {
					lo, hi = hi, lo
				}
				d.UpdateLCP(i, lcpval.Len(d.H()+mustFinite(d.RMQ(lo, hi))))
				notFilled--
			}
		}
		if notFilled == 0 {
			break
		}
		if !d.Step() {
			break
		}
	}

	out := make([]lcpval.Value, n)
	copy(out, d.LCPVector())
	out[0] = lcpval.Len(0)
	for i, v := range out {
		if v.IsUnknown() {
			out[i] = lcpval.Infinite
		}
	}
	return out
}

// mustFinite extracts an RMQ result's length, which is always finite: the
// doubling data structure only ever stores Len(0) or a later UpdateLCP
// result inside the range an already-converged bucket boundary spans.
func mustFinite(v lcpval.Value) int {
	n, _ := v.Length()
	return n
}
