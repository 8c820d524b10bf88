// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package doubling

import (
	"math/bits"

	"github.com/regindex/Labeled-Graph-LCP/lcpval"
)

// sparseTable is a static range-minimum-query index, rebuilt from scratch
// whenever the underlying LCP vector has been bulk-mutated (mirrors the
// bitvector package's Rebuild-after-mutate discipline, since a sparse
// table has no efficient single-point-update story).
type sparseTable struct {
	table [][]int // table[k][i] = argmin over values[i : i+2^k)
	vals  []lcpval.Value
}

func newSparseTable(vals []lcpval.Value) *sparseTable {
	n := len(vals)
	st := &sparseTable{vals: vals}
	if n == 0 {
		st.table = [][]int{{}}
		return st
	}
	logn := bits.Len(uint(n)) - 1 // floor(log2(n)): largest k with 2^k <= n
	st.table = make([][]int, logn+1)
	st.table[0] = make([]int, n)
	for i := range st.table[0] {
		st.table[0][i] = i
	}
	for k := 1; k <= logn; k++ {
		half := 1 << uint(k-1)
		size := n - (1 << uint(k)) + 1
		if size <= 0 {
			st.table[k] = nil
			continue
		}
		row := make([]int, size)
		prev := st.table[k-1]
		for i := 0; i < size; i++ {
			left, right := prev[i], prev[i+half]
			row[i] = argmin(vals, left, right)
		}
		st.table[k] = row
	}
	return st
}

func argmin(vals []lcpval.Value, a, b int) int {
	if vals[b].Less(vals[a]) {
		return b
	}
	return a
}

// query returns the index of the minimum value in the closed range [l,r].
func (st *sparseTable) query(l, r int) int {
	length := r - l + 1
	k := bits.Len(uint(length)) - 1
	row := st.table[k]
	left := row[l]
	right := row[r-(1<<uint(k))+1]
	return argmin(st.vals, left, right)
}
