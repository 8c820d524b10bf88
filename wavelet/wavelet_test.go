// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package wavelet

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func naiveRank(seq []byte, c byte, i int) int {
	n := 0
	for _, b := range seq[:i] {
		if b == c {
			n++
		}
	}
	return n
}

func TestGetRankSelect(t *testing.T) {
	seq := []byte("abracadabraabc")
	tr := Build(seq)
	if tr.Size() != len(seq) {
		t.Fatalf("size = %d, want %d", tr.Size(), len(seq))
	}
	for i, want := range seq {
		if got := tr.Get(i); got != want {
			t.Errorf("get(%d) = %q, want %q", i, got, want)
		}
	}
	for _, c := range tr.Alphabet() {
		for i := 0; i <= len(seq); i++ {
			if got, want := tr.Rank(c, i), naiveRank(seq, c, i); got != want {
				t.Errorf("rank(%q,%d) = %d, want %d", c, i, got, want)
			}
		}
		freq := int(tr.Freq(c))
		for k := 1; k <= freq; k++ {
			pos := tr.Select(c, k)
			if seq[pos] != c {
				t.Errorf("select(%q,%d) = %d, but seq[%d] = %q", c, k, pos, pos, seq[pos])
			}
			if tr.Rank(c, pos) != k-1 {
				t.Errorf("rank(%q,select(%q,%d)) = %d, want %d", c, c, k, tr.Rank(c, pos), k-1)
			}
		}
	}
}

func TestSelectMultiBitCode(t *testing.T) {
	seq := []byte("abcabc")
	tr := Build(seq)
	if got := tr.Select('c', 2); got != 5 {
		t.Fatalf("select('c',2) = %d, want 5", got)
	}
}

func TestSelectSingleSymbolAlphabet(t *testing.T) {
	seq := []byte("aaaa")
	tr := Build(seq)
	for k := 1; k <= len(seq); k++ {
		if got, want := tr.Select('a', k), k-1; got != want {
			t.Errorf("select('a',%d) = %d, want %d", k, got, want)
		}
	}
}

func TestIntervalSymbols(t *testing.T) {
	seq := []byte("mississippi")
	tr := Build(seq)
	for i := 0; i < len(seq); i++ {
		for j := i; j <= len(seq); j++ {
			got := tr.IntervalSymbols(i, j)
			gotSet := map[byte][2]int{}
			for _, sr := range got {
				gotSet[sr.Char] = [2]int{sr.RankLo, sr.RankHi}
			}
			want := map[byte][2]int{}
			for _, c := range tr.Alphabet() {
				lo, hi := tr.Rank(c, i), tr.Rank(c, j)
				if hi > lo {
					want[c] = [2]int{lo, hi}
				}
			}
			if diff := cmp.Diff(want, gotSet); diff != "" {
				t.Fatalf("interval_symbols(%d,%d) mismatch (-want +got):\n%s", i, j, diff)
			}
		}
	}
}

func TestRandomAlphabetOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seq := make([]byte, 500)
	for i := range seq {
		seq[i] = byte(1 + rng.Intn(20))
	}
	tr := Build(seq)
	alpha := append([]byte(nil), tr.Alphabet()...)
	if !sort.SliceIsSorted(alpha, func(i, j int) bool { return alpha[i] < alpha[j] }) {
		t.Fatalf("alphabet not sorted: %v", alpha)
	}
	for k, c := range alpha {
		if tr.CharAt(k) != c {
			t.Errorf("CharAt(%d) = %q, want %q", k, tr.CharAt(k), c)
		}
		if tr.FreqAt(k) != tr.Freq(c) {
			t.Errorf("FreqAt(%d) = %d, want %d", k, tr.FreqAt(k), tr.Freq(c))
		}
	}
}
