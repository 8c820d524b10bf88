// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package lcp

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/regindex/Labeled-Graph-LCP/doubling"
	"github.com/regindex/Labeled-Graph-LCP/fmindex"
	"github.com/regindex/Labeled-Graph-LCP/graph"
	"github.com/regindex/Labeled-Graph-LCP/lcpval"
	"github.com/regindex/Labeled-Graph-LCP/stabbing"
)

// loadBasepath writes the given .L/.out/.in triple to a temp basepath and
// loads it, failing the test on any error.
func loadBasepath(t *testing.T, l, out, in string) *graph.Graph {
	t.Helper()
	dir, err := ioutil.TempDir("", "lcp")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	base := filepath.Join(dir, "g")
	ioutil.WriteFile(base+".L", []byte(l), 0o644)
	ioutil.WriteFile(base+".out", []byte(out), 0o644)
	ioutil.WriteFile(base+".in", []byte(in), 0o644)
	g, err := graph.Load(base)
	if err != nil {
		t.Fatalf("graph.Load: %v", err)
	}
	return g
}

func wantVector(vals ...int) []lcpval.Value {
	out := make([]lcpval.Value, len(vals))
	for i, v := range vals {
		out[i] = lcpval.Len(v)
	}
	return out
}

func assertEqual(t *testing.T, name string, got, want []lcpval.Value) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length = %d, want %d", name, len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s: LCP[%d] = %v, want %v", name, i, got[i], want[i])
		}
	}
}

// TestE1LinearChain exercises all three engines against end-to-end scenario
// E1 (§8): a linear chain of 5 states on a unary alphabet.
func TestE1LinearChain(t *testing.T) {
	g := loadBasepath(t, "aaaa", "10101010", "101111")
	want := wantVector(0, 0, 1, 2, 3)

	idx := fmindex.New(g)
	assertEqual(t, "Beller", BellerGen(idx), want)

	sds := stabbing.Build(g.L, idx)
	assertEqual(t, "IntervalStabbing", IntervalStabbing(idx, sds), want)

	d := doubling.Build(g)
	assertEqual(t, "PrefixDoubling", PrefixDoubling(d), want)
}

func TestWriteAndReadVectorRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "lcp-io")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	vec := []lcpval.Value{lcpval.Len(0), lcpval.Len(1), lcpval.Infinite, lcpval.Len(3)}
	path := filepath.Join(dir, "g.LCP")
	if _, err := WriteVector(path, vec); err != nil {
		t.Fatalf("WriteVector: %v", err)
	}
	got, err := ReadVector(path)
	if err != nil {
		t.Fatalf("ReadVector: %v", err)
	}
	assertEqual(t, "round-trip", got, vec)
}
