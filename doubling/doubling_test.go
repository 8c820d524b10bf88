// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package doubling

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/regindex/Labeled-Graph-LCP/graph"
	"github.com/regindex/Labeled-Graph-LCP/lcpval"
)

func loadE1(t *testing.T) *graph.Graph {
	t.Helper()
	dir, err := ioutil.TempDir("", "doubling-e1")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	base := filepath.Join(dir, "e1")
	ioutil.WriteFile(base+".L", []byte("aaaa"), 0o644)
	ioutil.WriteFile(base+".out", []byte("10101010"), 0o644)
	ioutil.WriteFile(base+".in", []byte("101111"), 0o644)
	g, err := graph.Load(base)
	if err != nil {
		t.Fatalf("graph.Load: %v", err)
	}
	return g
}

func TestBuildLinearChain(t *testing.T) {
	d := Build(loadE1(t))
	if d.Sigma() != 1 {
		t.Fatalf("Sigma() = %d, want 1", d.Sigma())
	}
	wantPred := []struct {
		ok   bool
		pred int
	}{
		{false, 0}, {true, 0}, {true, 1}, {true, 2}, {true, 3},
	}
	for i, w := range wantPred {
		p, ok := d.Pred(i)
		if ok != w.ok || (ok && p != w.pred) {
			t.Errorf("Pred(%d) = (%d,%v), want (%d,%v)", i, p, ok, w.pred, w.ok)
		}
	}
	if got, want := d.LCPAt(1), lcpval.Len(0); got != want {
		t.Errorf("LCPAt(1) = %v, want %v", got, want)
	}
	if d.Bucket(0) == d.Bucket(4) {
		t.Errorf("states 0 and 4 should not share a bucket at h=1 if bucket ids advance")
	}
}

func TestStepConverges(t *testing.T) {
	d := Build(loadE1(t))
	steps := 0
	for d.Step() {
		steps++
		if steps > 10 {
			t.Fatal("Step did not converge")
		}
	}
	if d.H() <= d.NumStates()-d.NumSources() {
		// h must have grown past n-s to terminate
		t.Errorf("H() = %d should exceed n-s = %d on termination", d.H(), d.NumStates()-d.NumSources())
	}
}

func TestRMQReflectsUpdates(t *testing.T) {
	d := Build(loadE1(t))
	d.UpdateLCP(2, lcpval.Len(5))
	d.UpdateLCP(3, lcpval.Len(1))
	st := newSparseTable(d.lcp)
	d.rmq = st
	got := d.RMQ(1, 3) // min over positions 2..3
	if got != lcpval.Len(1) {
		t.Errorf("RMQ(1,3) = %v, want Len(1)", got)
	}
}
