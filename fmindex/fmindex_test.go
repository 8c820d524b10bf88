// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package fmindex

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/regindex/Labeled-Graph-LCP/graph"
)

func loadE1(t *testing.T) *Index {
	t.Helper()
	dir, err := ioutil.TempDir("", "fmindex-e1")
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
	return New(g)
}

func TestForwardChain(t *testing.T) {
	idx := loadE1(t)
	if idx.NumStates() != 5 || idx.NumSources() != 1 || idx.NumEdges() != 4 {
		t.Fatalf("unexpected index shape: n=%d s=%d m=%d", idx.NumStates(), idx.NumSources(), idx.NumEdges())
	}
	// forward(i,c) on successive L positions should walk state 0 -> 1 -> 2 -> 3 -> 4.
	want := []int{1, 2, 3, 4}
	for p, w := range want {
		if got := idx.Forward(p, 'a'); got != w {
			t.Errorf("Forward(%d,'a') = %d, want %d", p, got, w)
		}
	}
}

func TestForwardAllSingleton(t *testing.T) {
	idx := loadE1(t)
	// the state interval [0,1) (just state 0) has one outgoing edge labeled 'a'
	// reaching state 1.
	children := idx.ForwardAll(0, 1)
	if len(children) != 1 {
		t.Fatalf("len(children) = %d, want 1", len(children))
	}
	c := children[0]
	if c.Char != 'a' || c.Lo != 1 || c.Hi != 2 {
		t.Errorf("ForwardAll(0,1) = %+v, want {a 1 2}", c)
	}
}
