// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package oracle

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/regindex/Labeled-Graph-LCP/lcpval"
)

// linear chain: N1->N2->N3->N4->N5, labels a,a,a,a (matches the E1 fixture
// used throughout the other packages). Tokens beyond the 7th (the label,
// ASCII 97 = 'a') are padding to reach the >=8 token threshold that marks a
// genuine edge line, matching the reference parser's line-shape check.
const dotLinearChain = `N1 -> N2 pad pad pad 97 pad
N2 -> N3 pad pad pad 97 pad
N3 -> N4 pad pad pad 97 pad
N4 -> N5 pad pad pad 97 pad
`

func writeDot(t *testing.T, contents string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "oracle")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	path := filepath.Join(dir, "e1.dot")
	if err := ioutil.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDotParsesEdges(t *testing.T) {
	path := writeDot(t, dotLinearChain)
	g, err := LoadDot(path, 5)
	if err != nil {
		t.Fatalf("LoadDot: %v", err)
	}
	want := []int{noPred, 0, 1, 2, 3}
	for i, w := range want {
		if g.Pred[i] != w {
			t.Errorf("Pred[%d] = %d, want %d", i, g.Pred[i], w)
		}
	}
	for i := 1; i < 5; i++ {
		if g.Labels[i] != 'a' {
			t.Errorf("Labels[%d] = %q, want 'a'", i, g.Labels[i])
		}
	}
}

func TestVerifyAcceptsCorrectLCP(t *testing.T) {
	path := writeDot(t, dotLinearChain)
	g, err := LoadDot(path, 5)
	if err != nil {
		t.Fatalf("LoadDot: %v", err)
	}
	// state i's backward history is i 'a' labels ending at the source 0, so
	// states i-1 and i share exactly i-1 labels: LCP[i] = i-1.
	lcp := []lcpval.Value{lcpval.Unknown, lcpval.Len(0), lcpval.Len(1), lcpval.Len(2), lcpval.Len(3)}
	if err := Verify(g, lcp); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestVerifyRejectsWrongLCP(t *testing.T) {
	path := writeDot(t, dotLinearChain)
	g, err := LoadDot(path, 5)
	if err != nil {
		t.Fatalf("LoadDot: %v", err)
	}
	lcp := []lcpval.Value{lcpval.Unknown, lcpval.Len(0), lcpval.Infinite, lcpval.Infinite, lcpval.Infinite}
	if err := Verify(g, lcp); err == nil {
		t.Error("Verify: expected error for LCP[2] = Infinite when the backward histories diverge")
	}
}
