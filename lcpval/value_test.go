// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package lcpval

import "testing"

func TestOrdering(t *testing.T) {
	if !Len(3).Less(Len(5)) {
		t.Error("Len(3) should sort before Len(5)")
	}
	if !Len(1000).Less(Infinite) {
		t.Error("any finite length should sort before Infinite")
	}
	if !Infinite.Less(Unknown) {
		t.Error("Infinite should sort before Unknown")
	}
}

func TestAtLeast(t *testing.T) {
	if !Infinite.AtLeast(1 << 30) {
		t.Error("Infinite.AtLeast should always be true")
	}
	if Unknown.AtLeast(0) {
		t.Error("Unknown.AtLeast should always be false")
	}
	if !Len(4).AtLeast(4) || Len(3).AtLeast(4) {
		t.Error("Len(4).AtLeast boundary is wrong")
	}
}

func TestLength(t *testing.T) {
	if n, ok := Len(7).Length(); !ok || n != 7 {
		t.Errorf("Length() = (%d,%v), want (7,true)", n, ok)
	}
	if _, ok := Infinite.Length(); ok {
		t.Error("Infinite.Length() should report ok=false")
	}
}
