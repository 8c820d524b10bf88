// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package queue

import "testing"

func TestIntervalLayering(t *testing.T) {
	q := NewInterval(10)
	q.Push(0, 1)
	q.Push(2, 3)
	if !q.Advance() {
		t.Fatal("Advance() = false on a non-empty first layer")
	}
	if q.L() != 0 {
		t.Fatalf("L() = %d, want 0", q.L())
	}
	var got []pair
	for !q.Empty() {
		a, b := q.Pop()
		got = append(got, pair{a, b})
	}
	want := []pair{{0, 1}, {2, 3}}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("got[%d] = %+v, want %+v", i, got[i], w)
		}
	}
	if q.Advance() {
		t.Fatal("Advance() = true with nothing pushed for the next layer")
	}
}

func TestIntervalBitmapSwitch(t *testing.T) {
	n := 1000
	// push enough items into the first layer to cross the density trigger,
	// per the E6 regression scenario: the representation toggle must not
	// change which items come out, only how they are stored meanwhile.
	q := NewInterval(n)
	for i := 0; i < n/2; i++ {
		q.Push(i, i+1)
	}
	if !q.Advance() {
		t.Fatal("Advance() = false")
	}
	if q.curBitmap {
		t.Fatal("first layer should start as a FIFO")
	}
	count := 0
	for !q.Empty() {
		q.Pop()
		count++
	}
	if count != n/2 {
		t.Fatalf("drained %d items, want %d", count, n/2)
	}
	if !q.nextBitmap {
		t.Fatal("density above trigger should have switched the next layer to bitmap mode")
	}
}

func TestSingleLayering(t *testing.T) {
	q := NewSingle(10)
	q.Push(4)
	q.Push(5)
	if !q.Advance() {
		t.Fatal("Advance() = false")
	}
	var got []int
	for !q.Empty() {
		got = append(got, q.Pop())
	}
	if len(got) != 2 || got[0] != 4 || got[1] != 5 {
		t.Fatalf("got %v, want [4 5]", got)
	}
}

func TestSingleBitmapRoundTrip(t *testing.T) {
	n := 2000
	q := NewSingle(n)
	for i := 0; i < n; i += 3 {
		q.Push(i)
	}
	q.Advance()
	// the first layer is a FIFO; 667 items exceed the density trigger for
	// n = 2000, so the layer they are moved into is a bitmap.
	for !q.Empty() {
		q.Push(q.Pop())
	}
	q.Advance()
	if !q.curBitmap {
		t.Fatal("expected the second layer to be bitmap-backed")
	}
	var got []int
	for !q.Empty() {
		got = append(got, q.Pop())
	}
	if len(got) != (n+2)/3 {
		t.Fatalf("got %d items, want %d", len(got), (n+2)/3)
	}
	for k, v := range got {
		if v != k*3 {
			t.Fatalf("got[%d] = %d, want %d", k, v, k*3)
		}
	}
}
