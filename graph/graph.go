// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package graph loads the on-disk representation of a (pruned) Wheeler
// automaton — the basepath.L, basepath.out and basepath.in files (§6) —
// into memory once, so that the FM-index, the interval-stabbing
// side-structure and the doubling data structure can each build their own
// view on top without re-parsing the input.
//
// Loading follows the same parse-then-recover idiom as the rest of this
// module: internal helpers
// panic on malformed input (bzip2/common.go's errRecover pattern), and the
// single exported entry point, Load, recovers into a returned error.
package graph

import (
	"fmt"
	"runtime"

	"github.com/regindex/Labeled-Graph-LCP/bitvector"
	"github.com/regindex/Labeled-Graph-LCP/internal/xzfile"
)

// Error is the wrapper type for errors specific to this package, following
// the same per-package Error string convention as bzip2.Error.
type Error string

func (e Error) Error() string { return "graph: " + string(e) }

// Graph is the in-memory form of a pruned Wheeler automaton's raw files.
type Graph struct {
	// L is the outgoing-label sequence, length M, raw ASCII bytes in
	// [1,127].
	L []byte
	// Out is the out-degree bitmap (§3): one 1-bit per outgoing edge,
	// states in Wheeler order, with one 0-bit in front of the edge group
	// of each non-source state (n-s 0-bits in all).
	Out *bitvector.Vector
	// N is the number of states.
	N int
	// S is the number of source states (no incoming edges); sources
	// occupy the prefix [0,S) of the Wheeler order.
	S int
	// M is the number of edges (= len(L)).
	M int
}

// StateOf maps a BWT/L position to its originating state index:
// state(p) = rank0(select1(p+1)), the number of 0-bits in front of edge
// p's 1-bit (select1 is 1-indexed).
func (g *Graph) StateOf(p int) int {
	return g.Out.Rank0(g.Out.Select1(p + 1))
}

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

func readFileOrXZ(path string) []byte {
	data, err := xzfile.ReadMaybeXZ(path)
	if err != nil {
		panic(Error(fmt.Sprintf("cannot open %s: %v", path, err)))
	}
	return data
}

// Load reads basepath.L, basepath.out and basepath.in and validates the
// invariants from §3/§6, always fully validating the "exactly one
// incoming edge per non-source state" invariant rather than only the
// sources prefix.
func Load(basepath string) (g *Graph, err error) {
	defer errRecover(&err)

	l := readFileOrXZ(basepath + ".L")
	for _, b := range l {
		if b == 0 || b >= 128 {
			panic(Error("basepath.L contains a byte outside the [1,127] alphabet"))
		}
	}

	// basepath.in's leading run of '1's gives s without needing n (§3).
	inBytes := readFileOrXZ(basepath + ".in")
	if len(inBytes) == 0 {
		panic(Error("basepath.in is empty"))
	}
	s := 0
	for s < len(inBytes) && inBytes[s] == '1' {
		s++
	}
	if s == 0 {
		panic(Error("basepath.in has an empty sources prefix: a Wheeler automaton requires at least one source"))
	}
	if s >= len(inBytes) || inBytes[s] != '0' {
		panic(Error("basepath.in is missing the terminator after the sources prefix"))
	}

	outBytes := readFileOrXZ(basepath + ".out")
	if len(outBytes) == 0 {
		panic(Error("basepath.out is empty"))
	}
	out := bitvector.Load(outBytes)

	// out has one 1-bit per edge and one 0-bit separator per non-source
	// state (length m+n-s, §3); the source states contribute no
	// separator since they never appear as a forward-search destination.
	m := out.Rank1(len(outBytes))
	nonSourceStates := out.Rank0(len(outBytes))
	n := nonSourceStates + s
	if m != len(l) {
		panic(Error("basepath.out encodes a different number of edges than basepath.L contains"))
	}

	suffix := inBytes[s+1:]
	if len(suffix) != n-s {
		panic(Error("basepath.in length is inconsistent with the number of non-source states"))
	}
	for _, b := range suffix {
		if b != '1' {
			panic(Error("basepath.in: a non-source state does not have exactly one incoming edge"))
		}
	}

	g = &Graph{L: l, Out: out, N: n, S: s, M: m}
	return g, nil
}
