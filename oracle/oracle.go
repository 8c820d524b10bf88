// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package oracle implements the correctness oracle (§4.J): it parses a
// basepath.dot graph description independently of the engines under test
// and verifies every LCP entry by an explicit backward walk, the same
// check_LCP_correctness does in the reference algorithm.
package oracle

import (
	"bufio"
	"bytes"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/regindex/Labeled-Graph-LCP/internal/xzfile"
	"github.com/regindex/Labeled-Graph-LCP/lcpval"
)

// Error is this package's error type, following the same per-package
// Error string convention used throughout the module.
type Error string

func (e Error) Error() string { return "oracle: " + string(e) }

// noPred marks a state with no recorded incoming edge in the parsed graph
// (a source, or simply absent from the .dot file).
const noPred = -1

// Graph is the independently-parsed edge list the oracle walks backward.
type Graph struct {
	Pred   []int // Pred[i] = origin state of i's incoming edge, or noPred
	Labels []byte
}

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

// LoadDot parses the file at path (or its .xz companion) into a Graph sized
// for n states. Lines with fewer than 8 whitespace-separated tokens are
// ignored, matching the loose graphviz-like format described in §6.
func LoadDot(path string, n int) (g *Graph, err error) {
	defer errRecover(&err)

	raw, ferr := xzfile.ReadMaybeXZ(path)
	if ferr != nil {
		panic(Error(fmt.Sprintf("cannot open %s: %v", path, ferr)))
	}
	if len(raw) == 0 {
		panic(Error(fmt.Sprintf("%s is empty", path)))
	}

	g = &Graph{Pred: make([]int, n), Labels: make([]byte, n)}
	for i := range g.Pred {
		g.Pred[i] = noPred
	}

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		tok := strings.Fields(scanner.Text())
		if len(tok) < 8 {
			continue
		}
		origin := parseNodeID(tok[0])
		dest := parseNodeID(tok[2])
		label, err := strconv.Atoi(tok[6])
		if err != nil {
			panic(Error("malformed edge label in .dot line: " + scanner.Text()))
		}
		if dest < 0 || dest >= n {
			panic(Error("edge destination out of range in .dot line: " + scanner.Text()))
		}
		g.Pred[dest] = origin
		g.Labels[dest] = byte(label)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		panic(Error(scanErr.Error()))
	}
	return g, nil
}

// parseNodeID parses a token of the form "N<id>" (1-indexed) into a
// 0-indexed state id.
func parseNodeID(tok string) int {
	if len(tok) < 2 || tok[0] != 'N' {
		panic(Error("malformed node token: " + tok))
	}
	id, err := strconv.ParseUint(tok[1:], 10, 64)
	if err != nil {
		panic(Error("malformed node token: " + tok))
	}
	return int(id) - 1
}

// Verify walks, for every state i in [1,n), the backward label history of i
// and i-1 for exactly lcp[i] steps (or until a cycle is detected, when
// lcp[i] is Infinite), confirming that the LCP vector's claim matches the
// graph the .dot file actually describes (§4.J).
func Verify(g *Graph, lcp []lcpval.Value) error {
	for i := 1; i < len(lcp); i++ {
		if err := verifyOne(g, lcp, i); err != nil {
			return err
		}
	}
	return nil
}

func verifyOne(g *Graph, lcp []lcpval.Value, i int) error {
	curr, prev := i, i-1

	if lcp[i].IsInfinite() {
		visitedCurr := make([]bool, len(lcp))
		visitedPrev := make([]bool, len(lcp))
		for {
			if g.Labels[curr] != g.Labels[prev] {
				return Error(fmt.Sprintf("LCP[%d] claims Infinite but labels diverge at state %d vs %d", i, curr, prev))
			}
			if g.Pred[curr] == noPred {
				return nil
			}
			if visitedCurr[curr] && visitedPrev[prev] {
				return nil // confirmed cycle: an infinite common backward history
			}
			visitedCurr[curr], visitedPrev[prev] = true, true
			curr, prev = g.Pred[curr], g.Pred[prev]
		}
	}

	length, _ := lcp[i].Length()
	for j := 0; j < length; j++ {
		if g.Labels[curr] != g.Labels[prev] {
			return Error(fmt.Sprintf("LCP[%d] = %d but labels diverge after %d steps", i, length, j))
		}
		curr, prev = g.Pred[curr], g.Pred[prev]
	}
	if g.Labels[curr] == g.Labels[prev] {
		return Error(fmt.Sprintf("LCP[%d] = %d is too small: labels still agree one step further", i, length))
	}
	return nil
}
