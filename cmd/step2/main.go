// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Command step2 computes the LCP vector of a pruned Wheeler pseudoforest
// using one of three engines, optionally cross-checking the result with
// the correctness oracle and archiving it with zstd (§6).
package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/dsnet/golib/strconv"

	"github.com/regindex/Labeled-Graph-LCP/doubling"
	"github.com/regindex/Labeled-Graph-LCP/fmindex"
	"github.com/regindex/Labeled-Graph-LCP/graph"
	"github.com/regindex/Labeled-Graph-LCP/internal/randwg"
	"github.com/regindex/Labeled-Graph-LCP/lcp"
	"github.com/regindex/Labeled-Graph-LCP/lcpval"
	"github.com/regindex/Labeled-Graph-LCP/oracle"
	"github.com/regindex/Labeled-Graph-LCP/stabbing"
)

const (
	algoBeller = iota
	algoDoubling
	algoStabbing
)

func printHelp() {
	fmt.Fprintln(os.Stderr, `
Usage: step2 [options] INPUT

Step 2: Compute the longest common prefix (LCP) vector of a Wheeler pseudoforest.

	-b, --Beller-gen
		Computes the LCP array with a generalization of the Beller et al. algorithm.

	-s, --interval-stabbing
		Computes the LCP array with a re-design of the Beller et al. algorithm relying on a dynamic interval stabbing data structure.

	-d, --doubling-algo
		Computes the LCP array with an extension of the Manber-Myers doubling algorithm.

	-v, --verbose
		Activate the verbose mode.

	-c, --check-output
		Check final LCP vector correctness against INPUT.dot (debug-only).

	-l, --print-LCP
		Print the resulting LCP vector to stdout (debug-only).

	-z, --zip
		Additionally zstd-compress the .LCP output to INPUT.LCP.zst.

	-stress N[,N2,...]
		Skip INPUT; instead generate 100 random pruned Wheeler automata per
		listed size, run all three engines on each, and report any
		disagreement or oracle rejection.
`)
}

func main() {
	var beller, doublingFlag, stabbingFlag, verbose, check, printLCP, zip bool
	var stress string
	flag.BoolVar(&beller, "b", false, "Beller-gen")
	flag.BoolVar(&doublingFlag, "d", false, "doubling")
	flag.BoolVar(&stabbingFlag, "s", false, "interval-stabbing")
	flag.BoolVar(&verbose, "v", false, "verbose")
	flag.BoolVar(&check, "c", false, "check-output")
	flag.BoolVar(&printLCP, "l", false, "print-LCP")
	flag.BoolVar(&zip, "z", false, "zip")
	flag.BoolVar(&beller, "Beller-gen", false, "Beller-gen")
	flag.BoolVar(&doublingFlag, "doubling-algo", false, "doubling")
	flag.BoolVar(&stabbingFlag, "interval-stabbing", false, "interval-stabbing")
	flag.BoolVar(&verbose, "verbose", false, "verbose")
	flag.BoolVar(&check, "check-output", false, "check-output")
	flag.BoolVar(&printLCP, "print-LCP", false, "print-LCP")
	flag.BoolVar(&zip, "zip", false, "zip")
	flag.StringVar(&stress, "stress", "", "comma-separated automaton sizes for self-test mode")
	flag.Usage = printHelp
	flag.Parse()

	if stress != "" {
		runStress(stress, verbose)
		return
	}

	if flag.NArg() != 1 {
		printHelp()
		os.Exit(1)
	}
	var algo int
	switch {
	case beller:
		algo = algoBeller
	case doublingFlag:
		algo = algoDoubling
	case stabbingFlag:
		algo = algoStabbing
	default:
		fmt.Fprintln(os.Stderr, "Select a LCP construction algorithm! exiting...")
		os.Exit(1)
	}

	input := flag.Arg(0)
	g, err := graph.Load(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	begin := time.Now()
	vec := computeLCP(algo, g, verbose)
	elapsed := time.Since(begin)
	if verbose {
		fmt.Printf("Elapsed time = %.3f[s]\n", elapsed.Seconds())
	}

	crc, err := lcp.WriteVector(input+".LCP", vec)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if verbose {
		fmt.Printf("Wrote %s.LCP (CRC-32 = %08x)\n", input, crc)
	}
	if zip {
		if err := lcp.WriteVectorArchive(input+".LCP", vec); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if printLCP {
		for i, v := range vec {
			fmt.Printf("LCP[%d] = %v\n", i, v)
		}
	}

	if check {
		dotGraph, err := oracle.LoadDot(input+".dot", g.N)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := oracle.Verify(dotGraph, vec); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if verbose {
			fmt.Println("The LCP vector is correct!")
		}
	}
}

func computeLCP(algo int, g *graph.Graph, verbose bool) []lcpval.Value {
	switch algo {
	case algoBeller:
		if verbose {
			fmt.Println("Running generalization of Beller et al. algorithm")
		}
		return lcp.BellerGen(fmindex.New(g))
	case algoDoubling:
		if verbose {
			fmt.Println("Running generalization of Manber-Myers doubling algorithm")
		}
		return lcp.PrefixDoubling(doubling.Build(g))
	default:
		if verbose {
			fmt.Println("Running interval stabbing algorithm")
		}
		idx := fmindex.New(g)
		return lcp.IntervalStabbing(idx, stabbing.Build(g.L, idx))
	}
}

// runStress implements the E5 random-data stress scenario: for each listed
// size, generate 100 random pruned Wheeler automata and verify that all
// three engines agree and the oracle accepts the result.
func runStress(spec string, verbose bool) {
	sep := regexp.MustCompile(`[,:]`)
	var sizes []int
	for _, s := range sep.Split(spec, -1) {
		nf, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -stress size %q: %v\n", s, err)
			os.Exit(1)
		}
		sizes = append(sizes, int(nf))
	}

	const trials = 100
	const sigma = 5
	failures := 0
	for _, n := range sizes {
		for trial := 0; trial < trials; trial++ {
			seed := int64(n)*int64(trials) + int64(trial)
			gr := randwg.Generate(seed, n, sigma)

			idx := fmindex.New(gr.Graph)
			bv := lcp.BellerGen(idx)
			sv := lcp.IntervalStabbing(idx, stabbing.Build(gr.L, idx))
			dv := lcp.PrefixDoubling(doubling.Build(gr.Graph))

			mismatch := false
			for i := range bv {
				if bv[i] != sv[i] || bv[i] != dv[i] {
					mismatch = true
					break
				}
			}
			if mismatch {
				fmt.Fprintf(os.Stderr, "stress: engines disagree at size=%d seed=%d\n", n, seed)
				failures++
				continue
			}
			if err := verifyGenerated(gr, bv); err != nil {
				fmt.Fprintf(os.Stderr, "stress: oracle rejected size=%d seed=%d: %v\n", n, seed, err)
				failures++
			}
		}
		if verbose {
			fmt.Printf("size=%d: %d trials completed\n", n, trials)
		}
	}
	if failures > 0 {
		os.Exit(1)
	}
	fmt.Println("All engines agree and the oracle accepts every generated automaton.")
}

// verifyGenerated runs the oracle's backward-walk check directly against a
// generated automaton's in-memory predecessor/label arrays, without a .dot
// round trip.
func verifyGenerated(gr *randwg.Graph, lcpVec []lcpval.Value) error {
	og := &oracle.Graph{Pred: gr.Pred, Labels: gr.Labels}
	return oracle.Verify(og, lcpVec)
}
