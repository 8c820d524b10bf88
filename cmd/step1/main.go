// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Command step1 drives the external partition-refinement preprocessor that
// turns an arbitrary labeled graph into the pruned Wheeler pseudoforest the
// step2 engines consume (§6).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/regindex/Labeled-Graph-LCP/internal/preproc"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, `
Usage: step1 [options] INPUT

Step 1: Compute the deterministic Wheeler pseudoforest of an arbitrary labeled graph.

	-o, --outpath
		Specify the output file paths.
`)
}

func main() {
	var outpath string
	flag.StringVar(&outpath, "o", "", "output file path prefix")
	flag.StringVar(&outpath, "outpath", "", "output file path prefix")
	flag.Usage = printHelp
	flag.Parse()

	if flag.NArg() != 1 {
		printHelp()
		os.Exit(1)
	}
	input := flag.Arg(0)

	fmt.Println("### Running the preprocessing step on:", input)
	if err := preproc.Run(input, outpath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
