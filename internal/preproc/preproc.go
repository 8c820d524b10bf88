// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package preproc shells out to the external partition-refinement tool that
// turns an arbitrary labeled graph into a pruned Wheeler pseudoforest
// (§6): `step1` is a thin driver over this one subprocess call.
package preproc

import (
	"fmt"
	"os"
	"os/exec"
)

// Error is this package's error type, following the same per-package
// Error string convention used throughout the module.
type Error string

func (e Error) Error() string { return "preproc: " + string(e) }

// Command is the partition-refinement program invoked by step1. It defaults
// to the reference implementation's own invocation, but is a var so a test
// or an alternate deployment can point at a different binary.
var Command = []string{"python3", "external/finite-automata-partition-refinement/partition_refinement.py"}

// Run invokes the preprocessor on input, writing its four output files
// (basepath.L/.out/.in/.dot) under outpath when non-empty, or beside input
// otherwise. Its stdout and stderr are connected through to the caller's so
// progress from the external tool is visible.
func Run(input, outpath string) error {
	args := append([]string{}, Command[1:]...)
	if outpath != "" {
		args = append(args, "--outpath", outpath)
	}
	args = append(args, "--prune", "--compact", input)

	cmd := exec.Command(Command[0], args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return Error(fmt.Sprintf("preprocessor failed: %v", err))
	}
	return nil
}
