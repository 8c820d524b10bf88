// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

//go:build !wide

package lcp

// wordSize is the width, in bytes, of one .LCP entry. The "wide" build tag
// switches this to 8 for inputs whose LCP values can exceed 32 bits.
const wordSize = 4

// infWord is the all-ones sentinel written for an Infinite entry.
const infWord = uint64(1)<<32 - 1
