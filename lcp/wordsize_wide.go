// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

//go:build wide

package lcp

// wordSize is the width, in bytes, of one .LCP entry when the "wide" build
// tag selects 64-bit state indices.
const wordSize = 8

// infWord is the all-ones sentinel written for an Infinite entry.
const infWord = uint64(1)<<64 - 1
