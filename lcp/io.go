// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package lcp

import (
	"bufio"
	"encoding/binary"
	"hash/crc32"
	"io"
	"os"

	"github.com/dsnet/golib/hashutil"
	"github.com/klauspost/compress/zstd"
	"github.com/regindex/Labeled-Graph-LCP/lcpval"
)

// Error is this package's error type, following the same per-package
// Error string convention used throughout the module.
type Error string

func (e Error) Error() string { return "lcp: " + string(e) }

// WriteVector serializes vec as basepath.LCP: one little-endian, wordSize-
// byte entry per state, Infinite encoded as the all-ones sentinel (§6).
// It returns the CRC-32 of the raw bytes written, the same block-level
// fingerprint bzip2/common.go's combineCRC produces for a finished block,
// logged by cmd/step2 in verbose mode and used to confirm that re-running
// an engine reproduces a byte-identical file (§8).
func WriteVector(path string, vec []lcpval.Value) (crc uint32, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, Error(err.Error())
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	table := crc32.MakeTable(crc32.IEEE)
	running := uint32(0)
	buf := make([]byte, wordSize)
	for _, v := range vec {
		putWord(buf, encodeWord(v))
		if _, err := w.Write(buf); err != nil {
			return 0, Error(err.Error())
		}
		running = hashutil.CombineCRC32(crc32.IEEE, running, crc32.Checksum(buf, table), int64(len(buf)))
	}
	if err := w.Flush(); err != nil {
		return 0, Error(err.Error())
	}
	return running, nil
}

// WriteVectorArchive additionally zstd-compresses the serialized vector to
// path+".zst" (the `-z` flag on step2), for long-term archival of large
// LCP vectors alongside the mandatory raw output.
func WriteVectorArchive(path string, vec []lcpval.Value) error {
	f, err := os.Create(path + ".zst")
	if err != nil {
		return Error(err.Error())
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		return Error(err.Error())
	}
	defer zw.Close()

	buf := make([]byte, wordSize)
	for _, v := range vec {
		putWord(buf, encodeWord(v))
		if _, err := zw.Write(buf); err != nil {
			return Error(err.Error())
		}
	}
	return nil
}

// ReadVector parses a basepath.LCP file back into a Value slice, used by
// tests to re-check a previously written run.
func ReadVector(path string) ([]lcpval.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error(err.Error())
	}
	defer f.Close()

	var out []lcpval.Value
	buf := make([]byte, wordSize)
	for {
		if _, err := io.ReadFull(f, buf); err != nil {
			if err == io.EOF {
				break
			}
			return nil, Error(err.Error())
		}
		out = append(out, decodeWord(getWord(buf)))
	}
	return out, nil
}

func encodeWord(v lcpval.Value) uint64 {
	if n, ok := v.Length(); ok {
		return uint64(n)
	}
	return infWord // Infinite, or (should it escape this package) Unknown
}

func decodeWord(w uint64) lcpval.Value {
	if w == infWord {
		return lcpval.Infinite
	}
	return lcpval.Len(int(w))
}

func putWord(buf []byte, w uint64) {
	if wordSize == 4 {
		binary.LittleEndian.PutUint32(buf, uint32(w))
	} else {
		binary.LittleEndian.PutUint64(buf, w)
	}
}

func getWord(buf []byte) uint64 {
	if wordSize == 4 {
		return uint64(binary.LittleEndian.Uint32(buf))
	}
	return binary.LittleEndian.Uint64(buf)
}
