// Copyright (c) 2024, REGINDEX. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package xzfile reads an input file transparently substituting its .xz
// companion when the plain file is absent — the convention used for
// archived basepath.L/.out/.in/.dot files.
package xzfile

import (
	"bytes"
	"io/ioutil"
	"os"

	"github.com/ulikunitz/xz"
)

// ReadMaybeXZ reads path, or path+".xz" transparently decompressed if the
// plain file does not exist.
func ReadMaybeXZ(path string) ([]byte, error) {
	data, err := ioutil.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	raw, xzErr := ioutil.ReadFile(path + ".xz")
	if xzErr != nil {
		return nil, err // report the original error: neither form exists
	}
	r, rErr := xz.NewReader(bytes.NewReader(raw))
	if rErr != nil {
		return nil, rErr
	}
	var buf bytes.Buffer
	if _, rErr := buf.ReadFrom(r); rErr != nil {
		return nil, rErr
	}
	return buf.Bytes(), nil
}
