// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package billyx provides utilities for working with billy filesystems.
package billyx

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/pkg/errors"
)

// CopyFile copies srcPath in src to dstPath in dst byte-for-byte, truncating
// any existing file at dstPath.
//
// Unlike billy's OpenFile, CopyFile never creates directories: the parent of
// dstPath must already exist.
func CopyFile(dst billy.Filesystem, dstPath string, src billy.Filesystem, srcPath string) error {
	in, err := src.Open(srcPath)
	if err != nil {
		return err
	}
	defer in.Close()
	dir := filepath.Dir(dstPath)
	if info, err := dst.Stat(dir); err != nil {
		return err
	} else if !info.IsDir() {
		return errors.Errorf("%s is not a directory", dir)
	}
	out, err := dst.OpenFile(dstPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
