// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package snapshot copies benchmark results into the latest and per-commit
// snapshot directories.
//
// Nothing is rolled back on failure. Files copied before an error stay in
// place, and a partially populated snapshot is indistinguishable from a
// complete one.
package snapshot

import (
	"os"
	"path/filepath"

	"github.com/boost-text/perfsnap/internal/billyx"
	"github.com/go-git/go-billy/v5"
	"github.com/pkg/errors"
)

// Prepare ensures the commit directory of l exists, creating at most that one
// directory. An existing commit directory is left as it is.
//
// The latest directory is not created and must already exist.
func Prepare(fs billy.Filesystem, l Layout) error {
	info, err := fs.Stat(l.Commit)
	if err == nil {
		if !info.IsDir() {
			return errors.Errorf("%s is not a directory", l.Commit)
		}
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(err, "checking %s", l.Commit)
	}
	parent := filepath.Dir(l.Commit)
	if info, err := fs.Stat(parent); err != nil {
		return errors.Wrapf(err, "checking %s", parent)
	} else if !info.IsDir() {
		return errors.Errorf("%s is not a directory", parent)
	}
	return errors.Wrapf(fs.MkdirAll(l.Commit, 0755), "creating %s", l.Commit)
}

// Copier copies benchmark results from Src into the directories of Layout on Dst.
type Copier struct {
	Src    billy.Filesystem
	Dst    billy.Filesystem
	Layout Layout
}

// Copy copies name into the latest directory and then the commit directory,
// overwriting existing files.
func (c Copier) Copy(name string) error {
	for _, dir := range []string{c.Layout.Latest, c.Layout.Commit} {
		dst := filepath.Join(dir, name)
		if err := billyx.CopyFile(c.Dst, dst, c.Src, name); err != nil {
			return errors.Wrapf(err, "copying %s to %s", name, dst)
		}
	}
	return nil
}

// CopyAll copies Files in order, stopping at the first failure.
func (c Copier) CopyAll() error {
	for _, name := range Files {
		if err := c.Copy(name); err != nil {
			return err
		}
	}
	return nil
}
