// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package gitxtest builds git repositories for tests from a commit history.
package gitxtest

import (
	"bytes"
	"io"
	"path"
	"path/filepath"
	"time"

	"github.com/boost-text/perfsnap/internal/gitx"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type FileContent map[string]string

type Commit struct {
	ID      string      `yaml:"id"`
	Message string      `yaml:"message"`
	Author  string      `yaml:"author,omitempty"`
	Files   FileContent `yaml:"files"`
}

type GitHistory struct {
	Commits []Commit `yaml:"commits"`
}

type Repository struct {
	*git.Repository
	Commits map[string]plumbing.Hash
}

// commitTime is fixed so that hashes are stable across runs.
var commitTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// OnDisk returns options that store the repository under dir with a regular
// .git directory, readable by the git binary.
func OnDisk(dir string) *gitx.RepositoryOptions {
	return &gitx.RepositoryOptions{
		Storer:   filesystem.NewStorage(osfs.New(filepath.Join(dir, git.GitDirName)), cache.NewObjectLRUDefault()),
		Worktree: osfs.New(dir),
	}
}

func CreateRepoFromYAML(content string, opts *gitx.RepositoryOptions) (*Repository, error) {
	var history GitHistory
	d := yaml.NewDecoder(bytes.NewReader([]byte(content)))
	d.KnownFields(true) // Fail on unknown fields
	if err := d.Decode(&history); err != nil {
		return nil, err
	}
	return CreateRepo(history.Commits, opts)
}

// CreateRepo initializes a repository and commits the history in order on
// its default branch.
func CreateRepo(commits []Commit, opts *gitx.RepositoryOptions) (*Repository, error) {
	var o gitx.RepositoryOptions
	if opts != nil {
		o = *opts
	}
	if o.Storer == nil {
		o.Storer = memory.NewStorage()
	}
	if o.Worktree == nil {
		o.Worktree = memfs.New()
	}
	var repo Repository
	var err error
	repo.Repository, err = git.Init(o.Storer, o.Worktree)
	if err != nil {
		return nil, errors.Wrap(err, "initializing repo")
	}
	w, err := repo.Worktree()
	if err != nil {
		return nil, errors.Wrap(err, "accessing worktree")
	}
	repo.Commits = make(map[string]plumbing.Hash)
	for _, c := range commits {
		if err := createFiles(w, c.Files); err != nil {
			return nil, errors.Wrapf(err, "creating files for %s", c.ID)
		}
		author := "Place Holder"
		if c.Author != "" {
			author = c.Author
		}
		hash, err := w.Commit(c.Message, &git.CommitOptions{
			Author:            &object.Signature{Name: author, Email: "placeholder@example.com", When: commitTime},
			AllowEmptyCommits: true,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "committing %s", c.ID)
		}
		repo.Commits[c.ID] = hash
	}
	return &repo, nil
}

func createFiles(w *git.Worktree, files FileContent) error {
	for name, content := range files {
		if err := w.Filesystem.MkdirAll(path.Dir(name), 0755); err != nil {
			return err
		}
		f, err := w.Filesystem.Create(name)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(f, content); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		if _, err := w.Add(name); err != nil {
			return err
		}
	}
	return nil
}
