// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package gitx

import (
	"cmp"
	"context"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage"
	"github.com/pkg/errors"
)

// RepositoryOptions configures the storage and worktree for repositories.
type RepositoryOptions struct {
	Storer   storage.Storer
	Worktree billy.Filesystem
}

// RepoResolver resolves the current commit by reading HEAD with go-git,
// without needing a git binary.
type RepoResolver struct {
	// Repo is read directly when set. Otherwise the repository containing Dir
	// (default ".") is opened.
	Repo *git.Repository
	Dir  string
}

var _ Resolver = RepoResolver{}

// Resolve returns the full hash of the commit HEAD points to.
func (r RepoResolver) Resolve(context.Context) (string, error) {
	repo := r.Repo
	if repo == nil {
		var err error
		repo, err = git.PlainOpenWithOptions(cmp.Or(r.Dir, "."), &git.PlainOpenOptions{DetectDotGit: true})
		if err != nil {
			return "", errors.Wrap(err, "opening repository")
		}
	}
	head, err := repo.Head()
	if err != nil {
		return "", errors.Wrap(err, "getting HEAD ref")
	}
	return head.Hash().String(), nil
}
