// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package gitx resolves the commit a working tree is checked out at.
package gitx

import (
	"bytes"
	"cmp"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Resolver returns the identifier of the current commit.
type Resolver interface {
	Resolve(ctx context.Context) (string, error)
}

// logPrefix is the token git log prints ahead of the commit hash.
const logPrefix = "commit "

// LogResolver resolves the current commit by running `git log -1`.
type LogResolver struct {
	// Dir is the directory git runs in. Empty means the process working directory.
	Dir string
	// Git is the git binary to run. Empty means "git" from PATH.
	Git string
}

var _ Resolver = LogResolver{}

// Resolve runs git and parses the commit from the first line of its output.
func (r LogResolver) Resolve(ctx context.Context) (string, error) {
	// Decoration and color would change the first line.
	cmd := exec.CommandContext(ctx, cmp.Or(r.Git, "git"), "log", "-1", "--no-decorate", "--no-color")
	cmd.Dir = r.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", errors.Wrapf(err, "git log: %s", msg)
		}
		return "", errors.Wrap(err, "git log")
	}
	return ParseLog(string(out))
}

// ParseLog extracts the commit hash from `git log` output: the first line with
// its "commit " prefix removed. The remainder is returned as-is.
func ParseLog(out string) (string, error) {
	line, _, _ := strings.Cut(out, "\n")
	line = strings.TrimSuffix(line, "\r")
	commit, ok := strings.CutPrefix(line, logPrefix)
	if !ok {
		return "", errors.Errorf("unexpected git log output: %q", line)
	}
	if commit == "" {
		return "", errors.New("git log output has an empty commit")
	}
	return commit, nil
}
