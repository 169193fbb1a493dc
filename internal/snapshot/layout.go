// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package snapshot

import "path/filepath"

const (
	LatestDir    = "latest_snapshot" // The most recent snapshot, overwritten by every run.
	SnapshotsDir = "snapshots"       // Parent of the per-commit snapshots.
)

// Layout holds the destination directories for one snapshot.
type Layout struct {
	Latest string // <root>/latest_snapshot
	Commit string // <root>/snapshots/<commit>
}

// NewLayout derives the destinations under root for commit.
// The commit is used as a path segment unmodified.
func NewLayout(root, commit string) Layout {
	return Layout{
		Latest: filepath.Join(root, LatestDir),
		Commit: filepath.Join(root, SnapshotsDir, commit),
	}
}
