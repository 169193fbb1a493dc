// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package gitx_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/boost-text/perfsnap/internal/gitx"
	"github.com/boost-text/perfsnap/internal/gitx/gitxtest"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/memory"
)

const history = `
commits:
  - id: initial
    message: Add benchmarks
    files:
      perf/copy_perf.cpp: "int main() {}"
  - id: second
    message: Tune collation benchmarks
    files:
      perf/collation_perf.cpp: "int main() { return 0; }"
`

func TestParseLog(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    string
		wantErr bool
	}{
		{
			name: "full log entry",
			out:  "commit abc123\nAuthor: A U Thor <a@example.com>\nDate:   Mon Jan 1 00:00:00 2024 +0000\n\n    msg\n",
			want: "abc123",
		},
		{
			name: "full hash",
			out:  "commit 6f1e2d3c4b5a69788796a5b4c3d2e1f001122334\n",
			want: "6f1e2d3c4b5a69788796a5b4c3d2e1f001122334",
		},
		{
			name: "single line without newline",
			out:  "commit abc123",
			want: "abc123",
		},
		{
			name: "crlf line ending",
			out:  "commit abc123\r\nAuthor: x\r\n",
			want: "abc123",
		},
		{
			name:    "empty output",
			out:     "",
			wantErr: true,
		},
		{
			name:    "unexpected first line",
			out:     "fatal: not a git repository\n",
			wantErr: true,
		},
		{
			name:    "prefix only",
			out:     "commit \nAuthor: x\n",
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := gitx.ParseLog(tc.out)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLog() error = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseLog() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRepoResolver(t *testing.T) {
	repo, err := gitxtest.CreateRepoFromYAML(history, nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := gitx.RepoResolver{Repo: repo.Repository}.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if want := repo.Commits["second"].String(); got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestRepoResolverNoCommits(t *testing.T) {
	repo, err := git.Init(memory.NewStorage(), memfs.New())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := (gitx.RepoResolver{Repo: repo}).Resolve(context.Background()); err == nil {
		t.Error("Resolve() error = nil, want error for repository without commits")
	}
}

func TestRepoResolverNotARepository(t *testing.T) {
	if _, err := (gitx.RepoResolver{Dir: t.TempDir()}).Resolve(context.Background()); err == nil {
		t.Error("Resolve() error = nil, want error outside a repository")
	}
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found on PATH")
	}
}

func TestLogResolverMatchesRepoResolver(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	repo, err := gitxtest.CreateRepoFromYAML(history, gitxtest.OnDisk(dir))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	got, err := gitx.LogResolver{Dir: dir}.Resolve(ctx)
	if err != nil {
		t.Fatalf("LogResolver.Resolve() error = %v", err)
	}
	if want := repo.Commits["second"].String(); got != want {
		t.Errorf("LogResolver.Resolve() = %q, want %q", got, want)
	}
	// Subdirectories resolve to the enclosing repository.
	sub, err := gitx.RepoResolver{Dir: filepath.Join(dir, "perf")}.Resolve(ctx)
	if err != nil {
		t.Fatalf("RepoResolver.Resolve() error = %v", err)
	}
	if sub != got {
		t.Errorf("RepoResolver.Resolve() = %q, want %q", sub, got)
	}
}

func TestLogResolverErrors(t *testing.T) {
	tests := []struct {
		name     string
		resolver func(t *testing.T) gitx.LogResolver
	}{
		{
			name: "missing binary",
			resolver: func(t *testing.T) gitx.LogResolver {
				return gitx.LogResolver{Dir: t.TempDir(), Git: filepath.Join(t.TempDir(), "no-such-git")}
			},
		},
		{
			name: "repository without commits",
			resolver: func(t *testing.T) gitx.LogResolver {
				requireGit(t)
				dir := t.TempDir()
				if _, err := gitxtest.CreateRepo(nil, gitxtest.OnDisk(dir)); err != nil {
					t.Fatal(err)
				}
				return gitx.LogResolver{Dir: dir}
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.resolver(t)
			if got, err := r.Resolve(context.Background()); err == nil {
				t.Errorf("Resolve() = %q, want error", got)
			}
		})
	}
}
