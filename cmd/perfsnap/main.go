// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/boost-text/perfsnap/internal/gitx"
	"github.com/boost-text/perfsnap/internal/snapshot"
	"github.com/boost-text/perfsnap/pkg/act"
	"github.com/boost-text/perfsnap/pkg/act/cli"
	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Config holds all configuration for the perfsnap command.
type Config struct {
	OutputRoot string
}

// Validate ensures the configuration is valid.
func (c Config) Validate() error {
	if c.OutputRoot == "" {
		return errors.New("output-root is required")
	}
	return nil
}

// Deps holds dependencies for the command.
type Deps struct {
	IO       cli.IO
	Resolver gitx.Resolver
	// Src holds the benchmark results, rooted at the working directory.
	Src billy.Filesystem
	// Dst is addressed with absolute paths.
	Dst billy.Filesystem
}

func (d *Deps) SetIO(cio cli.IO) { d.IO = cio }

// InitDeps initializes Deps against the working directory and the git binary.
func InitDeps(context.Context) (*Deps, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "getting working directory")
	}
	return &Deps{
		Resolver: gitx.LogResolver{},
		Src:      osfs.New(wd),
		Dst:      osfs.New("/"),
	}, nil
}

// Handler snapshots the benchmark results under the current commit.
func Handler(ctx context.Context, cfg Config, deps *Deps) (*act.NoOutput, error) {
	root, err := filepath.Abs(cfg.OutputRoot)
	if err != nil {
		return nil, errors.Wrap(err, "resolving output root")
	}
	commit, err := deps.Resolver.Resolve(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "resolving commit")
	}
	l := snapshot.NewLayout(root, commit)
	log.Printf("Snapshotting commit %s into %s\n", commit, root)
	if err := snapshot.Prepare(deps.Dst, l); err != nil {
		return nil, errors.Wrap(err, "preparing snapshot directory")
	}
	c := snapshot.Copier{Src: deps.Src, Dst: deps.Dst, Layout: l}
	if err := c.CopyAll(); err != nil {
		return nil, err
	}
	color.New(color.FgGreen).Fprintf(deps.IO.Out, "Copied %d files to %s and %s\n", len(snapshot.Files), l.Latest, l.Commit)
	return &act.NoOutput{}, nil
}

// Command creates a new perfsnap command instance.
func Command() *cobra.Command {
	return command(InitDeps)
}

func command(initDeps act.InitDeps[*Deps]) *cobra.Command {
	cfg := Config{}
	cmd := &cobra.Command{
		Use:   "perfsnap --output-root <dir>",
		Short: "Create a snapshot of .json files from Google Benchmark",
		Long: `Create a snapshot of .json files from Google Benchmark.

perfsnap copies the benchmark result files in the current directory into
<output-root>/latest_snapshot and <output-root>/snapshots/<commit>, where
<commit> is the commit currently checked out. <output-root>/snapshots and
<output-root>/latest_snapshot must already exist.

Examples:
  # Run from the benchmark build directory
  perfsnap -o ~/perf-results`,
		Args:          cobra.NoArgs,
		RunE:          cli.RunE(&cfg, initDeps, Handler),
		SilenceErrors: true,
	}
	cmd.Flags().StringVarP(&cfg.OutputRoot, "output-root", "o", "", "the root of the tree into which to write the json files")
	cmd.MarkFlagRequired("output-root")
	return cmd
}

func main() {
	if err := Command().Execute(); err != nil {
		log.Fatal(err)
	}
}
