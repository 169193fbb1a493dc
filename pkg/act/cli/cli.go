// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/boost-text/perfsnap/pkg/act"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type Deps interface {
	SetIO(IO)
}

// RunE constructs a cobra.Command.RunE from act components.
// This function wires together:
//  1. Validating the Input
//  2. Initializing dependencies
//  3. Attaching IO streams to dependencies
//  4. Executing the action
//
// Usage is printed for invalid input only. Once the input validates, failures
// come from the action itself and usage is suppressed.
func RunE[I act.Input, O any, D Deps](
	cfg *I,
	initDeps act.InitDeps[D],
	action act.Action[I, O, D],
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := (*cfg).Validate(); err != nil {
			return err
		}
		cmd.SilenceUsage = true
		deps, err := initDeps(cmd.Context())
		if err != nil {
			return errors.Wrap(err, "initializing dependencies")
		}
		deps.SetIO(IO{
			In:  cmd.InOrStdin(),
			Out: cmd.OutOrStdout(),
			Err: cmd.ErrOrStderr(),
		})
		_, err = action(cmd.Context(), *cfg, deps)
		return err
	}
}
