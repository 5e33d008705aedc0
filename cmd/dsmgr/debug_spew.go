// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"git.lukeshu.com/dsworkbench/lib/registry"
	"git.lukeshu.com/dsworkbench/lib/workbench"
)

func init() {
	debugCmds = append(debugCmds, func() subcommand {
		return subcommand{
			Command: cobra.Command{
				Use:   "spew",
				Short: "Spew the entire saved state as parsed",
				Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
			},
			RunE: func(sess *workbench.Session, cmd *cobra.Command, _ []string) error {
				spew := spew.NewDefaultConfig()
				spew.DisablePointerAddresses = true

				spew.Fdump(cmd.OutOrStdout(), struct {
					Lists registry.Snapshot
					Stack []string
					Queue []string
				}{
					Lists: sess.Lists.Snapshot(),
					Stack: sess.Stack.Snapshot(),
					Queue: sess.Queue.Snapshot(),
				})
				return nil
			},
		}
	})
}
