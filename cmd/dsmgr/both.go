// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/dsworkbench/lib/textui"
	"git.lukeshu.com/dsworkbench/lib/workbench"
)

func init() {
	bothCmds = append(bothCmds, func() subcommand {
		return subcommand{
			Command: cobra.Command{
				Use:   "add VALUE",
				Short: "Push a value onto the stack and enqueue it onto the queue",
				Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
			},
			RunE: func(sess *workbench.Session, cmd *cobra.Command, args []string) error {
				val, err := parseValue(args[0])
				if err != nil {
					return err
				}
				sess.AddToBoth(val)
				textui.Fprintf(cmd.OutOrStdout(), "added %q to the stack and the queue\n", val)
				return nil
			},
			Save: (*workbench.Session).SaveStackQueue,
		}
	})
}
