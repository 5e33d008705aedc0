// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"io"

	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/dsworkbench/lib/textui"
	"git.lukeshu.com/dsworkbench/lib/workbench"
)

func init() {
	stackCmds = append(stackCmds,
		func() subcommand {
			return subcommand{
				Command: cobra.Command{
					Use:   "push VALUE",
					Short: "Push a value onto the top of the stack",
					Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
				},
				RunE: func(sess *workbench.Session, cmd *cobra.Command, args []string) error {
					val, err := parseValue(args[0])
					if err != nil {
						return err
					}
					sess.Stack.Push(val)
					textui.Fprintf(cmd.OutOrStdout(), "pushed %q\n", val)
					return nil
				},
				Save: (*workbench.Session).SaveStackQueue,
			}
		},
		func() subcommand {
			return subcommand{
				Command: cobra.Command{
					Use:   "pop",
					Short: "Remove the value on top of the stack",
					Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
				},
				RunE: func(sess *workbench.Session, cmd *cobra.Command, _ []string) error {
					val, ok := sess.Stack.Pop()
					if !ok {
						textui.Fprintf(cmd.ErrOrStderr(), "stack empty\n")
						return nil
					}
					textui.Fprintf(cmd.OutOrStdout(), "popped %q\n", val)
					return nil
				},
				Save: (*workbench.Session).SaveStackQueue,
			}
		},
		func() subcommand {
			return subcommand{
				Command: cobra.Command{
					Use:   "peek",
					Short: "Show the value on top of the stack",
					Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
				},
				RunE: func(sess *workbench.Session, cmd *cobra.Command, _ []string) error {
					val, ok := sess.Stack.Peek()
					if !ok {
						textui.Fprintf(cmd.ErrOrStderr(), "stack empty\n")
						return nil
					}
					textui.Fprintf(cmd.OutOrStdout(), "%s\n", val)
					return nil
				},
			}
		},
		func() subcommand {
			return subcommand{
				Command: cobra.Command{
					Use:   "clear",
					Short: "Remove every value from the stack",
					Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
				},
				RunE: func(sess *workbench.Session, _ *cobra.Command, _ []string) error {
					sess.Stack.Clear()
					return nil
				},
				Save: (*workbench.Session).SaveStackQueue,
			}
		},
		func() subcommand {
			return subcommand{
				Command: cobra.Command{
					Use:   "show",
					Short: "Show the stack, bottom first",
					Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
				},
				RunE: func(sess *workbench.Session, cmd *cobra.Command, _ []string) error {
					items := sess.Stack.Snapshot()
					showItems(cmd.OutOrStdout(), items, func(i int) string {
						if i == len(items)-1 {
							return "top"
						}
						return ""
					})
					return nil
				},
			}
		},
	)
}

// showItems prints one item per line, with an optional badge after
// each one.
func showItems(w io.Writer, items []string, badge func(int) string) {
	if len(items) == 0 {
		textui.Fprintf(w, "(empty)\n")
		return
	}
	for i, item := range items {
		if b := badge(i); b != "" {
			textui.Fprintf(w, "%s\t← %s\n", item, b)
		} else {
			textui.Fprintf(w, "%s\n", item)
		}
	}
}
