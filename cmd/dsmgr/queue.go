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
	queueCmds = append(queueCmds,
		func() subcommand {
			return subcommand{
				Command: cobra.Command{
					Use:   "enqueue VALUE",
					Short: "Add a value at the rear of the queue",
					Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
				},
				RunE: func(sess *workbench.Session, cmd *cobra.Command, args []string) error {
					val, err := parseValue(args[0])
					if err != nil {
						return err
					}
					sess.Queue.Enqueue(val)
					textui.Fprintf(cmd.OutOrStdout(), "enqueued %q\n", val)
					return nil
				},
				Save: (*workbench.Session).SaveStackQueue,
			}
		},
		func() subcommand {
			return subcommand{
				Command: cobra.Command{
					Use:   "dequeue",
					Short: "Remove the value at the front of the queue",
					Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
				},
				RunE: func(sess *workbench.Session, cmd *cobra.Command, _ []string) error {
					val, ok := sess.Queue.Dequeue()
					if !ok {
						textui.Fprintf(cmd.ErrOrStderr(), "queue empty\n")
						return nil
					}
					textui.Fprintf(cmd.OutOrStdout(), "dequeued %q\n", val)
					return nil
				},
				Save: (*workbench.Session).SaveStackQueue,
			}
		},
		newQueuePeekCmd("front", "Show the value at the front of the queue",
			func(sess *workbench.Session) (string, bool) { return sess.Queue.PeekFront() }),
		newQueuePeekCmd("rear", "Show the value at the rear of the queue",
			func(sess *workbench.Session) (string, bool) { return sess.Queue.PeekRear() }),
		func() subcommand {
			return subcommand{
				Command: cobra.Command{
					Use:   "clear",
					Short: "Remove every value from the queue",
					Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
				},
				RunE: func(sess *workbench.Session, _ *cobra.Command, _ []string) error {
					sess.Queue.Clear()
					return nil
				},
				Save: (*workbench.Session).SaveStackQueue,
			}
		},
		func() subcommand {
			return subcommand{
				Command: cobra.Command{
					Use:   "show",
					Short: "Show the queue, front first",
					Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
				},
				RunE: func(sess *workbench.Session, cmd *cobra.Command, _ []string) error {
					items := sess.Queue.Snapshot()
					showItems(cmd.OutOrStdout(), items, func(i int) string {
						switch {
						case len(items) == 1:
							return "front/rear"
						case i == 0:
							return "front"
						case i == len(items)-1:
							return "rear"
						default:
							return ""
						}
					})
					return nil
				},
			}
		},
	)
}

func newQueuePeekCmd(use, short string, fn func(*workbench.Session) (string, bool)) func() subcommand {
	return func() subcommand {
		return subcommand{
			Command: cobra.Command{
				Use:   use,
				Short: short,
				Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
			},
			RunE: func(sess *workbench.Session, cmd *cobra.Command, _ []string) error {
				val, ok := fn(sess)
				if !ok {
					textui.Fprintf(cmd.ErrOrStderr(), "queue empty\n")
					return nil
				}
				textui.Fprintf(cmd.OutOrStdout(), "%s\n", val)
				return nil
			},
		}
	}
}
