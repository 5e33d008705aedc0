// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"strings"

	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/dsworkbench/lib/containers"
	"git.lukeshu.com/dsworkbench/lib/textui"
	"git.lukeshu.com/dsworkbench/lib/workbench"
)

func init() {
	listCmds = append(listCmds,
		func() subcommand {
			return subcommand{
				Command: cobra.Command{
					Use:   "ls",
					Short: "Show every list, its size, and its contents",
					Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
				},
				RunE: func(sess *workbench.Session, cmd *cobra.Command, _ []string) error {
					out := cmd.OutOrStdout()
					if sess.Lists.Len() == 0 {
						textui.Fprintf(out, "no lists\n")
						return nil
					}
					for _, name := range sess.Lists.Names() {
						l, _ := sess.Lists.Get(name)
						textui.Fprintf(out, "%s (%d): %v\n", name, l.Len(), l)
					}
					return nil
				},
			}
		},
		func() subcommand {
			var sel selectionFlags
			ret := subcommand{
				Command: cobra.Command{
					Use:   "get INDEX",
					Short: "Show the value at a 0-based index in the selected lists",
					Long: "" +
						"The result is a JSON object mapping each selected list's " +
						"name to the value, or to null if the index is out of range.",
					Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
				},
				RunE: func(sess *workbench.Session, cmd *cobra.Command, args []string) error {
					idx, err := parseIndex(args[0])
					if err != nil {
						return err
					}
					names, err := sel.resolve(cmd.Context(), sess.Lists)
					if err != nil {
						return err
					}
					results := make(map[string]containers.Optional[string], len(names))
					sess.Lists.ApplyToSelection(names, func(l *containers.LinkedList[string]) bool {
						val, ok := l.Get(idx)
						results[l.Name] = containers.OptionalOf(val, ok)
						return false
					})
					return writeJSON(cmd.OutOrStdout(), results)
				},
			}
			sel.register(&ret.Command)
			return ret
		},
		func() subcommand {
			var sel selectionFlags
			ret := subcommand{
				Command: cobra.Command{
					Use:   "index-of VALUE",
					Short: "Find the first index of a value in the selected lists",
					Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
				},
				RunE: func(sess *workbench.Session, cmd *cobra.Command, args []string) error {
					val, err := parseValue(args[0])
					if err != nil {
						return err
					}
					names, err := sel.resolve(cmd.Context(), sess.Lists)
					if err != nil {
						return err
					}
					out := cmd.OutOrStdout()
					sess.Lists.ApplyToSelection(names, func(l *containers.LinkedList[string]) bool {
						if idx := l.IndexOf(val); idx >= 0 {
							textui.Fprintf(out, "%s: %q found at index %d\n", l.Name, val, idx)
						} else {
							textui.Fprintf(out, "%s: %q not found\n", l.Name, val)
						}
						return false
					})
					return nil
				},
			}
			sel.register(&ret.Command)
			return ret
		},
		func() subcommand {
			var sel selectionFlags
			ret := subcommand{
				Command: cobra.Command{
					Use:   "details",
					Short: "Show the node-by-node structure of the selected lists",
					Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
				},
				RunE: func(sess *workbench.Session, cmd *cobra.Command, _ []string) error {
					names, err := sel.resolve(cmd.Context(), sess.Lists)
					if err != nil {
						return err
					}
					var blocks []string
					sess.Lists.ApplyToSelection(names, func(l *containers.LinkedList[string]) bool {
						blocks = append(blocks, l.Describe())
						return false
					})
					if len(blocks) > 0 {
						textui.Fprintf(cmd.OutOrStdout(), "%s\n", strings.Join(blocks, "\n\n"))
					}
					return nil
				},
			}
			sel.register(&ret.Command)
			return ret
		},
		func() subcommand {
			return subcommand{
				Command: cobra.Command{
					Use:   "export",
					Short: "Write every list as JSON to stdout",
					Long: "" +
						"The output is the same JSON object that is saved in the " +
						"state directory: each list's name mapped to an array of " +
						"its values, head first.",
					Args: cliutil.WrapPositionalArgs(cobra.NoArgs),
				},
				RunE: func(sess *workbench.Session, cmd *cobra.Command, _ []string) error {
					return writeJSON(cmd.OutOrStdout(), sess.Lists.Snapshot())
				},
			}
		},
	)
}
