// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"strings"

	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/dsworkbench/lib/registry"
	"git.lukeshu.com/dsworkbench/lib/textui"
	"git.lukeshu.com/dsworkbench/lib/workbench"
)

func init() {
	listCmds = append(listCmds,
		func() subcommand {
			return subcommand{
				Command: cobra.Command{
					Use:   "create NAME",
					Short: "Create a new empty list",
					Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
				},
				RunE: func(sess *workbench.Session, cmd *cobra.Command, args []string) error {
					name := strings.TrimSpace(args[0])
					if err := sess.Lists.Create(name); err != nil {
						return err
					}
					textui.Fprintf(cmd.OutOrStdout(), "created list %q\n", name)
					return nil
				},
				Save: (*workbench.Session).SaveLists,
			}
		},
		func() subcommand {
			return subcommand{
				Command: cobra.Command{
					Use:   "delete NAME...",
					Short: "Delete lists",
					Long:  "Deleting a list that does not exist is not an error.",
					Args:  cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),
				},
				RunE: func(sess *workbench.Session, cmd *cobra.Command, args []string) error {
					var deleted []string
					for _, name := range args {
						if _, ok := sess.Lists.Get(name); ok {
							deleted = append(deleted, name)
						}
					}
					sess.Lists.Delete(args...)
					if len(deleted) == 0 {
						textui.Fprintf(cmd.OutOrStdout(), "deleted: nothing\n")
						return nil
					}
					textui.Fprintf(cmd.OutOrStdout(), "deleted: %s\n", strings.Join(deleted, ", "))
					return nil
				},
				Save: (*workbench.Session).SaveLists,
			}
		},
		newListValueCmd("push", "Add a value at the back of the selected lists",
			func(l *registry.List, val string) { l.Append(val) }),
		newListValueCmd("unshift", "Add a value at the front of the selected lists",
			func(l *registry.List, val string) { l.Prepend(val) }),
		newListRemoveCmd("pop", "Remove the value at the back of the selected lists",
			(*registry.List).RemoveLast),
		newListRemoveCmd("shift", "Remove the value at the front of the selected lists",
			(*registry.List).RemoveFirst),
		func() subcommand {
			var sel selectionFlags
			ret := subcommand{
				Command: cobra.Command{
					Use:   "set INDEX VALUE",
					Short: "Overwrite the value at a 0-based index in the selected lists",
					Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(2)),
				},
				RunE: func(sess *workbench.Session, cmd *cobra.Command, args []string) error {
					idx, err := parseIndex(args[0])
					if err != nil {
						return err
					}
					val, err := parseValue(args[1])
					if err != nil {
						return err
					}
					names, err := sel.resolve(cmd.Context(), sess.Lists)
					if err != nil {
						return err
					}
					changed := sess.Lists.ApplyToSelection(names, func(l *registry.List) bool {
						return l.Set(idx, val)
					})
					reportChanged(cmd.OutOrStdout(), sess.Lists, "set", names, changed)
					return nil
				},
				Save: (*workbench.Session).SaveLists,
			}
			sel.register(&ret.Command)
			return ret
		},
	)
}

func newListValueCmd(verb, short string, fn func(*registry.List, string)) func() subcommand {
	return func() subcommand {
		var sel selectionFlags
		ret := subcommand{
			Command: cobra.Command{
				Use:   verb + " VALUE",
				Short: short,
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
				changed := sess.Lists.ApplyToSelection(names, func(l *registry.List) bool {
					fn(l, val)
					return true
				})
				reportChanged(cmd.OutOrStdout(), sess.Lists, verb, names, changed)
				return nil
			},
			Save: (*workbench.Session).SaveLists,
		}
		sel.register(&ret.Command)
		return ret
	}
}

func newListRemoveCmd(verb, short string, fn func(*registry.List) (string, bool)) func() subcommand {
	return func() subcommand {
		var sel selectionFlags
		ret := subcommand{
			Command: cobra.Command{
				Use:   verb,
				Short: short,
				Long:  "Removing from an empty list is not an error; the list is reported as unchanged.",
				Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
			},
			RunE: func(sess *workbench.Session, cmd *cobra.Command, _ []string) error {
				names, err := sel.resolve(cmd.Context(), sess.Lists)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				changed := sess.Lists.ApplyToSelection(names, func(l *registry.List) bool {
					val, ok := fn(l)
					if ok {
						textui.Fprintf(out, "%s: removed %q\n", l.Name, val)
					}
					return ok
				})
				reportChanged(out, sess.Lists, verb, names, changed)
				return nil
			},
			Save: (*workbench.Session).SaveLists,
		}
		sel.register(&ret.Command)
		return ret
	}
}
