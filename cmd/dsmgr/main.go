// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Command dsmgr manipulates a set of named singly-linked lists, a
// stack, and a queue, saving the result after every change.
package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/datawire/dlib/derror"
	"github.com/datawire/dlib/dgroup"
	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/dsworkbench/lib/kvstore"
	"git.lukeshu.com/dsworkbench/lib/textui"
	"git.lukeshu.com/dsworkbench/lib/workbench"
)

type subcommand struct {
	cobra.Command
	RunE func(*workbench.Session, *cobra.Command, []string) error
	// Save persists whatever RunE may have changed; nil for
	// commands that only read.
	Save func(*workbench.Session, context.Context) error
}

// Each group holds constructors rather than commands, so that every
// argparser gets its own flag state.
var listCmds, stackCmds, queueCmds, bothCmds, debugCmds []func() subcommand

const cacheSize = 8

func defaultStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "dsmgr")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "dsmgr")
	}
	return ""
}

func openStore(dir string) (kvstore.Store, error) {
	if dir == "" {
		return new(kvstore.MemStore), nil
	}
	store, err := kvstore.NewFileStore(dir)
	if err != nil {
		return nil, err
	}
	return kvstore.NewCachedStore(store, cacheSize), nil
}

func newArgparser() *cobra.Command {
	logLevelFlag := textui.LogLevelFlag{
		Level: dlog.LogLevelInfo,
	}
	stateDirFlag := defaultStateDir()

	argparser := &cobra.Command{
		Use:   "dsmgr {[flags]|SUBCOMMAND}",
		Short: "Manage linked lists, a stack, and a queue",

		Args: cliutil.WrapPositionalArgs(cliutil.OnlySubcommands),
		RunE: cliutil.RunSubcommands,

		SilenceErrors: true, // main() will handle this after .ExecuteContext() returns
		SilenceUsage:  true, // our FlagErrorFunc will handle it

		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	argparser.SetFlagErrorFunc(cliutil.FlagErrorFunc)
	argparser.SetHelpTemplate(cliutil.HelpTemplate)
	argparser.PersistentFlags().Var(&logLevelFlag, "verbosity", "set the verbosity")
	argparser.PersistentFlags().StringVar(&stateDirFlag, "state-dir", stateDirFlag, "save state in `directory`; if empty, nothing is saved")
	if err := argparser.MarkPersistentFlagDirname("state-dir"); err != nil {
		panic(err)
	}

	for _, cmdgrp := range []struct {
		name     string
		short    string
		children []func() subcommand
	}{
		{"list", "Operate on named singly-linked lists", listCmds},
		{"stack", "Operate on the stack", stackCmds},
		{"queue", "Operate on the queue", queueCmds},
		{"both", "Operate on the stack and the queue together", bothCmds},
		{"debug", "Inspect the saved state", debugCmds},
	} {
		parent := &cobra.Command{
			Use:   cmdgrp.name + " {[flags]|SUBCOMMAND}",
			Short: cmdgrp.short,

			Args: cliutil.WrapPositionalArgs(cliutil.OnlySubcommands),
			RunE: cliutil.RunSubcommands,
		}
		argparser.AddCommand(parent)
		for _, newChild := range cmdgrp.children {
			child := newChild()
			cmd := child.Command
			runE := child.RunE
			save := child.Save
			cmd.RunE = func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				logger := textui.NewLogger(cmd.ErrOrStderr(), logLevelFlag.Level)
				ctx = dlog.WithLogger(ctx, logger)
				ctx = dlog.WithField(ctx, "dsmgr.command",
					strings.TrimPrefix(cmd.CommandPath(), argparser.Name()+" "))
				dlog.SetFallbackLogger(logger.WithField("dsworkbench.THIS_IS_A_BUG", true))

				grp := dgroup.NewGroup(ctx, dgroup.GroupConfig{
					EnableSignalHandling: true,
				})
				grp.Go("main", func(ctx context.Context) (err error) {
					defer func() {
						if _err := derror.PanicToError(recover()); _err != nil {
							err = _err
						}
					}()
					store, err := openStore(stateDirFlag)
					if err != nil {
						return err
					}
					dlog.Debugf(dlog.WithField(ctx, "dsmgr.state-dir", stateDirFlag), "opened store")
					sess := workbench.Open(ctx, store)

					cmd.SetContext(ctx)
					if err := runE(sess, cmd, args); err != nil {
						return err
					}
					if save != nil {
						return save(sess, ctx)
					}
					return nil
				})
				return grp.Wait()
			}
			parent.AddCommand(&cmd)
		}
	}

	return argparser
}

func main() {
	argparser := newArgparser()
	if err := argparser.ExecuteContext(context.Background()); err != nil {
		textui.Fprintf(os.Stderr, "%v: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}
