// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"git.lukeshu.com/dsworkbench/lib/containers"
	"git.lukeshu.com/dsworkbench/lib/registry"
	"git.lukeshu.com/dsworkbench/lib/textui"
)

func writeJSON(w io.Writer, obj any) (err error) {
	buffer := bufio.NewWriter(w)
	defer func() {
		if _err := buffer.Flush(); err == nil && _err != nil {
			err = _err
		}
	}()
	return lowmemjson.Encode(&lowmemjson.ReEncoder{
		Out: buffer,

		Indent:                "\t",
		ForceTrailingNewlines: true,
	}, obj)
}

var errNoValue = errors.New("a non-empty value is required")

// parseValue validates a VALUE argument.
func parseValue(arg string) (string, error) {
	val := strings.TrimSpace(arg)
	if val == "" {
		return "", errNoValue
	}
	return val, nil
}

// parseIndex validates an INDEX argument.  Range checking is left to
// the list itself.
func parseIndex(arg string) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: must be an integer", arg)
	}
	return idx, nil
}

// selectionFlags is the --list/--all pair shared by every command
// that operates on a selection of lists.
type selectionFlags struct {
	names []string
	all   bool
}

func (sf *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&sf.names, "list", "l", nil, "operate on the list named `name` (may be repeated)")
	cmd.Flags().BoolVar(&sf.all, "all", false, "operate on every list")
}

// resolve returns the selected lists that actually exist.  Selecting
// nothing at all is an error; selecting lists that do not exist is
// only a warning.
func (sf *selectionFlags) resolve(ctx context.Context, reg *registry.Registry) (containers.Set[string], error) {
	if sf.all {
		return containers.NewSet(reg.Names()...), nil
	}
	if len(sf.names) == 0 {
		return nil, errors.New("no lists selected (use --list=NAME or --all)")
	}
	sel := containers.NewSet(sf.names...)
	for _, name := range reg.Missing(sel) {
		dlog.Warnf(ctx, "no such list: %q", name)
		sel.Delete(name)
	}
	return sel, nil
}

// ordered returns the members of set in registry order.
func ordered(reg *registry.Registry, set containers.Set[string]) []string {
	var ret []string
	for _, name := range reg.Names() {
		if set.Has(name) {
			ret = append(ret, name)
		}
	}
	return ret
}

func reportChanged(w io.Writer, reg *registry.Registry, verb string, sel, changed containers.Set[string]) {
	if len(changed) == 0 {
		textui.Fprintf(w, "%s: no lists changed\n", verb)
		return
	}
	textui.Fprintf(w, "%s: changed %v: %s\n",
		verb,
		textui.Portion[int]{N: len(changed), D: len(sel)},
		strings.Join(ordered(reg, changed), ", "))
}
