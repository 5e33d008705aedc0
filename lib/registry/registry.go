// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package registry implements a name-keyed collection of independent
// linked lists.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"git.lukeshu.com/dsworkbench/lib/containers"
	"git.lukeshu.com/dsworkbench/lib/slices"
)

// List is the type of list held in a Registry.
type List = containers.LinkedList[string]

var (
	ErrEmptyName     = errors.New("list name must not be empty")
	ErrDuplicateName = errors.New("list already exists")
)

// DuplicateNameError is returned by Registry.Create when the name is
// already taken.  It matches ErrDuplicateName with errors.Is.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("list %q already exists", e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// Registry maps names to lists.  Lookup is by name; iteration (Names,
// ApplyToSelection, Snapshot) is in order of creation.
//
// The zero Registry is empty and ready to use.
type Registry struct {
	byName map[string]*List
	order  []string
}

func New() *Registry {
	return &Registry{
		byName: make(map[string]*List),
	}
}

// Len returns the number of lists in the registry.
func (r *Registry) Len() int {
	return len(r.order)
}

// Names returns the names of the lists in the registry, in order of
// creation.
func (r *Registry) Names() []string {
	ret := make([]string, len(r.order))
	copy(ret, r.order)
	return ret
}

// Create adds a new empty list under the given name.  It fails
// without modifying the registry if the name is blank or is already
// present.
func (r *Registry) Create(name string) error {
	return r.CreateFrom(name, nil)
}

// CreateFrom is like Create, but populates the new list with vals.
func (r *Registry) CreateFrom(name string, vals []string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if _, exists := r.byName[name]; exists {
		return &DuplicateNameError{Name: name}
	}
	if r.byName == nil {
		r.byName = make(map[string]*List)
	}
	list := &List{Name: name}
	list.Load(vals)
	r.byName[name] = list
	r.order = append(r.order, name)
	return nil
}

// Delete removes each named list.  Names that are not present are
// ignored.
func (r *Registry) Delete(names ...string) {
	gone := containers.NewSet[string]()
	for _, name := range names {
		list, ok := r.byName[name]
		if !ok {
			continue
		}
		list.Clear()
		delete(r.byName, name)
		gone.Insert(name)
	}
	if len(gone) == 0 {
		return
	}
	r.order = slices.RemoveAllFunc(r.order, gone.Has)
}

// Get returns the named list.
func (r *Registry) Get(name string) (*List, bool) {
	list, ok := r.byName[name]
	return list, ok
}

// ApplyToSelection calls fn on each selected list (in registry
// order), and returns the names of the lists for which fn returned
// true.  Selected names that are not in the registry are skipped.
func (r *Registry) ApplyToSelection(sel containers.Set[string], fn func(*List) bool) containers.Set[string] {
	changed := containers.NewSet[string]()
	for _, name := range r.order {
		if !sel.Has(name) {
			continue
		}
		if fn(r.byName[name]) {
			changed.Insert(name)
		}
	}
	return changed
}

// Missing returns the members of sel that are not in the registry.
func (r *Registry) Missing(sel containers.Set[string]) []string {
	var ret []string
	for _, name := range sel.Sorted() {
		if _, ok := r.byName[name]; !ok {
			ret = append(ret, name)
		}
	}
	return ret
}
