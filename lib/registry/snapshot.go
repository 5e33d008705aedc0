// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package registry

import (
	"io"

	"git.lukeshu.com/go/lowmemjson"
)

// SnapshotEntry is the contents of one list, head first.
type SnapshotEntry struct {
	Name  string
	Items []string
}

// Snapshot is a detached copy of the contents of a Registry, in
// registry order.
//
// It encodes to JSON as an object mapping each name to an array of
// values, with the keys in registry order.  When decoding, key order
// is preserved; if a key is repeated, the last value wins but the
// position of the first is kept.
type Snapshot []SnapshotEntry

var (
	_ lowmemjson.Encodable = Snapshot(nil)
	_ lowmemjson.Decodable = (*Snapshot)(nil)
)

// Snapshot returns the current contents of the registry.
func (r *Registry) Snapshot() Snapshot {
	ret := make(Snapshot, 0, len(r.order))
	for _, name := range r.order {
		ret = append(ret, SnapshotEntry{
			Name:  name,
			Items: r.byName[name].Slice(),
		})
	}
	return ret
}

// Restore replaces the entire contents of the registry with the
// snapshot.  Entries with a blank or repeated name are skipped and
// returned.
func (r *Registry) Restore(snap Snapshot) (skipped []string) {
	for _, list := range r.byName {
		list.Clear()
	}
	r.byName = make(map[string]*List, len(snap))
	r.order = nil
	for _, entry := range snap {
		if err := r.CreateFrom(entry.Name, entry.Items); err != nil {
			skipped = append(skipped, entry.Name)
		}
	}
	return skipped
}

func (s Snapshot) EncodeJSON(w io.Writer) error {
	if _, err := io.WriteString(w, "{"); err != nil {
		return err
	}
	for i, entry := range s {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if err := lowmemjson.Encode(w, entry.Name); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ":"); err != nil {
			return err
		}
		items := entry.Items
		if items == nil {
			items = []string{}
		}
		if err := lowmemjson.Encode(w, items); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}")
	return err
}

func (s *Snapshot) DecodeJSON(r io.RuneScanner) error {
	*s = Snapshot{}
	pos := make(map[string]int)
	var name string
	return lowmemjson.DecodeObject(r,
		func(r io.RuneScanner) error {
			return lowmemjson.Decode(r, &name)
		},
		func(r io.RuneScanner) error {
			var items []string
			if err := lowmemjson.Decode(r, &items); err != nil {
				return err
			}
			if items == nil {
				items = []string{}
			}
			if i, ok := pos[name]; ok {
				(*s)[i].Items = items
				return nil
			}
			pos[name] = len(*s)
			*s = append(*s, SnapshotEntry{Name: name, Items: items})
			return nil
		})
}
