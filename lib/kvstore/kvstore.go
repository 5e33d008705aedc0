// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package kvstore implements simple whole-value key-value stores,
// used for persisting snapshots.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Store is a key-value store in which each Store call replaces the
// whole value for the key.
type Store interface {
	// Load returns the value for key, or false if there is none.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Store(ctx context.Context, key string, val []byte) error
	// Delete removes the value for key; it is not an error if
	// there was none.
	Delete(ctx context.Context, key string) error
}

var ErrInvalidKey = errors.New("invalid key")

// ValidateKey returns an error wrapping ErrInvalidKey if key is not
// usable as a key in every Store implementation in this package.
func ValidateKey(key string) error {
	switch {
	case key == "", key == ".", key == "..":
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	case strings.ContainsAny(key, "/\\\x00"):
		return fmt.Errorf("%w: %q: contains a path separator", ErrInvalidKey, key)
	case strings.HasPrefix(key, "."):
		return fmt.Errorf("%w: %q: begins with a dot", ErrInvalidKey, key)
	}
	return nil
}

// MemStore is an in-memory Store.  The zero MemStore is empty and
// ready to use.
type MemStore struct {
	vals map[string][]byte
}

var _ Store = (*MemStore)(nil)

func (s *MemStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	if err := ValidateKey(key); err != nil {
		return nil, false, err
	}
	val, ok := s.vals[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), val...), true, nil
}

func (s *MemStore) Store(_ context.Context, key string, val []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if s.vals == nil {
		s.vals = make(map[string][]byte)
	}
	s.vals[key] = append([]byte(nil), val...)
	return nil
}

func (s *MemStore) Delete(_ context.Context, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	delete(s.vals, key)
	return nil
}
