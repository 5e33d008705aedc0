// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package kvstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/datawire/dlib/dlog"
)

// FileStore is a Store that keeps each value in a file named after
// its key, in a single directory.  Values are replaced atomically by
// writing a temporary file and renaming it over the old one.
type FileStore struct {
	dir string
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a FileStore rooted at dir, creating dir if it
// does not yet exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory that the FileStore is rooted at.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) filename(key string) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *FileStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	filename, err := s.filename(key)
	if err != nil {
		return nil, false, err
	}
	dat, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	dlog.Tracef(ctx, "read %d bytes from %q", len(dat), filename)
	return dat, true, nil
}

func (s *FileStore) Store(ctx context.Context, key string, val []byte) (err error) {
	filename, err := s.filename(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, "."+key+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err := tmp.Write(val); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return err
	}
	dlog.Tracef(ctx, "wrote %d bytes to %q", len(val), filename)
	return nil
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	filename, err := s.filename(key)
	if err != nil {
		return err
	}
	if err := os.Remove(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
