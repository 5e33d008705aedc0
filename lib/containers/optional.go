// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"io"

	"git.lukeshu.com/go/lowmemjson"
)

// Optional[T] is a T that might not be there; it encodes to JSON as
// either the value or `null`.
type Optional[T any] struct {
	OK  bool
	Val T
}

// OptionalOf adapts a `(val, ok)` return pair to an Optional.
func OptionalOf[T any](val T, ok bool) Optional[T] {
	if !ok {
		return Optional[T]{}
	}
	return Optional[T]{OK: true, Val: val}
}

var (
	_ lowmemjson.Encodable = Optional[bool]{}
	_ lowmemjson.Decodable = (*Optional[bool])(nil)
)

func (o Optional[T]) EncodeJSON(w io.Writer) error {
	if !o.OK {
		_, err := io.WriteString(w, "null")
		return err
	}
	return lowmemjson.Encode(w, o.Val)
}

func (o *Optional[T]) DecodeJSON(r io.RuneScanner) error {
	c, _, _ := r.ReadRune()
	if c == 'n' {
		_, _, _ = r.ReadRune() // u
		_, _, _ = r.ReadRune() // l
		_, _, _ = r.ReadRune() // l
		*o = Optional[T]{}
		return nil
	}
	_ = r.UnreadRune()
	o.OK = true
	return lowmemjson.Decode(r, &o.Val)
}
