// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package registry_test

import (
	"bytes"
	"strings"
	"testing"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/dsworkbench/lib/registry"
)

func TestSnapshotJSON(t *testing.T) {
	t.Parallel()
	reg := registry.New()
	require.NoError(t, reg.CreateFrom("zeta", []string{"1", "2"}))
	require.NoError(t, reg.Create("alpha"))
	require.NoError(t, reg.CreateFrom("mid", []string{"x"}))

	var buf bytes.Buffer
	require.NoError(t, lowmemjson.Encode(&buf, reg.Snapshot()))
	assert.Equal(t, `{"zeta":["1","2"],"alpha":[],"mid":["x"]}`, strings.TrimSpace(buf.String()))

	var snap registry.Snapshot
	require.NoError(t, lowmemjson.DecodeThenEOF(&buf, &snap))

	restored := registry.New()
	require.NoError(t, restored.Create("stale"))
	assert.Empty(t, restored.Restore(snap))

	assert.Equal(t, reg.Names(), restored.Names())
	for _, name := range reg.Names() {
		exp, _ := reg.Get(name)
		act, ok := restored.Get(name)
		require.True(t, ok)
		assert.Equal(t, exp.Slice(), act.Slice())
		assert.Equal(t, exp.Len(), act.Len())
	}
	_, ok := restored.Get("stale")
	assert.False(t, ok)
}

func TestSnapshotDecode(t *testing.T) {
	t.Parallel()
	type TestCase struct {
		In  string
		Out registry.Snapshot
		Err bool
	}
	testcases := map[string]TestCase{
		"empty": {
			In:  `{}`,
			Out: registry.Snapshot{},
		},
		"null-items": {
			In:  `{"a":null}`,
			Out: registry.Snapshot{{Name: "a", Items: []string{}}},
		},
		"repeated-key": {
			In: `{"a":["1"],"b":["2"],"a":["3"]}`,
			Out: registry.Snapshot{
				{Name: "a", Items: []string{"3"}},
				{Name: "b", Items: []string{"2"}},
			},
		},
		"not-an-object": {
			In:  `["a"]`,
			Err: true,
		},
		"bad-items": {
			In:  `{"a":[1,2]}`,
			Err: true,
		},
		"truncated": {
			In:  `{"a":["1"`,
			Err: true,
		},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			var snap registry.Snapshot
			err := lowmemjson.DecodeThenEOF(strings.NewReader(tc.In), &snap)
			if tc.Err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Out, snap)
		})
	}
}

func TestRestoreSkipsBlankNames(t *testing.T) {
	t.Parallel()
	reg := registry.New()
	skipped := reg.Restore(registry.Snapshot{
		{Name: "ok", Items: []string{"v"}},
		{Name: "", Items: []string{"lost"}},
		{Name: "ok", Items: []string{"dup"}},
	})
	assert.Equal(t, []string{"", "ok"}, skipped)
	assert.Equal(t, []string{"ok"}, reg.Names())
}
