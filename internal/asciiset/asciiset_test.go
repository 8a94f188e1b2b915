/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package asciiset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBytes(t *testing.T) {
	s := FromBytes('a', 'Z', '9')
	assert.True(t, s.Contains('a'))
	assert.True(t, s.Contains('Z'))
	assert.True(t, s.Contains('9'))
	assert.False(t, s.Contains('b'))
	assert.False(t, s.Contains(0x80))
}

func TestFromRange(t *testing.T) {
	s := FromRange('a', 'f')
	for b := byte('a'); b <= 'f'; b++ {
		assert.True(t, s.Contains(b))
	}
	assert.False(t, s.Contains('g'))
	assert.False(t, s.Contains('`'))
}

func TestUnion(t *testing.T) {
	s := FromBytes('a').Union(FromBytes('b'))
	assert.True(t, s.Contains('a'))
	assert.True(t, s.Contains('b'))
	assert.False(t, s.Contains('c'))
}

func TestComplement(t *testing.T) {
	s := FromRange(0x00, 0x1F).Complement()
	assert.False(t, s.Contains(0x10))
	assert.True(t, s.Contains('a'))
	assert.False(t, s.Contains(0x80), "complement never includes non-ASCII")
}

func TestWith_IgnoresNonASCII(t *testing.T) {
	var s Set
	s = s.With(0xFF)
	assert.Equal(t, Set{}, s)
}
