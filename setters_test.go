/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package weburl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSetQuery_EncodesAndSetsLength(t *testing.T) {
	st := URLStructure{SchemeLen: 5, SchemeKind: SchemeHTTP}
	s := New(st, []byte("http:"))

	s2 := s.SetQuery(strPtr("a b"))
	assert.Equal(t, "http:?a%20b", s2.EntireString())
	assert.Equal(t, len("?a%20b"), s2.Structure().QueryLen)
}

func TestSetQuery_SpecialVsNonSpecialEncodeSet(t *testing.T) {
	special := New(URLStructure{SchemeLen: 5, SchemeKind: SchemeHTTP}, []byte("http:"))
	nonSpecial := New(URLStructure{SchemeLen: 7, SchemeKind: SchemeOther}, []byte("mailto:"))

	s2 := special.SetQuery(strPtr("a'b"))
	assert.Equal(t, "http:?a%27b", s2.EntireString())

	n2 := nonSpecial.SetQuery(strPtr("a'b"))
	assert.Equal(t, "mailto:?a'b", n2.EntireString())
}

func TestSetQuery_RemovesWhenNil(t *testing.T) {
	st := URLStructure{SchemeLen: 2, QueryLen: 4}
	s := New(st, []byte("a:?q=1"))
	s2 := s.SetQuery(nil)
	assert.Equal(t, "a:", s2.EntireString())
	assert.Equal(t, 0, s2.Structure().QueryLen)
}

func TestSetFragment_Encodes(t *testing.T) {
	st := URLStructure{SchemeLen: 2}
	s := New(st, []byte("a:"))
	s2 := s.SetFragment(strPtr("<x>"))
	assert.Equal(t, "a:#%3Cx%3E", s2.EntireString())
}

func TestSetPort_NeverEscapes(t *testing.T) {
	st := URLStructure{SchemeLen: 5, HostnameLen: 9, Sigil: SigilAuthority, SchemeKind: SchemeHTTP}
	s := New(st, []byte("http://localhost"))
	s2 := s.SetPort(strPtr("8080"))
	assert.Equal(t, "http://localhost:8080", s2.EntireString())
	assert.Equal(t, 5, s2.Structure().PortLen)
}

func TestSetPort_RemovesWhenNil(t *testing.T) {
	st := URLStructure{SchemeLen: 5, HostnameLen: 9, PortLen: 5, Sigil: SigilAuthority, SchemeKind: SchemeHTTP}
	s := New(st, []byte("http://localhost:8080"))
	s2 := s.SetPort(nil)
	assert.Equal(t, "http://localhost", s2.EntireString())
}

func TestSetSimpleComponent_DoesNotMutateSharedBuffer(t *testing.T) {
	st := URLStructure{SchemeLen: 2}
	s := New(st, []byte("a:"))
	shared := s.Clone()
	defer shared.Release()

	s2 := s.SetFragment(strPtr("x"))
	require.Equal(t, "a:#x", s2.EntireString())
	assert.Equal(t, "a:", shared.EntireString())
}
