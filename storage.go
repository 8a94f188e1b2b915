/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package weburl

// URLStorage owns a (possibly shared) contiguous code-unit buffer together
// with the URLStructure describing its layout. It follows copy-on-write via
// reference counting: duplicating a URLStorage value by Go struct assignment
// shares the underlying buffer without bumping its reference count, so
// callers that need independent ownership — e.g. a URL type storing a copy
// of one of its own fields — must call Clone explicitly, and must call
// Release when a value's lifetime ends. A bare assignment without Clone is
// only safe when the duplicate is never mutated.
type URLStorage struct {
	buf *buffer
}

// New allocates a fresh URLStorage holding a copy of data, with the given
// structure. The caller asserts that structure.Len() == len(data); New
// panics otherwise, since that mismatch can only be a programmer error.
func New(structure URLStructure, data []byte) URLStorage {
	if structure.Len() != len(data) {
		panic("weburl: structure length does not match data length")
	}
	buf := newBuffer(structure, len(data))
	copy(buf.data, data)
	return URLStorage{buf: buf}
}

// Clone returns a new URLStorage value sharing s's buffer, with the
// reference count incremented. Use this whenever a URLStorage value is
// duplicated into a second, independently-mutable owner.
func (s URLStorage) Clone() URLStorage {
	return URLStorage{buf: s.buf.retain()}
}

// Release decrements s's buffer's reference count. Callers that called
// Clone to obtain s should call Release exactly once when s's lifetime
// ends, so isUnique continues to reflect genuine sharing.
func (s URLStorage) Release() {
	s.buf.release()
}

// Structure returns s's current structure header.
func (s URLStorage) Structure() URLStructure {
	return s.buf.structure
}

// Count returns the number of code units currently stored.
func (s URLStorage) Count() int {
	return len(s.buf.data)
}

// EntireString returns the full serialized URL as a string. It copies the
// backing bytes; for zero-copy access use WithEntireString.
func (s URLStorage) EntireString() string {
	return string(s.buf.data)
}

// WithEntireString calls f with zero-copy access to the full code-unit
// buffer. f must not retain the slice past the call.
func (s URLStorage) WithEntireString(f func(b []byte)) {
	f(s.buf.data)
}

// WithComponentBytes calls f with the byte range belonging to component c,
// and whether the component is present. f must not retain the slice past
// the call.
func (s URLStorage) WithComponentBytes(c Component, f func(b []byte, present bool)) {
	start, end, present := s.buf.structure.Range(c)
	f(s.buf.data[start:end], present)
}

// WithAllAuthorityComponentBytes calls f with the whole authority substring
// (username through port) and the four sub-component lengths, so a caller
// can re-split it without four separate range computations.
func (s URLStorage) WithAllAuthorityComponentBytes(f func(authority []byte, usernameLen, passwordLen, hostnameLen, portLen int)) {
	st := s.buf.structure
	o := st.DerivedOffsets()
	f(s.buf.data[o.UsernameStart:o.PortEnd], st.UsernameLen, st.PasswordLen, st.HostnameLen, st.PortLen)
}
