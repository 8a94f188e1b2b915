/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package weburl

// ComponentEncoder writes the encoded form of value into the sequence of
// chunks passed to emit, and reports whether encoding actually changed
// anything (needsEncoding). schemeKind is passed through so encoders that
// are scheme-sensitive (e.g. query encode-set selection between special and
// non-special schemes) can branch once per call rather than per byte.
type ComponentEncoder func(value string, schemeKind SchemeKind, emit func(chunk []byte)) (needsEncoding bool)

// SetSimpleComponent is the generic single-component setter, for components
// whose change never affects sibling components (query, fragment, port).
// When newValue is nil the component is removed entirely. Otherwise the
// component's range is replaced with 1+totalLen bytes: a mandatory prefix
// byte (':' for port, '?' for query, '#' for fragment) followed by either
// the raw value (if encode reported no escaping was needed) or its encoded
// form.
func (s URLStorage) SetSimpleComponent(c Component, newValue *string, prefix byte, encode ComponentEncoder) URLStorage {
	structure := s.buf.structure
	start, end, _ := structure.Range(c)

	if newValue == nil {
		newStructure := structure.WithLength(c, 0)
		return s.RemoveSubrange(start, end, newStructure)
	}

	value := *newValue
	totalLen := 0
	needsEncoding := encode(value, structure.SchemeKind, func(chunk []byte) {
		totalLen += len(chunk)
	})
	insertCount := 1 + totalLen
	newStructure := structure.WithLength(c, insertCount)

	return s.ReplaceSubrange(start, end, insertCount, newStructure, func(dst []byte) int {
		dst[0] = prefix
		if !needsEncoding {
			copy(dst[1:], value)
			return insertCount
		}
		pos := 1
		encode(value, structure.SchemeKind, func(chunk []byte) {
			pos += copy(dst[pos:], chunk)
		})
		return pos
	})
}
