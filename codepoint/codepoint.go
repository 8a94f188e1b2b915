/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package codepoint implements the WHATWG URL Standard's code-point
// classification predicates: URL code points and forbidden host code
// points. Both are pure functions backed by bitmap lookups.
package codepoint

import (
	"github.com/badu/weburl/internal/asciiset"
)

// urlASCIISet is the set of ASCII bytes that are URL code points on their
// own: alphanumerics plus the punctuation listed in the URL Standard.
var urlASCIISet = asciiset.FromRange('a', 'z').
	Union(asciiset.FromRange('A', 'Z')).
	Union(asciiset.FromRange('0', '9')).
	Union(asciiset.FromBytes('!', '$', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/', ':', ';', '=', '?', '@', '_', '~'))

// forbiddenHostSet is the set of ASCII bytes forbidden from appearing
// unencoded in a host.
var forbiddenHostSet = asciiset.FromBytes(
	0x00, '\t', '\n', '\r', ' ',
	'#', '%', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|',
)

// IsForbiddenHostCodePoint reports whether b must not appear unencoded in a
// host.
func IsForbiddenHostCodePoint(b byte) bool {
	return forbiddenHostSet.Contains(b)
}

// isNonCharacter reports whether r is one of the Unicode noncharacters:
// U+FDD0..U+FDEF, or any scalar whose low 16 bits are 0xFFFE or 0xFFFF.
func isNonCharacter(r rune) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	low := r & 0xFFFF
	return low == 0xFFFE || low == 0xFFFF
}

func isSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDFFF
}

// IsURLCodePoint reports whether r is a URL code point per the WHATWG URL
// Standard: ASCII alphanumerics and a fixed punctuation set, plus Unicode
// scalars in [U+00A0, U+10FFFD] excluding surrogates and noncharacters.
func IsURLCodePoint(r rune) bool {
	switch {
	case r < 0x80:
		return urlASCIISet.Contains(byte(r))
	case r < 0xA0:
		return false
	case r > 0x10FFFD:
		return false
	case isSurrogate(r):
		return false
	case isNonCharacter(r):
		return false
	default:
		return true
	}
}

// decodeRawScalar decodes the leading UTF-8-shaped scalar from b without
// rejecting the surrogate range the way utf8.DecodeRune does. This lets
// HasNonURLCodePoints detect lone-surrogate encodings (which stdlib UTF-8
// decoding reports only as "invalid", losing the scalar value) and flag
// them as non-URL code points rather than as a generic decode failure. ok is
// false when b does not begin with a well-formed UTF-8-shaped sequence; r is
// meaningless in that case. A genuinely well-formed encoding of U+FFFD
// itself (utf8.RuneError's numeric value) must still report ok, so callers
// cannot use r == utf8.RuneError as a failure sentinel.
func decodeRawScalar(b []byte) (r rune, size int, ok bool) {
	if len(b) == 0 {
		return 0, 0, false
	}
	c0 := b[0]
	switch {
	case c0 < 0x80:
		return rune(c0), 1, true
	case c0&0xE0 == 0xC0:
		if len(b) < 2 || b[1]&0xC0 != 0x80 {
			return 0, 1, false
		}
		return rune(c0&0x1F)<<6 | rune(b[1]&0x3F), 2, true
	case c0&0xF0 == 0xE0:
		if len(b) < 3 || b[1]&0xC0 != 0x80 || b[2]&0xC0 != 0x80 {
			return 0, 1, false
		}
		return rune(c0&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), 3, true
	case c0&0xF8 == 0xF0:
		if len(b) < 4 || b[1]&0xC0 != 0x80 || b[2]&0xC0 != 0x80 || b[3]&0xC0 != 0x80 {
			return 0, 1, false
		}
		return rune(c0&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F), 4, true
	default:
		return 0, 1, false
	}
}

// HasNonURLCodePoints reports whether any scalar decoded from the UTF-8
// byte sequence data fails the URL code point test, including malformed
// sequences and lone-surrogate encodings.
func HasNonURLCodePoints(data []byte) bool {
	for i := 0; i < len(data); {
		r, size, ok := decodeRawScalar(data[i:])
		if !ok {
			return true
		}
		if !IsURLCodePoint(r) {
			return true
		}
		i += size
	}
	return false
}
