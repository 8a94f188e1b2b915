/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package percentencode implements the WHATWG URL Standard's percent-encoding
// and percent-decoding transforms, parameterised by encode-set policies.
package percentencode

import "github.com/badu/weburl/internal/asciiset"

// EncodeSet is a policy value selecting which ASCII bytes a percent-encoder
// must escape and, optionally, which single ASCII byte substitutes for
// another instead of being escaped or copied as-is. EncodeSet values are
// immutable once built and carry no state of their own, so the same value
// is safe to share across encode calls and goroutines.
type EncodeSet struct {
	escape    asciiset.Set
	hasSubst  bool
	substFrom byte
	substTo   byte
}

// ShouldEscape reports whether b must be percent-encoded under e.
func (e EncodeSet) ShouldEscape(b byte) bool {
	return e.escape.Contains(b)
}

// Substitute returns the byte that replaces b in the encoded output, if e
// defines a substitution for b.
func (e EncodeSet) Substitute(b byte) (byte, bool) {
	if e.hasSubst && b == e.substFrom {
		return e.substTo, true
	}
	return 0, false
}

// Unsubstitute returns the byte that b decodes back to, if e defines a
// substitution whose target is b. It is the inverse of Substitute.
func (e EncodeSet) Unsubstitute(b byte) (byte, bool) {
	if e.hasSubst && b == e.substTo {
		return e.substFrom, true
	}
	return 0, false
}

// withEscape returns e extended to also escape every byte in more.
func (e EncodeSet) withEscape(more asciiset.Set) EncodeSet {
	e.escape = e.escape.Union(more)
	return e
}

// withSubstitution returns e with a forward substitution from -> to added.
// The catalogue never needs more than one substitution pair per encode set;
// a second call overwrites the first.
func (e EncodeSet) withSubstitution(from, to byte) EncodeSet {
	e.hasSubst = true
	e.substFrom = from
	e.substTo = to
	return e
}
