/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package percentencode

const upperHex = "0123456789ABCDEF"

// group is the expansion of a single source byte under an EncodeSet: either
// one byte (copied or substituted) or the three-byte percent-encoded form.
// It is always built and consumed in forward byte order, even when a
// drainer is filling its output back-to-front.
type group struct {
	bytes [3]byte
	n     int
}

// groupFor computes the expansion of source byte b under e. escaped reports
// whether the group is anything other than a bare SourceByte, i.e. whether
// emitting it mutates the input. Substitution is checked before the escape
// predicate: a byte e substitutes (e.g. FormEncoded's space -> '+') takes
// that branch even when it also falls inside e's escape set, since a
// substituted byte is handled instead of escaped.
func groupFor(b byte, e EncodeSet) (g group, escaped bool) {
	if b < 0x80 {
		if sub, ok := e.Substitute(b); ok {
			return group{bytes: [3]byte{sub}, n: 1}, true
		}
	}
	if b >= 0x80 || e.ShouldEscape(b) {
		return group{bytes: [3]byte{'%', upperHex[b>>4], upperHex[b&0x0F]}, n: 3}, true
	}
	return group{bytes: [3]byte{b}, n: 1}, false
}
