/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package percentencode

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Decode returns the percent-decoding of src under e, reversing any
// substitution e defines. Decoding is total — every byte sequence has a
// well-defined decoding; a stray '%' not followed by two hex digits is
// passed through (after unsubstitution) rather than rejected.
func Decode(src []byte, e EncodeSet) []byte {
	out := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		c := src[i]
		if c == '%' && i+2 < len(src) {
			if hi, ok1 := unhex(src[i+1]); ok1 {
				if lo, ok2 := unhex(src[i+2]); ok2 {
					out = append(out, hi<<4|lo)
					i += 3
					continue
				}
			}
		}
		if c == '%' {
			if r, ok := e.Unsubstitute('%'); ok {
				out = append(out, r)
			} else {
				out = append(out, '%')
			}
			i++
			continue
		}
		if c < 0x80 {
			if r, ok := e.Unsubstitute(c); ok {
				out = append(out, r)
			} else {
				out = append(out, c)
			}
			i++
			continue
		}
		out = append(out, c)
		i++
	}
	return out
}

// DecodeString is a convenience wrapper around Decode for string inputs,
// returning the decoded bytes as a string.
func DecodeString(s string, e EncodeSet) string {
	return string(Decode([]byte(s), e))
}
