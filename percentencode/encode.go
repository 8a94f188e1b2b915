/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package percentencode

// drainBufSize is the stack buffer size used by the buffered drainers. It
// matches a typical small-string inline capacity (>= 15 bytes) so that any
// source sequence of up to five bytes drains in a single callback even when
// every byte expands to its three-byte percent-encoded form.
const drainBufSize = 16

// WriteBuffered drains Enc(src, e) forward: it calls write with successive
// chunks whose concatenation equals the encoded form of src. It returns
// true iff at least one byte of src was substituted or percent-encoded,
// i.e. whether the output differs from src.
func WriteBuffered(src []byte, e EncodeSet, write func(chunk []byte)) (escaped bool) {
	var buf [drainBufSize]byte
	n := 0
	for _, b := range src {
		g, bEscaped := groupFor(b, e)
		escaped = escaped || bEscaped
		if n+g.n > drainBufSize {
			write(buf[:n])
			n = 0
		}
		copy(buf[n:], g.bytes[:g.n])
		n += g.n
	}
	if n > 0 {
		write(buf[:n])
	}
	return escaped
}

// WriteBufferedFromBack drains Enc(src, e) in reverse: it calls write with
// successive chunks such that concatenating them in the order emitted,
// then reversing that order, reproduces the encoded form of src. Each
// individual chunk is itself in forward byte order. This lets a caller
// build an encoded string back-to-front without first measuring its length.
func WriteBufferedFromBack(src []byte, e EncodeSet, write func(chunk []byte)) (escaped bool) {
	var buf [drainBufSize]byte
	n := 0
	for i := len(src) - 1; i >= 0; i-- {
		g, bEscaped := groupFor(src[i], e)
		escaped = escaped || bEscaped
		if n+g.n > drainBufSize {
			write(buf[drainBufSize-n:])
			n = 0
		}
		n += g.n
		copy(buf[drainBufSize-n:], g.bytes[:g.n])
	}
	if n > 0 {
		write(buf[drainBufSize-n:])
	}
	return escaped
}

// Encode returns the percent-encoded form of src under e as a freshly
// allocated string, built with the forward drainer.
func Encode(src []byte, e EncodeSet) string {
	var buf []byte
	WriteBuffered(src, e, func(chunk []byte) {
		buf = append(buf, chunk...)
	})
	return string(buf)
}

// EncodeString is a convenience wrapper around Encode for string inputs.
func EncodeString(s string, e EncodeSet) string {
	return Encode([]byte(s), e)
}
