/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package weburl

// headerVariant discriminates the two header footprints a buffer can use.
// Rust- or C-style implementations of this model steal spare bits from the
// backing pointer to carry this tag for free; Go pointers offer no such
// spare bits, so this module falls back to a one-byte tag field alongside
// the pointer instead.
type headerVariant uint8

const (
	// headerCompact means every derived offset fits an 8-bit integer: the
	// whole serialized string is at most 255 bytes long.
	headerCompact headerVariant = iota
	// headerWide is used once the string exceeds that, and stores offsets
	// at native int width.
	headerWide
)

// compactHeaderLimit is the largest code-unit count a compact header can
// address: a compact variant needs every offset to fit in an 8-bit integer,
// so the total buffer must be at most 255 bytes.
const compactHeaderLimit = 255

// optimalVariant returns the header footprint that should be used to store
// a buffer of the given code-unit count.
func optimalVariant(count int) headerVariant {
	if count <= compactHeaderLimit {
		return headerCompact
	}
	return headerWide
}
