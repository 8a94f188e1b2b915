/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package weburl

import "sync/atomic"

// buffer is the single allocation backing a URLStorage value: a reference
// count, the structure header (in its current variant), and the code-unit
// bytes themselves. The header and the bytes intentionally live in the same
// Go struct — there is no cyclic pointer graph between them.
type buffer struct {
	refs      int32
	variant   headerVariant
	structure URLStructure
	data      []byte
}

// newBuffer allocates a fresh, uniquely-owned buffer sized for count bytes,
// with its header set to the optimal variant for (count, structure).
func newBuffer(structure URLStructure, count int) *buffer {
	return &buffer{
		refs:      1,
		variant:   optimalVariant(count),
		structure: structure,
		data:      make([]byte, count, count),
	}
}

// retain increments b's reference count and returns b, for use by
// URLStorage.Clone.
func (b *buffer) retain() *buffer {
	atomic.AddInt32(&b.refs, 1)
	return b
}

// release decrements b's reference count. Go's garbage collector reclaims
// the allocation once nothing references it; release exists so isUnique
// reflects the true number of live URLStorage values sharing b.
func (b *buffer) release() {
	atomic.AddInt32(&b.refs, -1)
}

// isUnique reports whether b has exactly one owner, the precondition for
// in-place mutation.
func (b *buffer) isUnique() bool {
	return atomic.LoadInt32(&b.refs) == 1
}
