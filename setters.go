/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package weburl

import "github.com/badu/weburl/percentencode"

// percentEncoder adapts a percentencode.EncodeSet into a ComponentEncoder
// that ignores scheme kind, for components whose encode-set never varies
// by scheme (fragment).
func percentEncoder(set percentencode.EncodeSet) ComponentEncoder {
	return func(value string, _ SchemeKind, emit func([]byte)) bool {
		return percentencode.WriteBuffered([]byte(value), set, emit)
	}
}

// querySchemeEncoder branches once per call between the special- and
// non-special-scheme query encode sets, rather than re-checking the scheme
// kind for every byte of the value.
func querySchemeEncoder() ComponentEncoder {
	return func(value string, kind SchemeKind, emit func([]byte)) bool {
		set := percentencode.QueryNotSpecial
		if kind.IsSpecial() {
			set = percentencode.QuerySpecial
		}
		return percentencode.WriteBuffered([]byte(value), set, emit)
	}
}

// SetFragment replaces the fragment component with the percent-encoded form
// of newValue under the Fragment encode-set, or removes it when newValue is
// nil.
func (s URLStorage) SetFragment(newValue *string) URLStorage {
	return s.SetSimpleComponent(ComponentFragment, newValue, '#', percentEncoder(percentencode.Fragment))
}

// SetQuery replaces the query component with the percent-encoded form of
// newValue, choosing QuerySpecial or QueryNotSpecial based on the current
// structure's scheme kind, or removes it when newValue is nil.
func (s URLStorage) SetQuery(newValue *string) URLStorage {
	return s.SetSimpleComponent(ComponentQuery, newValue, '?', querySchemeEncoder())
}

// SetPort replaces the port component. newValue must already be the decimal
// digits of the port (no leading ':'), or nil to remove the port. Port text
// is never escaped, so the encoder always reports needsEncoding = false.
func (s URLStorage) SetPort(newValue *string) URLStorage {
	return s.SetSimpleComponent(ComponentPort, newValue, ':', func(value string, _ SchemeKind, emit func([]byte)) bool {
		emit([]byte(value))
		return false
	})
}
