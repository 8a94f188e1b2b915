/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package percentencode

import "github.com/badu/weburl/internal/asciiset"

// c0ControlSet is bytes 0x00-0x1F plus 0x7F, the base every other encode set
// in the catalogue inherits.
var c0ControlSet = asciiset.FromRange(0x00, 0x1F).With(0x7F)

// C0Control escapes the C0 control bytes and nothing else. It is the
// baseline every other catalogue entry below extends.
var C0Control = EncodeSet{escape: c0ControlSet}

// Fragment additionally escapes the bytes the URL Standard forbids
// unescaped in a fragment: space, '"', '<', '>', '`'.
var Fragment = C0Control.withEscape(asciiset.FromBytes(' ', '"', '<', '>', '`'))

// QueryNotSpecial additionally escapes space, '"', '#', '<', '>' for a query
// belonging to a non-special-scheme URL.
var QueryNotSpecial = C0Control.withEscape(asciiset.FromBytes(' ', '"', '#', '<', '>'))

// QuerySpecial extends QueryNotSpecial with the single quote, for queries on
// special-scheme URLs (http, https, ws, wss, ftp, file).
var QuerySpecial = QueryNotSpecial.withEscape(asciiset.FromBytes('\''))

// Path extends Fragment with '?', '`', '{', '}'.
var Path = Fragment.withEscape(asciiset.FromBytes('?', '`', '{', '}'))

// UserInfo extends Path with the authority delimiters that would otherwise
// be ambiguous inside a username or password: '/', ':', ';', '=', '@', '[',
// '\\', ']', '^', '|'.
var UserInfo = Path.withEscape(asciiset.FromBytes('/', ':', ';', '=', '@', '[', '\\', ']', '^', '|'))

// Component extends UserInfo with '$', '%', '&', '+', ',' — the set used for
// the generic "encode this standalone component" API surface.
var Component = UserInfo.withEscape(asciiset.FromBytes('$', '%', '&', '+', ','))

// unreservedFormSet is the bytes FormEncoded leaves untouched: alphanumerics
// plus '*', '-', '.', '_'.
var unreservedFormSet = asciiset.FromRange('a', 'z').
	Union(asciiset.FromRange('A', 'Z')).
	Union(asciiset.FromRange('0', '9')).
	Union(asciiset.FromBytes('*', '-', '.', '_'))

// FormEncoded escapes everything outside [A-Za-z0-9*-._] and writes space
// as '+' rather than escaping it. It is the only catalogue entry that
// performs substitution.
var FormEncoded = EncodeSet{escape: unreservedFormSet.Complement()}.withSubstitution(' ', '+')

// Passthrough escapes nothing and substitutes nothing. It is used by
// Decode callers for whom percent-decoding is the only concern and no
// substitution inversion is relevant.
var Passthrough = EncodeSet{}
