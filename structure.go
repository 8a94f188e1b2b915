/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package weburl

// URLStructure is the normalized layout descriptor: the length of every
// component, the sigil discriminator, the scheme kind, and the
// cannot-be-a-base flag. Every other offset is derived from these fields;
// URLStructure itself stores no absolute positions.
type URLStructure struct {
	SchemeLen   int
	UsernameLen int
	PasswordLen int
	HostnameLen int
	PortLen     int
	PathLen     int
	QueryLen    int
	FragmentLen int

	Sigil            Sigil
	SchemeKind       SchemeKind
	CannotBeABaseURL bool
}

// Offsets is the fully-derived set of start/end positions for every
// component, computed from a URLStructure by DerivedOffsets.
type Offsets struct {
	SchemeStart, SchemeEnd     int
	AfterSigil                 int
	UsernameStart, UsernameEnd int
	PasswordStart, PasswordEnd int
	HostnameStart, HostnameEnd int
	PortStart, PortEnd         int
	PathStart, PathEnd         int
	QueryStart, QueryEnd       int
	FragmentStart, FragmentEnd int
}

// HasCredentialSeparator reports whether a '@' separates the
// username/password from the hostname.
func (s URLStructure) HasCredentialSeparator() bool {
	return s.UsernameLen > 0 || s.PasswordLen > 0
}

// HasHost reports whether the authority sigil is present, i.e. whether the
// hostname component is present at all (possibly as an empty string).
func (s URLStructure) HasHost() bool {
	return s.Sigil == SigilAuthority
}

// CannotHaveCredentialsOrPort reports whether this structure may never carry
// credentials or an explicit port: file-scheme, cannot-be-a-base, and
// hostless URLs all fall into this category.
func (s URLStructure) CannotHaveCredentialsOrPort() bool {
	return s.SchemeKind == SchemeFile || s.CannotBeABaseURL || s.HostnameLen == 0
}

// DerivedOffsets computes every component's absolute start/end position
// from s.
func (s URLStructure) DerivedOffsets() Offsets {
	var o Offsets

	o.SchemeStart = 0
	o.SchemeEnd = s.SchemeLen
	o.AfterSigil = o.SchemeEnd + s.Sigil.Len()

	o.UsernameStart = o.AfterSigil
	o.UsernameEnd = o.UsernameStart + s.UsernameLen

	credSep := 0
	if s.HasCredentialSeparator() {
		credSep = 1
	}
	o.PasswordStart = o.UsernameEnd
	o.PasswordEnd = o.PasswordStart + s.PasswordLen

	o.HostnameStart = o.PasswordEnd + credSep
	o.HostnameEnd = o.HostnameStart + s.HostnameLen

	o.PortStart = o.HostnameEnd
	o.PortEnd = o.PortStart + s.PortLen

	if s.Sigil == SigilAuthority {
		o.PathStart = o.PortEnd
	} else {
		o.PathStart = o.AfterSigil
	}
	o.PathEnd = o.PathStart + s.PathLen

	o.QueryStart = o.PathEnd
	o.QueryEnd = o.QueryStart + s.QueryLen

	o.FragmentStart = o.QueryEnd
	o.FragmentEnd = o.FragmentStart + s.FragmentLen

	return o
}

// Len returns the total serialized length of s: the end offset of the last
// component, fragment.
func (s URLStructure) Len() int {
	return s.DerivedOffsets().FragmentEnd
}

// Range returns the [start, end) byte range of the given component within
// the serialized string, and whether the component is present. Hostname is
// present exactly when the authority sigil is set, even with zero length;
// every other component, scheme included, is present when its length field
// is nonzero.
func (s URLStructure) Range(c Component) (start, end int, present bool) {
	o := s.DerivedOffsets()
	switch c {
	case ComponentScheme:
		return o.SchemeStart, o.SchemeEnd, s.SchemeLen > 0
	case ComponentUsername:
		return o.UsernameStart, o.UsernameEnd, s.UsernameLen > 0
	case ComponentPassword:
		return o.PasswordStart, o.PasswordEnd, s.PasswordLen > 0
	case ComponentHostname:
		return o.HostnameStart, o.HostnameEnd, s.HasHost()
	case ComponentPort:
		return o.PortStart, o.PortEnd, s.PortLen > 0
	case ComponentPath:
		return o.PathStart, o.PathEnd, s.PathLen > 0
	case ComponentQuery:
		return o.QueryStart, o.QueryEnd, s.QueryLen > 0
	case ComponentFragment:
		return o.FragmentStart, o.FragmentEnd, s.FragmentLen > 0
	default:
		panic("weburl: invalid component " + c.String())
	}
}

// WithLength returns a copy of s with component c's length field set to n.
// It is the generic counterpart to a per-setter length-field update;
// component-specific setters use it to produce the newStructure they pass to
// the replacement engine.
func (s URLStructure) WithLength(c Component, n int) URLStructure {
	switch c {
	case ComponentScheme:
		s.SchemeLen = n
	case ComponentUsername:
		s.UsernameLen = n
	case ComponentPassword:
		s.PasswordLen = n
	case ComponentHostname:
		s.HostnameLen = n
	case ComponentPort:
		s.PortLen = n
	case ComponentPath:
		s.PathLen = n
	case ComponentQuery:
		s.QueryLen = n
	case ComponentFragment:
		s.FragmentLen = n
	default:
		panic("weburl: invalid component " + c.String())
	}
	return s
}

// Validate panics if s violates one of URLStructure's layout invariants. It
// is used by tests and is available for callers' own debug assertions; the
// storage engine does not call it, since the rest of this package is written
// to do no hidden allocation or work on the happy path.
func (s URLStructure) Validate() {
	if s.SchemeLen < 2 {
		panic("weburl: scheme length must be >= 2")
	}
	if (s.UsernameLen > 0 || s.PasswordLen > 0 || s.PortLen > 0) && s.Sigil != SigilAuthority {
		panic("weburl: credentials or port require the authority sigil")
	}
	if s.PasswordLen != 0 && s.PasswordLen < 2 {
		panic("weburl: password length must be 0 or >= 2")
	}
	if s.PortLen != 0 && s.PortLen < 2 {
		panic("weburl: port length must be 0 or >= 2")
	}
	if s.Sigil == SigilPath && s.PathLen < 2 {
		panic("weburl: path sigil requires a path of length >= 2")
	}
	if s.CannotHaveCredentialsOrPort() && (s.UsernameLen > 0 || s.PasswordLen > 0 || s.PortLen > 0) {
		panic("weburl: this structure cannot carry credentials or a port")
	}
}
