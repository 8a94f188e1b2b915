/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package verror defines the validation-error vocabulary a URL parser emits
// into the storage core, and the three canonical sink implementations the
// parser chooses among: Ignore, LastOnly, and CollectAll.
package verror

// Code identifies the kind of validation error observed while parsing or
// normalizing a URL, mirroring the WHATWG URL Standard's named validation
// errors. Codes are data, not control flow: emitting one does not by itself
// abort parsing.
type Code int

const (
	UnexpectedC0OrSpace Code = iota
	UnexpectedASCIITabOrNewline
	InvalidSchemeStart
	FileMissingSolidus
	InvalidScheme
	MissingSchemeNonRelativeURL
	RelativeURLMissingSlash
	UnexpectedReverseSolidus
	MissingSolidusBeforeAuthority
	UnexpectedAtSign
	CredentialsWithoutHost
	PortWithoutHost
	EmptyHostSpecialScheme
	InvalidHost
	PortOutOfRange
	PortInvalid
	UnexpectedWindowsDriveLetter
	UnexpectedWindowsDriveLetterAsHost
	UnexpectedHostFileScheme
	EmptyPathSegmentFileScheme
	InvalidURLCodePoint
	UnescapedPercentSign
	UnclosedIPv6Address
	IDNAError
	IDNAErrorEmptyDomain
	ForbiddenHostCodePoint

	// BaseURLRequired and InvalidUTF8 are private codes: they cover parser
	// preconditions rather than WHATWG-numbered validation errors, but are
	// routed through the same Sink contract so callers need only one error
	// path.
	BaseURLRequired
	InvalidUTF8

	// HostParserError wraps an error surfaced by a nested IPv4 or IPv6
	// address parser. Sink.IPv4ParserError and Sink.IPv6ParserError both
	// lift into this code; see ValidationError.Wrapped.
	HostParserError
)

var codeNames = [...]string{
	"unexpected C0 control or space",
	"unexpected ASCII tab or newline",
	"invalid scheme start",
	"file scheme missing solidus",
	"invalid scheme",
	"missing scheme, unusable base URL",
	"relative URL missing leading slash",
	"unexpected reverse solidus",
	"missing solidus before authority",
	"unexpected '@'",
	"credentials without host",
	"port without host",
	"empty host on special scheme",
	"invalid host",
	"port out of range",
	"invalid port",
	"unexpected Windows drive letter",
	"unexpected Windows drive letter as host",
	"unexpected host on file scheme",
	"empty path segment on file scheme",
	"invalid URL code point",
	"unescaped '%'",
	"unclosed IPv6 address",
	"domain to ASCII failed",
	"domain to ASCII failed on empty domain",
	"forbidden host code point",
	"base URL required",
	"invalid UTF-8",
	"host parser error",
}

// String returns the human-readable name of c.
func (c Code) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return "unknown validation error"
	}
	return codeNames[c]
}
