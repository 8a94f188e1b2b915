/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package verror

// ValidationError is the compact value a parser emits for every WHATWG
// validation condition it observes. Wrapped is non-nil only when Code is
// HostParserError, in which case it holds the nested IPv4/IPv6 parser error
// that was lifted into this code.
type ValidationError struct {
	Code    Code
	Wrapped error
}

// New constructs a ValidationError carrying no wrapped error.
func New(code Code) ValidationError {
	return ValidationError{Code: code}
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Wrapped != nil {
		return e.Code.String() + ": " + e.Wrapped.Error()
	}
	return e.Code.String()
}

// Equal reports whether e and other carry the same code and the same
// wrapped error: both nil, or both non-nil with equal messages.
func (e ValidationError) Equal(other ValidationError) bool {
	if e.Code != other.Code {
		return false
	}
	if (e.Wrapped == nil) != (other.Wrapped == nil) {
		return false
	}
	if e.Wrapped == nil {
		return true
	}
	return e.Wrapped.Error() == other.Wrapped.Error()
}

// Sink is the parser-to-core callback contract: a top-level overload for
// directly-observed validation errors, plus two lifted overloads for nested
// IPv4/IPv6 host-parser errors.
type Sink interface {
	ValidationError(e ValidationError)
	IPv4ParserError(err error)
	IPv6ParserError(err error)
}
