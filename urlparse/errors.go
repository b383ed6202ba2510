/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package urlparse

import (
	"errors"
	"fmt"
)

// Kinds of parse failures. Every error returned by Parse is a *ParseError
// wrapping exactly one of them, so callers can test with errors.Is.
var (
	// ErrEmptyInput is returned for an empty URL string.
	ErrEmptyInput = errors.New("empty URL")
	// ErrMalformedScheme is only returned when parsing with StrictScheme,
	// for a scheme holding characters RFC 1738 does not allow.
	ErrMalformedScheme = errors.New("malformed scheme")
	// ErrMalformedUserinfo is returned when an "@" is present but the
	// user name in front of it is empty. An empty scheme ("://host") or a
	// default scheme holding ':' or '/' is reported the same way.
	ErrMalformedUserinfo = errors.New("malformed userinfo")
	// ErrMissingHost is returned when the authority holds no host and the
	// scheme does not allow one to be left out.
	ErrMissingHost = errors.New("missing host")
	// ErrMalformedPort is returned for an empty, non-numeric or out of
	// range port.
	ErrMalformedPort = errors.New("malformed port")
	// ErrInvalidHost is only returned when parsing with ValidateHost.
	ErrInvalidHost = errors.New("invalid host")
)

// newParseError creates a new ParseError, wrapping the original error.
// It returns nil if the input error is nil.
func newParseError(err error) *ParseError {
	if err == nil {
		return nil
	}
	return &ParseError{Message: err.Error(), Err: errors.Unwrap(err)}
}

// kindError is the error produced by the parser itself. It carries the
// failure kind along with the offending character or text.
type kindError struct {
	kind    error
	message string
	char    rune
	details string
}

// Error formats the error message with any available character or details.
func (e *kindError) Error() string {
	msg := e.message
	if e.char != 0 {
		msg = fmt.Sprintf("%s '%c'", msg, e.char)
	} else if e.details != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.details)
	}
	return msg
}

// Unwrap returns the kind of the failure.
func (e *kindError) Unwrap() error {
	return e.kind
}
