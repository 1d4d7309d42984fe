/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import "fmt"

type (
	// Invalid is the catch-all parent of the protocol's error taxonomy.
	// Concrete errors (InvalidLineError, InvalidURIError, ...) all embed
	// it for the shared Msg field. Embedding does not make errors.As
	// match them against *Invalid; each concrete type is matched on its
	// own.
	Invalid struct {
		Msg string
	}

	// InvalidLineError reports a malformed request or status line.
	InvalidLineError struct{ Invalid }

	// InvalidURIError reports a malformed or disallowed request-target.
	InvalidURIError struct{ Invalid }

	// InvalidHeaderError wraps a header-subsystem failure (hdr.InvalidHeaderError)
	// with the name of the offending field.
	InvalidHeaderError struct {
		Invalid
		Field string
		Err   error
	}

	// InvalidBodyError reports a chunk-framing violation.
	InvalidBodyError struct{ Invalid }

	// HTTPStatus is the control-flow signal a phase of the parser or
	// server state machine returns to abort processing with a final
	// status. The transport layer composes the response from it.
	HTTPStatus struct {
		Code   int
		Reason string
	}
)

func (e *Invalid) Error() string          { return e.Msg }
func (e *InvalidLineError) Error() string { return "invalid line: " + e.Msg }
func (e *InvalidURIError) Error() string  { return "invalid URI: " + e.Msg }
func (e *InvalidBodyError) Error() string { return "invalid body: " + e.Msg }

func (e *InvalidHeaderError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid header %q: %s", e.Field, e.Msg)
	}
	return "invalid header: " + e.Msg
}

func (e *InvalidHeaderError) Unwrap() error { return e.Err }

func (e *HTTPStatus) Error() string {
	return fmt.Sprintf("%d %s", e.Code, e.Reason)
}

func newInvalidLine(format string, args ...interface{}) *InvalidLineError {
	return &InvalidLineError{Invalid{Msg: fmt.Sprintf(format, args...)}}
}

func newInvalidURI(format string, args ...interface{}) *InvalidURIError {
	return &InvalidURIError{Invalid{Msg: fmt.Sprintf(format, args...)}}
}

func newInvalidBody(format string, args ...interface{}) *InvalidBodyError {
	return &InvalidBodyError{Invalid{Msg: fmt.Sprintf(format, args...)}}
}

func newInvalidHeader(field string, err error) *InvalidHeaderError {
	return &InvalidHeaderError{Invalid{Msg: err.Error()}, field, err}
}
