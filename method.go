/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

// Method is an HTTP request method: an opaque uppercase token. The
// constants below are the methods the core recognizes for the
// safe/idempotent/body-allowed classification; any other token is still
// a valid Method, just classified as unsafe, non-idempotent.
type Method string

const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodConnect Method = "CONNECT"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
)

var safeMethods = map[Method]bool{
	MethodGet:     true,
	MethodHead:    true,
	MethodOptions: true,
	MethodTrace:   true,
}

var idempotentMethods = map[Method]bool{
	MethodGet:     true,
	MethodHead:    true,
	MethodPut:     true,
	MethodDelete:  true,
	MethodOptions: true,
	MethodTrace:   true,
}

// Safe reports whether m has no side effects per RFC 7231 §4.2.1.
func (m Method) Safe() bool { return safeMethods[m] }

// Idempotent reports whether repeating m has the same effect as doing
// it once, per RFC 7231 §4.2.2.
func (m Method) Idempotent() bool { return idempotentMethods[m] }

// AllowsBody reports whether a request with this method is permitted to
// carry an entity body. Only CONNECT and TRACE are excluded outright;
// safe methods may still carry a body on the wire (the server state
// machine rejects that case separately, per spec 4.7).
func (m Method) AllowsBody() bool {
	return m != MethodConnect && m != MethodTrace
}

func (m Method) String() string { return string(m) }
