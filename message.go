/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"github.com/badu/wirehttp/hdr"
)

// Message is the shared shape of Request and Response: a protocol
// version, owned headers, and an owned body. The parser holds only a
// weak reference while parsing -- ownership transfers to the caller
// once a message is yielded.
type Message struct {
	Protocol ProtocolVersion
	Headers  *hdr.Headers
	Body     *Body
}

func newMessage() Message {
	return Message{Headers: hdr.New(), Body: NewBody()}
}

// Request is a fully parsed HTTP request: a Message plus method and
// request-target.
type Request struct {
	Message
	Method Method
	URI    *URI
	// RequestURI is the unmodified request-target exactly as it
	// appeared on the wire, before Normalize.
	RequestURI string
	// danglingBody records whether bytes remained in the parser's
	// buffer at the point framing was determined to be absent (no
	// Content-Length, no chunked Transfer-Encoding) -- the condition
	// spec.md §4.7 maps to 411, which is distinct from Body.Len()
	// since an unframed message never has its trailing bytes attributed
	// to Body at all.
	danglingBody bool
}

// Response is a composed or parsed HTTP response: a Message plus
// status.
type Response struct {
	Message
	StatusCode int
	Reason     string
}

// NewResponse builds a Response for code with its table reason phrase,
// unless reason is supplied explicitly.
func NewResponse(protocol ProtocolVersion, code int, reason string) *Response {
	if reason == "" {
		reason = ReasonPhrase(code)
	}
	r := &Response{StatusCode: code, Reason: reason}
	r.Protocol = protocol
	r.Headers = hdr.New()
	r.Body = NewBody()
	return r
}
