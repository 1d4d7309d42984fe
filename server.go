/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/badu/wirehttp/hdr"
)

// MaxURILength bounds the startline phase's buffer growth (spec.md §5,
// §4.7); exceeding it before the request line terminates is a 414.
const MaxURILength = 8 * 1024

// RequestResponsePair couples a fully validated request with the
// response the server layer has already pre-built for it (Server
// header set, negotiated protocol), per spec.md §4.7.
type RequestResponsePair struct {
	Request  *Request
	Response *Response
}

// ServerStateMachine layers the request-specific validation of
// spec.md §4.7 on top of MessageParser, and prepares a paired Response
// whenever a request starts.
type ServerStateMachine struct {
	parser   *MessageParser
	Scheme   string
	Host     string
	Port     int
	Protocol ProtocolVersion
}

// NewServerStateMachine constructs a state machine bound to one
// listener's scheme/host/port, used to fill in an empty request-target
// scheme (spec.md §4.7 "uri, scheme empty" row).
func NewServerStateMachine(scheme, host string, port int) *ServerStateMachine {
	return &ServerStateMachine{
		parser:   NewMessageParser(),
		Scheme:   scheme,
		Host:     host,
		Port:     port,
		Protocol: HTTP11,
	}
}

// Parse feeds chunk to the underlying MessageParser, then applies the
// request-specific checks and builds the paired response. A non-nil
// error is always an *HTTPStatus to compose and send back; the caller
// should not continue driving this connection once chunked or
// length-framed input fails after the startline has been consumed
// (close-on-error policy is the transport's decision, spec.md §7).
func (s *ServerStateMachine) Parse(chunk []byte) ([]RequestResponsePair, error) {
	if s.parser.phase == phaseStartLine && s.parser.buf.Len()+len(chunk) > MaxURILength {
		return nil, &HTTPStatus{Code: 414, Reason: ReasonPhrase(414)}
	}

	requests, err := s.parser.Parse(chunk)
	if err != nil {
		return nil, err
	}

	var pairs []RequestResponsePair
	for _, req := range requests {
		resp, err := s.validate(req)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, RequestResponsePair{Request: req, Response: resp})
	}
	return pairs, nil
}

// validate applies spec.md §4.7's per-phase checks and constructs the
// paired response.
func (s *ServerStateMachine) validate(req *Request) (*Response, error) {
	if req.Protocol.Major > s.Protocol.Major {
		return nil, &HTTPStatus{Code: 505, Reason: ReasonPhrase(505)}
	}

	if req.URI.Asterisk && req.Method != MethodOptions {
		return nil, &HTTPStatus{Code: 400, Reason: ReasonPhrase(400)}
	}

	if !req.URI.Asterisk {
		if changed := req.URI.Normalize(); changed {
			events.emit(EventRedirectNormalized, req.URI.Path())
			return nil, &HTTPStatus{Code: 301, Reason: req.URI.Path()}
		}
	}

	scheme := req.URI.Scheme()
	if scheme != "" && scheme != "http" && scheme != "https" {
		return nil, &HTTPStatus{Code: 400, Reason: ReasonPhrase(400)}
	}
	if scheme == "" && !req.URI.Asterisk {
		req.URI.SetScheme(s.Scheme, s.Host, strconv.Itoa(s.Port))
	}

	if req.Protocol.AtLeast(HTTP11) && !req.Headers.Has(hdr.Host) {
		return nil, &HTTPStatus{Code: 400, Reason: ReasonPhrase(400)}
	}

	// Two independent checks, not one nested under the other: a
	// request can have unframed trailing bytes (411) wholly apart from
	// whether a framed body was attributed to a safe method (400).
	if req.danglingBody {
		return nil, &HTTPStatus{Code: 411, Reason: ReasonPhrase(411)}
	}
	if req.Method.Safe() && req.Body.Len() > 0 {
		return nil, &HTTPStatus{Code: 400, Reason: ReasonPhrase(400)}
	}

	if isH2cUpgrade(req.Headers) {
		events.emit(EventH2cUpgrade, req.Headers.Get(hdr.Upgrade))
		resp := s.pairResponse(req)
		resp.StatusCode = 101
		resp.Reason = ReasonPhrase(101)
		return resp, nil
	}

	return s.pairResponse(req), nil
}

// isH2cUpgrade reports the Connection: Upgrade + HTTP2-Settings +
// Upgrade: h2c combination spec.md §4.7 maps to a 101 handoff. The
// successor h2c state is the outer transport's concern (spec.md §9
// documents the class-swap as a typed successor state, not something
// this core implements).
func isH2cUpgrade(h *hdr.Headers) bool {
	if !h.Has(hdr.Upgrade) || !h.Has(hdr.HTTP2Settings) {
		return false
	}
	conn := strings.ToLower(h.Get(hdr.Connection))
	if !strings.Contains(conn, "upgrade") {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(h.Get(hdr.Upgrade)), "h2c")
}

// pairResponse constructs the Response spec.md §4.7 says is created
// whenever a request starts: Server header set, protocol negotiated to
// the lesser of request and server protocol.
func (s *ServerStateMachine) pairResponse(req *Request) *Response {
	protocol := req.Protocol.Min(s.Protocol)
	resp := NewResponse(protocol, 200, "")
	resp.Headers.Set(hdr.ServerHeader, "wirehttp")
	return resp
}

// PrepareResponse finalizes resp's headers for req, mirroring
// ComposedResponse.prepare() (spec.md §4.7, §6):
//   - bodies cleared for < 200, 204, 205, 304
//   - Content-Length set unless chunked
//   - Date always written
//   - per-status header removal (e.g. 304)
//   - 405 gets a default Allow
//   - HEAD clears the body after Content-Length is set
//   - Connection: close for 413 or an explicit close; otherwise a
//     protocol<1.1 response gets Connection: keep-alive
func PrepareResponse(req *Request, resp *Response) {
	if clearsBody(resp.StatusCode) {
		resp.Body = NewBody()
	}

	chunked := resp.Headers.Has(hdr.TransferEncoding)
	if !chunked {
		resp.Headers.Set(hdr.ContentLength, strconv.Itoa(resp.Body.Len()))
	}

	resp.Headers.Set(hdr.Date, formatHTTPDate())

	for _, name := range HeadersToRemove(resp.StatusCode) {
		resp.Headers.Del(name)
	}

	if resp.StatusCode == 405 && !resp.Headers.Has(hdr.Allow) {
		resp.Headers.Set(hdr.Allow, "GET, HEAD")
	}

	if req != nil && req.Method == MethodHead {
		resp.Body = NewBody()
	}

	closeForced := resp.StatusCode == 413 ||
		strings.EqualFold(strings.TrimSpace(resp.Headers.Get(hdr.Connection)), "close")

	switch {
	case resp.Protocol.Less(HTTP11) && closeForced:
		resp.Headers.Set(hdr.Connection, "close")
	case resp.Protocol.Less(HTTP11):
		resp.Headers.Set(hdr.Connection, "keep-alive")
	case closeForced:
		resp.Headers.Set(hdr.Connection, "close")
	}
}

func formatHTTPDate() string {
	return time.Now().UTC().Format(hdr.TimeFormat)
}
