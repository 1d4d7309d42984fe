/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http_test

import (
	"testing"

	. "github.com/badu/wirehttp"
)

func TestServerS1SimpleGet(t *testing.T) {
	s := NewServerStateMachine("http", "example.com", 80)
	pairs, err := s.Parse([]byte("GET / HTTP/1.1\r\nHost: a\r\n\r\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	pair := pairs[0]
	if pair.Request.Method != MethodGet || pair.Request.URI.Path() != "/" {
		t.Fatalf("unexpected request: %+v", pair.Request)
	}
	if pair.Response.Protocol != HTTP11 {
		t.Fatalf("response protocol = %v, want HTTP/1.1", pair.Response.Protocol)
	}
	if !pair.Response.Headers.Has("Server") {
		t.Fatal("expected Server header to be set")
	}
}

func TestServerS2MissingHost(t *testing.T) {
	s := NewServerStateMachine("http", "example.com", 80)
	_, err := s.Parse([]byte("GET / HTTP/1.1\r\n\r\n"))
	status, ok := err.(*HTTPStatus)
	if !ok || status.Code != 400 {
		t.Fatalf("got %v, want 400", err)
	}
}

func TestServerS4NormalizeRedirects(t *testing.T) {
	s := NewServerStateMachine("http", "example.com", 80)
	_, err := s.Parse([]byte("GET /a/../b HTTP/1.1\r\nHost: h\r\n\r\n"))
	status, ok := err.(*HTTPStatus)
	if !ok || status.Code != 301 || status.Reason != "/b" {
		t.Fatalf("got %v, want 301 with path /b", err)
	}
}

func TestServerS5ProtocolRelativeTarget(t *testing.T) {
	s := NewServerStateMachine("http", "example.com", 80)
	_, err := s.Parse([]byte("GET // HTTP/1.1\r\nHost: h\r\n\r\n"))
	if err == nil {
		t.Fatal("expected error for protocol-relative target")
	}
	if status, ok := err.(*HTTPStatus); ok && status.Code != 400 {
		t.Fatalf("got status %d, want 400", status.Code)
	}
}

func TestServerS6LengthRequired(t *testing.T) {
	s := NewServerStateMachine("http", "example.com", 80)
	_, err := s.Parse([]byte("DELETE / HTTP/1.0\r\n\r\nHELLO"))
	status, ok := err.(*HTTPStatus)
	if !ok || status.Code != 411 {
		t.Fatalf("got %v, want 411", err)
	}
}

func TestServerAsteriskFormRequiresOptions(t *testing.T) {
	s := NewServerStateMachine("http", "example.com", 80)
	_, err := s.Parse([]byte("GET * HTTP/1.1\r\nHost: a\r\n\r\n"))
	status, ok := err.(*HTTPStatus)
	if !ok || status.Code != 400 {
		t.Fatalf("got %v, want 400", err)
	}
}

func TestServerAsteriskFormAllowedForOptions(t *testing.T) {
	s := NewServerStateMachine("http", "example.com", 80)
	pairs, err := s.Parse([]byte("OPTIONS * HTTP/1.1\r\nHost: a\r\n\r\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(pairs) != 1 || !pairs[0].Request.URI.Asterisk {
		t.Fatalf("expected a single asterisk-form pair, got %+v", pairs)
	}
}

func TestServerSafeMethodWithBodyRejected(t *testing.T) {
	s := NewServerStateMachine("http", "example.com", 80)
	data := "GET / HTTP/1.1\r\nHost: a\r\nContent-Length: 5\r\n\r\nhello"
	_, err := s.Parse([]byte(data))
	status, ok := err.(*HTTPStatus)
	if !ok || status.Code != 400 {
		t.Fatalf("got %v, want 400", err)
	}
}

func TestPrepareResponseClearsBodyForNoContent(t *testing.T) {
	resp := NewResponse(HTTP11, 204, "")
	resp.Body.Write([]byte("should be cleared"))
	PrepareResponse(nil, resp)
	if resp.Body.Len() != 0 {
		t.Fatalf("expected empty body for 204, got %d bytes", resp.Body.Len())
	}
}

func TestPrepareResponseSetsContentLength(t *testing.T) {
	resp := NewResponse(HTTP11, 200, "")
	resp.Body.Write([]byte("hello"))
	PrepareResponse(nil, resp)
	if resp.Headers.Get("Content-Length") != "5" {
		t.Fatalf("Content-Length = %q, want 5", resp.Headers.Get("Content-Length"))
	}
	if !resp.Headers.Has("Date") {
		t.Fatal("expected Date header to be set")
	}
}

func TestPrepareResponseHeadClearsBodyAfterLength(t *testing.T) {
	req := &Request{Method: MethodHead}
	resp := NewResponse(HTTP11, 200, "")
	resp.Body.Write([]byte("hello"))
	PrepareResponse(req, resp)
	if resp.Headers.Get("Content-Length") != "5" {
		t.Fatalf("Content-Length = %q, want 5", resp.Headers.Get("Content-Length"))
	}
	if resp.Body.Len() != 0 {
		t.Fatal("expected HEAD response body to be cleared")
	}
}

func TestPrepareResponseKeepAliveForHTTP10(t *testing.T) {
	resp := NewResponse(HTTP10, 200, "")
	PrepareResponse(nil, resp)
	if resp.Headers.Get("Connection") != "keep-alive" {
		t.Fatalf("Connection = %q, want keep-alive", resp.Headers.Get("Connection"))
	}
}
