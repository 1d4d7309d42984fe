/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http_test

import (
	"testing"

	. "github.com/badu/wirehttp"
)

func TestParserSimpleRequest(t *testing.T) {
	p := NewMessageParser()
	reqs, err := p.Parse([]byte("GET / HTTP/1.1\r\nHost: a\r\n\r\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(reqs) != 1 {
		t.Fatalf("got %d requests, want 1", len(reqs))
	}
	req := reqs[0]
	if req.Method != MethodGet || req.URI.Path() != "/" || req.Protocol != HTTP11 {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestParserChunkedBody(t *testing.T) {
	p := NewMessageParser()
	data := "POST / HTTP/1.1\r\nHost: a\r\nTransfer-Encoding: chunked\r\n\r\n" +
		"4\r\nWiki\r\n5\r\npedia\r\n0\r\n\r\n"
	reqs, err := p.Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(reqs) != 1 {
		t.Fatalf("got %d requests, want 1", len(reqs))
	}
	req := reqs[0]
	if string(req.Body.Bytes()) != "Wikipedia" {
		t.Fatalf("Body = %q, want Wikipedia", req.Body.Bytes())
	}
	if req.Headers.Get("Content-Length") != "9" {
		t.Fatalf("Content-Length = %q, want 9", req.Headers.Get("Content-Length"))
	}
	if req.Headers.Has("Transfer-Encoding") {
		t.Fatal("Transfer-Encoding should be removed after dechunking")
	}
}

func TestParserChunkedAndContentLengthBodyEquivalence(t *testing.T) {
	chunked := "POST / HTTP/1.1\r\nHost: a\r\nTransfer-Encoding: chunked\r\n\r\n" +
		"4\r\nWiki\r\n5\r\npedia\r\n0\r\n\r\n"
	lengthFramed := "POST / HTTP/1.1\r\nHost: a\r\nContent-Length: 9\r\n\r\nWikipedia"

	p1 := NewMessageParser()
	reqs1, err := p1.Parse([]byte(chunked))
	if err != nil {
		t.Fatalf("Parse chunked: %v", err)
	}
	p2 := NewMessageParser()
	reqs2, err := p2.Parse([]byte(lengthFramed))
	if err != nil {
		t.Fatalf("Parse length-framed: %v", err)
	}
	if string(reqs1[0].Body.Bytes()) != string(reqs2[0].Body.Bytes()) {
		t.Fatalf("bodies differ: %q vs %q", reqs1[0].Body.Bytes(), reqs2[0].Body.Bytes())
	}
}

func TestParserIncrementalFeed(t *testing.T) {
	p := NewMessageParser()
	first := []byte("GET / HTTP/1.1\r\nHost: ")
	second := []byte("a\r\n\r\n")

	reqs, err := p.Parse(first)
	if err != nil {
		t.Fatalf("Parse first half: %v", err)
	}
	if len(reqs) != 0 {
		t.Fatalf("expected no requests yet, got %d", len(reqs))
	}

	reqs, err = p.Parse(second)
	if err != nil {
		t.Fatalf("Parse second half: %v", err)
	}
	if len(reqs) != 1 {
		t.Fatalf("got %d requests, want 1", len(reqs))
	}
}

func TestParserToleratesLoneLF(t *testing.T) {
	p := NewMessageParser()
	reqs, err := p.Parse([]byte("GET / HTTP/1.1\nHost: a\n\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(reqs) != 1 {
		t.Fatalf("got %d requests, want 1", len(reqs))
	}
}

func TestParserEmptyContentLengthMeansZero(t *testing.T) {
	p := NewMessageParser()
	data := "POST / HTTP/1.1\r\nHost: a\r\nContent-Length: \r\n\r\n"
	reqs, err := p.Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(reqs) != 1 {
		t.Fatalf("got %d requests, want 1", len(reqs))
	}
	if reqs[0].Body.Len() != 0 {
		t.Fatalf("Body.Len() = %d, want 0", reqs[0].Body.Len())
	}
}

func TestParserUnknownTransferEncodingNotImplemented(t *testing.T) {
	p := NewMessageParser()
	data := "POST / HTTP/1.1\r\nHost: a\r\nTransfer-Encoding: gzip\r\n\r\n"
	_, err := p.Parse([]byte(data))
	status, ok := err.(*HTTPStatus)
	if !ok || status.Code != 501 {
		t.Fatalf("got %v, want 501 HTTPStatus", err)
	}
}
