/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr_test

import (
	"testing"

	. "github.com/badu/wirehttp/hdr"
)

func TestAcceptSortingByQualityAndSpecificity(t *testing.T) {
	h := New()
	h.Set(Accept, "text/*;q=0.3, text/html;q=0.7, */*;q=0.1")
	elems, err := h.Elements(Accept)
	if err != nil {
		t.Fatalf("Elements: %v", err)
	}
	want := []string{"text/html", "text/*", "*/*"}
	if len(elems) != len(want) {
		t.Fatalf("got %d elements, want %d", len(elems), len(want))
	}
	for i, w := range want {
		if elems[i].Value() != w {
			t.Errorf("elems[%d] = %q, want %q", i, elems[i].Value(), w)
		}
	}
}

func TestAcceptLoneStarRewrittenToSlashStar(t *testing.T) {
	h := New()
	h.Set(Accept, "*")
	elems, err := h.Elements(Accept)
	if err != nil {
		t.Fatalf("Elements: %v", err)
	}
	if len(elems) != 1 || elems[0].Value() != "*/*" {
		t.Fatalf("got %v, want [*/*]", elems)
	}
}

func TestAcceptCharsetLoneStarNotRewritten(t *testing.T) {
	h := New()
	h.Set(AcceptCharset, "*")
	elems, err := h.Elements(AcceptCharset)
	if err != nil {
		t.Fatalf("Elements: %v", err)
	}
	if len(elems) != 1 || elems[0].Value() != "*" {
		t.Fatalf("got %v, want [*]", elems)
	}
}

func TestContentTypeBoundaryValidation(t *testing.T) {
	h := New()
	h.Set(ContentType, `multipart/form-data; boundary="----abc123"`)
	elem, err := h.Element(ContentType)
	if err != nil {
		t.Fatalf("Element: %v", err)
	}
	mt := elem.(*MimeType)
	if mt.Boundary() != "----abc123" {
		t.Fatalf("Boundary() = %q", mt.Boundary())
	}
}

func TestContentTypeInvalidBoundaryRejected(t *testing.T) {
	h := New()
	h.Set(ContentType, `multipart/form-data; boundary=""`)
	if _, err := h.Element(ContentType); err == nil {
		t.Fatal("expected error for empty boundary")
	}
}

func TestCodecKnownGzip(t *testing.T) {
	h := New()
	h.Set(ContentEncoding, "gzip")
	elem, err := h.Element(ContentEncoding)
	if err != nil {
		t.Fatalf("Element: %v", err)
	}
	ce := elem.(*CodecElement)
	if ce.MimeType != "application/gzip" || ce.Unimplemented {
		t.Fatalf("unexpected codec: %+v", ce)
	}
}

func TestCodecUnimplementedKnownToken(t *testing.T) {
	h := New()
	h.Set(ContentEncoding, "compress")
	elem, err := h.Element(ContentEncoding)
	if err != nil {
		t.Fatalf("Element: %v", err)
	}
	if !elem.(*CodecElement).Unimplemented {
		t.Fatal("expected compress to be marked unimplemented")
	}
}

func TestCodecUnknownTokenRejected(t *testing.T) {
	h := New()
	h.Set(ContentEncoding, "bogus")
	if _, err := h.Element(ContentEncoding); err == nil {
		t.Fatal("expected error for unknown content-coding")
	}
}

func TestTransferEncodingChunkedIsFramingOnly(t *testing.T) {
	h := New()
	h.Set(TransferEncoding, "chunked")
	elem, err := h.Element(TransferEncoding)
	if err != nil {
		t.Fatalf("Element: %v", err)
	}
	if !elem.(*CodecElement).FramingOnly {
		t.Fatal("expected chunked to be framing-only")
	}
}

func TestHostClassifiesIPv4(t *testing.T) {
	h := New()
	h.Set(Host, "192.168.0.1:8080")
	elem, err := h.Element(Host)
	if err != nil {
		t.Fatalf("Element: %v", err)
	}
	host := elem.(*Host)
	if !host.IsIPv4 || host.Port != 8080 {
		t.Fatalf("unexpected host: %+v", host)
	}
}

func TestHostClassifiesIPv6Bracketed(t *testing.T) {
	h := New()
	h.Set(Host, "[::1]:8080")
	elem, err := h.Element(Host)
	if err != nil {
		t.Fatalf("Element: %v", err)
	}
	host := elem.(*Host)
	if !host.IsIPv6 || host.Hostname != "::1" || host.Port != 8080 {
		t.Fatalf("unexpected host: %+v", host)
	}
}

func TestHostClassifiesFQDN(t *testing.T) {
	h := New()
	h.Set(Host, "a")
	elem, err := h.Element(Host)
	if err != nil {
		t.Fatalf("Element: %v", err)
	}
	host := elem.(*Host)
	if !host.IsFQDN || host.Hostname != "a" {
		t.Fatalf("unexpected host: %+v", host)
	}
}
