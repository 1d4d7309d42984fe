/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http_test

import (
	"testing"

	. "github.com/badu/wirehttp"
)

func TestProtocolVersionOrdering(t *testing.T) {
	if !HTTP10.Less(HTTP11) {
		t.Error("HTTP/1.0 should be less than HTTP/1.1")
	}
	if HTTP11.Less(HTTP10) {
		t.Error("HTTP/1.1 should not be less than HTTP/1.0")
	}
	if !HTTP11.AtLeast(HTTP10) {
		t.Error("HTTP/1.1 should be at least HTTP/1.0")
	}
}

func TestProtocolVersionMin(t *testing.T) {
	if got := HTTP11.Min(HTTP10); got != HTTP10 {
		t.Errorf("Min(1.1, 1.0) = %v, want 1.0", got)
	}
}

func TestParseProtocolVersion(t *testing.T) {
	v, err := ParseProtocolVersion("HTTP/1.1")
	if err != nil {
		t.Fatalf("ParseProtocolVersion: %v", err)
	}
	if v != HTTP11 {
		t.Fatalf("got %v, want HTTP/1.1", v)
	}
	if _, err := ParseProtocolVersion("bogus"); err == nil {
		t.Fatal("expected error for malformed version")
	}
}
