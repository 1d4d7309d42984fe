/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http_test

import (
	"testing"

	. "github.com/badu/wirehttp"
)

func TestParseRequestTargetAsterisk(t *testing.T) {
	u, err := ParseRequestTarget("*")
	if err != nil {
		t.Fatalf("ParseRequestTarget: %v", err)
	}
	if !u.Asterisk {
		t.Fatal("expected Asterisk form")
	}
}

func TestParseRequestTargetRejectsDoubleSlash(t *testing.T) {
	if _, err := ParseRequestTarget("//evil.example.com/path"); err == nil {
		t.Fatal("expected error for protocol-relative target")
	}
}

func TestParseRequestTargetAbsolutePath(t *testing.T) {
	u, err := ParseRequestTarget("/a/b")
	if err != nil {
		t.Fatalf("ParseRequestTarget: %v", err)
	}
	if u.Path() != "/a/b" {
		t.Fatalf("Path() = %q, want /a/b", u.Path())
	}
}

func TestNormalizeCollapsesDotSegments(t *testing.T) {
	u, err := ParseRequestTarget("/a/../b")
	if err != nil {
		t.Fatalf("ParseRequestTarget: %v", err)
	}
	changed := u.Normalize()
	if !changed {
		t.Fatal("expected Normalize to report a change")
	}
	if u.Path() != "/b" {
		t.Fatalf("Path() = %q, want /b", u.Path())
	}
}

func TestNormalizeNoChangeWhenAlreadyCanonical(t *testing.T) {
	u, err := ParseRequestTarget("/b")
	if err != nil {
		t.Fatalf("ParseRequestTarget: %v", err)
	}
	if changed := u.Normalize(); changed {
		t.Fatal("expected no change for already-canonical path")
	}
}
