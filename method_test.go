/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http_test

import (
	"testing"

	. "github.com/badu/wirehttp"
)

func TestMethodSafe(t *testing.T) {
	safe := []Method{MethodGet, MethodHead, MethodOptions, MethodTrace}
	for _, m := range safe {
		if !m.Safe() {
			t.Errorf("%s.Safe() = false, want true", m)
		}
	}
	unsafe := []Method{MethodPost, MethodPut, MethodDelete, MethodPatch, MethodConnect}
	for _, m := range unsafe {
		if m.Safe() {
			t.Errorf("%s.Safe() = true, want false", m)
		}
	}
}

func TestMethodIdempotent(t *testing.T) {
	idempotent := []Method{MethodGet, MethodHead, MethodPut, MethodDelete, MethodOptions, MethodTrace}
	for _, m := range idempotent {
		if !m.Idempotent() {
			t.Errorf("%s.Idempotent() = false, want true", m)
		}
	}
	if MethodPost.Idempotent() {
		t.Error("POST.Idempotent() = true, want false")
	}
}
