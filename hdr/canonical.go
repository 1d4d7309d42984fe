/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

import "golang.org/x/net/http/httpguts"

const toLower = 'a' - 'A'

// disallowedNameByte reports whether b may never appear in an HTTP
// field-name: control bytes, DEL, bytes 0x80-0xFF, and the separator
// characters RFC 7230's token rule excludes, so that field names such
// as "Foo Bar" or "Foo/Bar" are rejected rather than silently accepted.
var disallowedNameByte = [256]bool{}

func init() {
	for c := 0; c < 0x20; c++ {
		disallowedNameByte[c] = true
	}
	disallowedNameByte[0x7f] = true
	for c := 0x80; c <= 0xff; c++ {
		disallowedNameByte[c] = true
	}
	for _, c := range []byte("()<>@,;:\\\"/[]?={} \t") {
		disallowedNameByte[c] = true
	}
}

// ValidFieldName reports whether name contains only bytes permitted in
// an HTTP header field-name.
func ValidFieldName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if disallowedNameByte[name[i]] {
			return false
		}
	}
	return true
}

// ValidFieldValue reports whether v is free of control bytes other
// than horizontal tab, mirroring httpguts.ValidHeaderFieldValue.
func ValidFieldValue(v string) bool {
	return httpguts.ValidHeaderFieldValue(v)
}

// CanonicalName returns the canonical form of a header field name:
// the first letter and any letter following a hyphen are upper-cased,
// the rest lower-cased. Names that are not valid field-names (contain
// a disallowed byte) are returned unchanged.
func CanonicalName(s string) string {
	if v, ok := commonHeader[s]; ok {
		return v
	}
	if !ValidFieldName(s) {
		return s
	}
	b := []byte(s)
	upper := true
	for i, c := range b {
		switch {
		case upper && 'a' <= c && c <= 'z':
			c -= toLower
		case !upper && 'A' <= c && c <= 'Z':
			c += toLower
		}
		b[i] = c
		upper = c == '-'
	}
	out := string(b)
	if v, ok := commonHeader[out]; ok {
		return v
	}
	return out
}
