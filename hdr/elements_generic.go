/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

import "strings"

// genericKind is the fallback Kind used for any field name that has
// no dedicated registration: split on commas, parse value+params,
// no sanitization, stable order, ", "-join on repeat.
type genericKind struct{}

var genericKindInstance Kind = genericKind{}

func (genericKind) Split(value string) []string {
	parts := splitOutsideQuotes(value, ',')
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (genericKind) Parse(name, raw string) (Element, error) {
	return parseGeneric(name, raw)
}

func (genericKind) Sanitize(Element) error { return nil }

func (genericKind) Less(a, b Element) bool { return false }

func (genericKind) Join(existing, next string) string {
	if existing == "" {
		return next
	}
	if next == "" {
		return existing
	}
	return existing + ", " + next
}
