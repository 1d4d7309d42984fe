/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

import "strings"

// acceptKind backs Accept-Charset, Accept-Encoding, Accept-Language,
// Accept-Ranges and TE: a comma-separated list of tokens each
// carrying an optional "q" quality parameter. Sorting is descending
// by quality, ties broken by specificity.
type acceptKind struct{}

func (acceptKind) Split(value string) []string { return genericKindInstance.Split(value) }

func (acceptKind) Parse(name, raw string) (Element, error) {
	return parseGeneric(name, raw)
}

func (acceptKind) Sanitize(Element) error { return nil }

// specificity scores a value on a single "/"-delimited axis: a literal
// scores higher than a wildcard, and "type/subtype" scores higher than
// "type/*", which scores higher than "*/*".
func specificity(value string) int {
	if !strings.Contains(value, "/") {
		if value == "*" {
			return 0
		}
		return 1
	}
	parts := strings.SplitN(value, "/", 2)
	score := 0
	if parts[0] != "*" {
		score += 2
	}
	if parts[1] != "*" {
		score++
	}
	return score
}

func (acceptKind) Less(a, b Element) bool {
	if a.Quality() != b.Quality() {
		return a.Quality() > b.Quality()
	}
	sa, sb := specificity(a.Value()), specificity(b.Value())
	if sa != sb {
		return sa > sb
	}
	return false
}

func (acceptKind) Join(existing, next string) string {
	return genericKindInstance.Join(existing, next)
}

// mimeAcceptKind backs the Accept header itself: like acceptKind but
// a lone "*" value is rewritten to "*/*" so specificity scoring always
// sees a type/subtype pair.
type mimeAcceptKind struct{ acceptKind }

func (mimeAcceptKind) Parse(name, raw string) (Element, error) {
	return parseGeneric(name, raw)
}

func (mimeAcceptKind) Sanitize(e Element) error {
	g := e.(*Generic)
	if g.value == "*" {
		g.value = "*/*"
	}
	return nil
}

func init() {
	k := acceptKind{}
	Register(AcceptCharset, k)
	Register(AcceptEncoding, k)
	Register(AcceptLanguage, k)
	Register(AcceptRanges, k)
	Register(TE, k)
	Register(Accept, mimeAcceptKind{})
}
