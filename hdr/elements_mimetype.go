/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

import (
	"fmt"
	"regexp"
	"strings"
)

var validBoundary = regexp.MustCompile(`^[\x20-\x7E]{0,200}[\x21-\x7E]$`)

// codecByMime lets a Content-Type value such as "application/gzip"
// resolve to the same codec identity that Content-Encoding: gzip
// would, independent of the CODECS tables used for
// transfer/content-coding tokens.
var codecByMime = map[string]string{
	"application/gzip": "gzip",
	"application/zlib": "deflate",
}

// MimeType is the Element produced for Content-Type: a type/subtype
// pair plus parameters, notably charset and boundary. It also carries
// codec resolution, but unlike CodecElement an unresolved codec is not
// an error -- MimeType.Codec is simply left empty.
type MimeType struct {
	*Generic
	Type    string
	Subtype string
	Codec   string // resolved codec name, "" if none
}

func (m *MimeType) Charset() string {
	v, _ := m.Param("charset")
	return v
}

func (m *MimeType) Boundary() string {
	v, _ := m.Param("boundary")
	return v
}

type mimeTypeKind struct{}

func (mimeTypeKind) Split(value string) []string { return genericKindInstance.Split(value) }

func (mimeTypeKind) Parse(name, raw string) (Element, error) {
	g, err := parseGeneric(name, raw)
	if err != nil {
		return nil, err
	}
	typ, subtype, _ := strings.Cut(g.value, "/")
	return &MimeType{Generic: g, Type: typ, Subtype: subtype}, nil
}

func (mimeTypeKind) Sanitize(e Element) error {
	m := e.(*MimeType)
	if boundary, ok := m.Param("boundary"); ok {
		boundary = strings.Trim(boundary, `"`)
		if !validBoundary.MatchString(boundary) {
			return &InvalidHeaderError{Msg: fmt.Sprintf("invalid boundary in Content-Type: %q", boundary)}
		}
		m.setParam("boundary", boundary, true)
	}
	m.Codec = codecByMime[strings.ToLower(m.value)]
	return nil
}

func (mimeTypeKind) Less(a, b Element) bool { return false }

func (mimeTypeKind) Join(existing, next string) string {
	return genericKindInstance.Join(existing, next)
}

func init() {
	Register(ContentType, mimeTypeKind{})
}
