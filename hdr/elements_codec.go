/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

import (
	"fmt"
	"strings"
)

// codecSpec describes what a single Content-Encoding / Transfer-Encoding
// token resolves to.
type codecSpec struct {
	mimeType      string // concrete media type the coding maps to
	framingOnly   bool   // true for "chunked": it is not a content coding
	unimplemented bool   // known token, no codec available for it
}

// IANA-assigned content-coding tokens this core knows about. Anything
// not in this table is an unknown token and is rejected outright.
var contentCodecs = map[string]codecSpec{
	"gzip":         {mimeType: "application/gzip"},
	"deflate":      {mimeType: "application/zlib"},
	"compress":     {unimplemented: true},
	"identity":     {unimplemented: true},
	"exi":          {unimplemented: true},
	"pack200-gzip": {unimplemented: true},
}

// transfer-coding tokens; "chunked" is framing-only, not a content
// codec, and is handled specially by the message parser.
var transferCodecs = map[string]codecSpec{
	"chunked":  {framingOnly: true},
	"gzip":     {mimeType: "application/gzip"},
	"deflate":  {mimeType: "application/zlib"},
	"compress": {unimplemented: true},
	"identity": {unimplemented: true},
}

// CodecElement is the Element produced for Content-Encoding and
// Transfer-Encoding fields. It augments Generic with the resolved
// codec outcome: a concrete MIME type, or a flag stating the coding
// is recognized but has no available implementation.
type CodecElement struct {
	*Generic
	MimeType      string
	Unimplemented bool
	FramingOnly   bool
}

type codecKind struct {
	table map[string]codecSpec
}

func (k codecKind) Split(value string) []string { return genericKindInstance.Split(value) }

func (k codecKind) Parse(name, raw string) (Element, error) {
	g, err := parseGeneric(name, raw)
	if err != nil {
		return nil, err
	}
	return &CodecElement{Generic: g}, nil
}

func (k codecKind) Sanitize(e Element) error {
	ce := e.(*CodecElement)
	token := strings.ToLower(ce.value)
	spec, ok := k.table[token]
	if !ok {
		return &InvalidHeaderError{Msg: fmt.Sprintf("unknown %s coding: %q", ce.name, ce.value)}
	}
	ce.MimeType = spec.mimeType
	ce.FramingOnly = spec.framingOnly
	ce.Unimplemented = spec.unimplemented
	return nil
}

func (k codecKind) Less(a, b Element) bool { return false }

func (k codecKind) Join(existing, next string) string {
	return genericKindInstance.Join(existing, next)
}

func init() {
	Register(ContentEncoding, codecKind{table: contentCodecs})
	Register(TransferEncoding, codecKind{table: transferCodecs})
}
