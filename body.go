/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"bytes"
	"compress/flate"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/badu/wirehttp/hdr"
)

// Body is an append-only byte sink populated incrementally while a
// message is parsed, then rewound to offset 0 once parsing completes
// (spec.md §4.5). It stores wire bytes; decoding is deferred to
// DecodedReader, which consumers call explicitly.
type Body struct {
	buf             bytes.Buffer
	pos             int
	ContentEncoding *hdr.CodecElement
	MimeType        *hdr.MimeType
}

// NewBody returns an empty Body, as constructed fresh for each request.
func NewBody() *Body { return &Body{} }

// Write appends p to the body during parsing.
func (b *Body) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

// Len reports the number of bytes written.
func (b *Body) Len() int { return b.buf.Len() }

// Seek supports only rewinding to the start, the one operation the
// post-body hook (spec.md §4.6) and consumers need.
func (b *Body) Seek(offset int64, whence int) (int64, error) {
	if offset != 0 || whence != io.SeekStart {
		return 0, newInvalidBody("Body.Seek only supports rewind to 0")
	}
	b.pos = 0
	return 0, nil
}

// Read implements io.Reader over the buffered wire bytes, starting
// from the current seek position.
func (b *Body) Read(p []byte) (int, error) {
	data := b.buf.Bytes()
	if b.pos >= len(data) {
		return 0, io.EOF
	}
	n := copy(p, data[b.pos:])
	b.pos += n
	return n, nil
}

// Bytes returns the complete buffered wire content.
func (b *Body) Bytes() []byte { return b.buf.Bytes() }

// DecodedReader wraps a fresh reader over the body in a decoder for
// the resolved ContentEncoding, when one is known and implemented.
// Only gzip and deflate are supported, matching spec.md §1's "payload
// codecs beyond gzip/deflate identification" out-of-scope boundary --
// decoding those two is the one exception the spec's Body section
// grants consumers.
func (b *Body) DecodedReader() (io.Reader, error) {
	raw := bytes.NewReader(b.buf.Bytes())
	if b.ContentEncoding == nil || b.ContentEncoding.MimeType == "" {
		return raw, nil
	}
	switch b.ContentEncoding.MimeType {
	case "application/gzip":
		return gzip.NewReader(raw)
	case "application/zlib":
		return flate.NewReader(raw), nil
	default:
		return raw, nil
	}
}
