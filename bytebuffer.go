/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"bytes"

	"github.com/valyala/bytebufferpool"
)

var bufPool bytebufferpool.Pool

// ByteBuffer is a growable byte accumulator with O(1) append, backed by
// a pooled buffer so repeated parser instances don't churn the
// allocator. It is not safe for concurrent use -- MessageParser owns
// exactly one, matching the single-threaded-per-connection model.
type ByteBuffer struct {
	buf *bytebufferpool.ByteBuffer
}

// NewByteBuffer returns an empty ByteBuffer drawn from the shared pool.
func NewByteBuffer() *ByteBuffer {
	return &ByteBuffer{buf: bufPool.Get()}
}

// Release returns the underlying storage to the pool. Callers must not
// use the ByteBuffer afterwards.
func (b *ByteBuffer) Release() {
	bufPool.Put(b.buf)
	b.buf = nil
}

// Write appends p, always succeeding.
func (b *ByteBuffer) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

// Bytes returns the buffer's current contents. The slice is only valid
// until the next mutating call.
func (b *ByteBuffer) Bytes() []byte { return b.buf.Bytes() }

// Len returns the number of bytes currently buffered.
func (b *ByteBuffer) Len() int { return b.buf.Len() }

// Advance discards the first n bytes, keeping the remainder.
func (b *ByteBuffer) Advance(n int) {
	rest := append([]byte(nil), b.buf.Bytes()[n:]...)
	b.buf.Reset()
	b.buf.Write(rest)
}

// notFound is the index bytes.Index reports when delim has not yet
// appeared in the buffer; SplitOnce turns it into found == false,
// distinguishing "not present" from an empty head.
const notFound = -1

// SplitOnce searches for delim and, if found, returns the bytes before
// it (head) and after it (tail), and true. If delim is absent it
// returns (nil, nil, false) and leaves the buffer untouched -- callers
// must wait for more input.
func (b *ByteBuffer) SplitOnce(delim []byte) (head, tail []byte, found bool) {
	data := b.buf.Bytes()
	idx := bytes.Index(data, delim)
	if idx == notFound {
		return nil, nil, false
	}
	head = append([]byte(nil), data[:idx]...)
	tail = append([]byte(nil), data[idx+len(delim):]...)
	return head, tail, true
}

// Reset empties the buffer without releasing it to the pool.
func (b *ByteBuffer) Reset() { b.buf.Reset() }
