/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/badu/wirehttp/hdr"
)

// parserPhase is the explicit state enum replacing the source's
// generator-based parser (spec.md §9): each call to step() drives at
// most one phase transition and returns NeedMore, Progressed or
// Yielded, plus an error, instead of suspending a coroutine.
type parserPhase int

const (
	phaseStartLine parserPhase = iota
	phaseHeaders
	phaseBody
	phaseTrailers
	phaseComplete
)

// stepResult is step()'s return value.
type stepResult int

const (
	resultNeedMore stepResult = iota
	resultProgressed
	resultYielded
)

// MessageParser is the incremental, resumable server-side parser (C6).
// One instance belongs to exactly one connection and is never shared
// across goroutines; Parse never blocks and never suspends internally
// (spec.md §5).
type MessageParser struct {
	buf   *ByteBuffer
	phase parserPhase
	term  []byte // chosen line terminator for the in-flight message, nil until determined

	req *Request

	chunked       bool
	haveLength    bool
	messageLength int64
	// danglingBody is set once, when framing resolves to "no
	// Content-Length, no chunked Transfer-Encoding," to whether the
	// buffer still held unconsumed bytes at that moment (spec.md §4.7's
	// 411 condition -- tracked here because an unframed body is never
	// written into Body, so Body.Len() can't distinguish "empty
	// request" from "request with a body and no framing").
	danglingBody bool

	trailerNames map[string]bool
}

// NewMessageParser returns a parser ready to receive the first chunk of
// a new connection.
func NewMessageParser() *MessageParser {
	return &MessageParser{buf: NewByteBuffer(), phase: phaseStartLine}
}

func (p *MessageParser) resetForNextMessage() {
	p.phase = phaseStartLine
	p.term = nil
	p.req = nil
	p.chunked = false
	p.haveLength = false
	p.messageLength = 0
	p.danglingBody = false
	p.trailerNames = nil
}

// Parse appends chunk to the internal buffer then drives as many phase
// transitions as possible. At most one completed request is returned
// per call (pipelining overlap is a documented non-goal, spec.md §1);
// any remaining buffered bytes are retained for the next call.
func (p *MessageParser) Parse(chunk []byte) ([]*Request, error) {
	if len(chunk) > 0 {
		p.buf.Write(chunk)
	}
	for {
		result, err := p.step()
		if err != nil {
			p.resetForNextMessage()
			return nil, err
		}
		switch result {
		case resultNeedMore:
			return nil, nil
		case resultYielded:
			req := p.req
			p.resetForNextMessage()
			return []*Request{req}, nil
		}
	}
}

func (p *MessageParser) step() (stepResult, error) {
	switch p.phase {
	case phaseStartLine:
		return p.stepStartLine()
	case phaseHeaders:
		return p.stepHeaders()
	case phaseBody:
		return p.stepBody()
	case phaseTrailers:
		return p.stepTrailers()
	}
	return resultNeedMore, nil
}

func (p *MessageParser) ensureTerminator() bool {
	if p.term != nil {
		return true
	}
	data := p.buf.Bytes()
	idx := bytes.IndexByte(data, '\n')
	if idx == -1 {
		return false
	}
	if idx > 0 && data[idx-1] == '\r' {
		p.term = []byte("\r\n")
	} else {
		p.term = []byte("\n")
	}
	return true
}

func (p *MessageParser) stepStartLine() (stepResult, error) {
	if !p.ensureTerminator() {
		return resultNeedMore, nil
	}
	head, tail, found := p.buf.SplitOnce(p.term)
	if !found {
		return resultNeedMore, nil
	}
	p.buf.Reset()
	p.buf.Write(tail)

	req, err := parseRequestLine(string(head))
	if err != nil {
		return resultNeedMore, &HTTPStatus{Code: 400, Reason: "Bad Request"}
	}
	p.req = req
	p.phase = phaseHeaders
	return resultProgressed, nil
}

func parseRequestLine(line string) (*Request, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return nil, newInvalidLine("expected 3 fields, got %d: %q", len(fields), line)
	}
	proto, err := ParseProtocolVersion(fields[2])
	if err != nil {
		return nil, err
	}
	uri, err := ParseRequestTarget(fields[1])
	if err != nil {
		return nil, err
	}
	req := &Request{Method: Method(fields[0]), URI: uri, RequestURI: fields[1]}
	req.Protocol = proto
	req.Headers = hdr.New()
	req.Body = NewBody()
	return req, nil
}

func (p *MessageParser) stepHeaders() (stepResult, error) {
	data := p.buf.Bytes()
	if bytes.HasPrefix(data, p.term) {
		p.buf.Advance(len(p.term))
		p.phase = phaseBody
		return resultProgressed, nil
	}
	blank := append(append([]byte(nil), p.term...), p.term...)
	head, tail, found := p.buf.SplitOnce(blank)
	if !found {
		return resultNeedMore, nil
	}
	p.buf.Reset()
	p.buf.Write(tail)

	normalized := bytes.ReplaceAll(head, p.term, []byte("\r\n"))
	if err := p.req.Headers.Parse(normalized); err != nil {
		return resultNeedMore, &HTTPStatus{Code: 400, Reason: "Bad Request"}
	}
	p.phase = phaseBody
	return resultProgressed, nil
}

// determineFraming implements spec.md §4.6's body-framing determination.
// It is invoked once, on first entry into phaseBody.
func (p *MessageParser) determineFraming() (stepResult, error) {
	if p.req.Headers.Has(hdr.TransferEncoding) && p.req.Protocol.AtLeast(HTTP11) {
		value := p.req.Headers.Get(hdr.TransferEncoding)
		codings := strings.Split(value, ",")
		last := strings.ToLower(strings.TrimSpace(codings[len(codings)-1]))
		if last != "chunked" {
			events.emit(EventUnimplementedCodec, last)
			return resultNeedMore, &HTTPStatus{Code: 501, Reason: "Not Implemented"}
		}
		p.chunked = true
		return resultProgressed, nil
	}
	if p.req.Headers.Has(hdr.ContentLength) {
		raw := strings.TrimSpace(p.req.Headers.Get(hdr.ContentLength))
		if raw == "" {
			// absent or empty Content-Length both mean 0 (spec.md §4.6).
			p.messageLength = 0
			p.haveLength = true
			return resultProgressed, nil
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			return resultNeedMore, &HTTPStatus{Code: 400, Reason: "Bad Request"}
		}
		p.messageLength = n
		p.haveLength = true
		return resultProgressed, nil
	}
	// No Content-Length, no chunked Transfer-Encoding: the message is
	// framed as empty, but leftover buffered bytes here are data the
	// request has no way to declare (spec.md §4.7's 411 condition).
	p.messageLength = 0
	p.haveLength = true
	p.danglingBody = p.buf.Len() > 0
	return resultProgressed, nil
}

func (p *MessageParser) stepBody() (stepResult, error) {
	if !p.chunked && !p.haveLength {
		result, err := p.determineFraming()
		if err != nil {
			return result, err
		}
	}

	if p.chunked {
		return p.stepChunkedBody()
	}
	return p.stepLengthBody()
}

func (p *MessageParser) stepLengthBody() (stepResult, error) {
	data := p.buf.Bytes()
	want := p.messageLength
	if int64(len(data)) < want {
		if len(data) > 0 {
			p.req.Body.Write(data)
			want -= int64(len(data))
			p.messageLength = want
			p.buf.Reset()
		}
		return resultNeedMore, nil
	}
	if want > 0 {
		p.req.Body.Write(data[:want])
		p.buf.Advance(int(want))
		p.messageLength = 0
	}
	return p.finishBody()
}

func (p *MessageParser) stepChunkedBody() (stepResult, error) {
	for {
		head, tail, found := p.buf.SplitOnce(p.term)
		if !found {
			return resultNeedMore, nil
		}
		sizeLine := string(head)
		if idx := strings.IndexByte(sizeLine, ';'); idx >= 0 {
			sizeLine = sizeLine[:idx]
		}
		sizeLine = strings.TrimSpace(sizeLine)
		size, err := strconv.ParseInt(sizeLine, 16, 64)
		if err != nil || size < 0 {
			return resultNeedMore, &HTTPStatus{Code: 400, Reason: "Bad Request"}
		}

		need := size + int64(len(p.term))
		if int64(len(tail)) < need {
			// not enough buffered yet; don't consume the size line
			return resultNeedMore, nil
		}
		p.buf.Reset()
		p.buf.Write(tail)
		data := p.buf.Bytes()

		if size == 0 {
			// the trailer section and the closing terminator are left
			// in the buffer for stepTrailers
			p.phase = phaseTrailers
			return resultProgressed, nil
		}

		chunkData := data[:size]
		terminator := data[size : size+int64(len(p.term))]
		if !bytes.Equal(terminator, p.term) {
			return resultNeedMore, &HTTPStatus{Code: 400, Reason: "Bad Request"}
		}
		p.req.Body.Write(chunkData)
		p.buf.Advance(int(size) + len(p.term))
	}
}

func (p *MessageParser) stepTrailers() (stepResult, error) {
	data := p.buf.Bytes()
	if bytes.HasPrefix(data, p.term) {
		p.buf.Advance(len(p.term))
		return p.finishBody()
	}
	blank := append(append([]byte(nil), p.term...), p.term...)
	head, tail, found := p.buf.SplitOnce(blank)
	if !found {
		return resultNeedMore, nil
	}
	p.buf.Reset()
	p.buf.Write(tail)

	trailerNames := allowedTrailerNames(p.req.Headers)
	normalized := bytes.ReplaceAll(head, p.term, []byte("\r\n"))
	candidate := hdr.New()
	if err := candidate.Parse(normalized); err != nil {
		return resultNeedMore, &HTTPStatus{Code: 400, Reason: "Bad Request"}
	}
	for _, name := range candidate.Names() {
		if !trailerNames[name] {
			return resultNeedMore, &HTTPStatus{Code: 400, Reason: "Bad Request"}
		}
		p.req.Headers.Append(name, candidate.Get(name))
	}
	return p.finishBody()
}

func allowedTrailerNames(h *hdr.Headers) map[string]bool {
	names := map[string]bool{}
	if !h.Has(hdr.Trailer) {
		return names
	}
	for _, tok := range strings.Split(h.Get(hdr.Trailer), ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			names[hdr.CanonicalName(tok)] = true
		}
	}
	return names
}

// finishBody runs the post-body hooks from spec.md §4.6 and yields the
// completed request.
func (p *MessageParser) finishBody() (stepResult, error) {
	p.req.Body.Seek(0, 0)
	p.req.Headers.Set(hdr.ContentLength, strconv.Itoa(p.req.Body.Len()))
	p.req.danglingBody = p.danglingBody

	if p.chunked {
		stripChunkedCoding(p.req.Headers)
	}

	if p.req.Headers.Has(hdr.ContentEncoding) {
		elem, err := p.req.Headers.Element(hdr.ContentEncoding)
		if err != nil {
			return resultNeedMore, &HTTPStatus{Code: 400, Reason: "Bad Request"}
		}
		if ce, ok := elem.(*hdr.CodecElement); ok {
			if ce.Unimplemented {
				events.emit(EventUnimplementedCodec, ce.Value())
				return resultNeedMore, &HTTPStatus{Code: 501, Reason: "Not Implemented"}
			}
			p.req.Body.ContentEncoding = ce
		}
	}

	if p.req.Headers.Has(hdr.ContentType) {
		elem, err := p.req.Headers.Element(hdr.ContentType)
		if err == nil {
			if mt, ok := elem.(*hdr.MimeType); ok {
				p.req.Body.MimeType = mt
			}
		}
	}

	p.phase = phaseComplete
	return resultYielded, nil
}

// stripChunkedCoding removes only the "chunked" coding from
// Transfer-Encoding, preserving any other listed codings. spec.md §9
// flags the source's whole-header removal as a bug to fix here.
func stripChunkedCoding(h *hdr.Headers) {
	if !h.Has(hdr.TransferEncoding) {
		return
	}
	var kept []string
	for _, tok := range strings.Split(h.Get(hdr.TransferEncoding), ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" && !strings.EqualFold(tok, "chunked") {
			kept = append(kept, tok)
		}
	}
	if len(kept) == 0 {
		h.Del(hdr.TransferEncoding)
	} else {
		h.Set(hdr.TransferEncoding, strings.Join(kept, ", "))
	}
}
