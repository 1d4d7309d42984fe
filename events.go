/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import "sync"

// EventType identifies a diagnostic point a caller may want to observe
// without this package taking a logging dependency (spec.md §9's
// "no logging" stance, SPEC_FULL.md §10).
type EventType int

const (
	// EventH2cUpgrade fires when ServerStateMachine.validate recognizes
	// the Connection: Upgrade, HTTP2-Settings, Upgrade: h2c combination
	// and hands back a 101 pair.
	EventH2cUpgrade EventType = iota
	// EventUnimplementedCodec fires just before a 501 is raised: when
	// the final Transfer-Encoding coding is anything other than
	// "chunked" (known or unknown token alike), or when Content-Encoding
	// names a known token with no codec (compress, identity, exi,
	// pack200-gzip).
	EventUnimplementedCodec
	// EventRedirectNormalized fires when ServerStateMachine.validate
	// rewrites a request-target during normalization and is about to
	// return the 301 pair.
	EventRedirectNormalized
)

// eventDispatcher is a synchronous, process-wide fan-out of EventType
// notifications. Adapted from the teacher's srvEvDispatcher
// (server_event_emitter.go): that dispatcher exists to synchronize
// concurrency tests against a running connection loop, which this
// package has none of, so the channel/goroutine machinery is dropped
// in favor of a plain listener slice invoked synchronously at the
// call site.
type eventDispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]func(EventType, string)
}

var events = &eventDispatcher{listeners: map[EventType][]func(EventType, string){}}

// OnEvent registers f to be called, synchronously, every time typ
// occurs. detail carries a short human-readable note (the codec name,
// the rewritten path, ...). Intended for a caller-owned logger to hang
// off of; wirehttp itself never calls this.
func OnEvent(typ EventType, f func(typ EventType, detail string)) {
	events.mu.Lock()
	defer events.mu.Unlock()
	events.listeners[typ] = append(events.listeners[typ], f)
}

// emit notifies every listener registered for typ. No-op when nothing
// is registered, which is the common case.
func (d *eventDispatcher) emit(typ EventType, detail string) {
	d.mu.RLock()
	fns := d.listeners[typ]
	d.mu.RUnlock()
	for _, f := range fns {
		f(typ, detail)
	}
}
