/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

import (
	"fmt"
	"sort"
	"strings"
)

// Headers is an ordered, case-insensitive, multi-valued field store.
// Repeated occurrences of the same field are combined at Append time
// via the field's registered Kind (", "-joined by default); Set-Cookie
// is the one field kept as a genuine list, per RFC 7230 §3.2.2 --
// the combined store supports it but the request-side parser never
// exercises that path.
type Headers struct {
	order  []string
	single map[string]string
	multi  map[string][]string
}

// New returns an empty Headers store.
func New() *Headers {
	return &Headers{single: map[string]string{}, multi: map[string][]string{}}
}

func (h *Headers) remember(name string) {
	for _, n := range h.order {
		if n == name {
			return
		}
	}
	h.order = append(h.order, name)
}

// Names returns the canonical field names in first-insertion order.
func (h *Headers) Names() []string {
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

// Has reports whether name is present, case-insensitively.
func (h *Headers) Has(name string) bool {
	name = CanonicalName(name)
	if _, ok := h.single[name]; ok {
		return true
	}
	_, ok := h.multi[name]
	return ok
}

// Get returns the combined value for name, or "" if absent. For
// Set-Cookie it returns the first stored occurrence.
func (h *Headers) Get(name string) string {
	name = CanonicalName(name)
	if v, ok := h.single[name]; ok {
		return v
	}
	if vs, ok := h.multi[name]; ok && len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Values returns every raw occurrence stored for name.
func (h *Headers) Values(name string) []string {
	name = CanonicalName(name)
	if v, ok := h.single[name]; ok {
		return []string{v}
	}
	return append([]string(nil), h.multi[name]...)
}

// Set replaces any existing value(s) for name with a single value.
func (h *Headers) Set(name, value string) {
	name = CanonicalName(name)
	delete(h.multi, name)
	h.single[name] = value
	h.remember(name)
}

// SetDefault sets name to value only if it is not already present.
func (h *Headers) SetDefault(name, value string) {
	if !h.Has(name) {
		h.Set(name, value)
	}
}

// Del removes every stored occurrence of name.
func (h *Headers) Del(name string) {
	name = CanonicalName(name)
	delete(h.single, name)
	delete(h.multi, name)
	for i, n := range h.order {
		if n == name {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Pop removes name and returns its combined value, if it was present.
func (h *Headers) Pop(name string) (string, bool) {
	name = CanonicalName(name)
	v, ok := h.single[name]
	if !ok {
		vs, ok2 := h.multi[name]
		if ok2 && len(vs) > 0 {
			v, ok = vs[0], true
		}
	}
	if ok {
		h.Del(name)
	}
	return v, ok
}

// Append adds value to name, combining with any existing value using
// the field's registered join rule (", " by default). Set-Cookie is
// kept as a list instead of being joined. Optional params are rendered
// as "; key=value" (or bare "; key" when nil) and appended to value
// before joining, letting callers build "text/html; charset=utf-8"
// style values in one call.
func (h *Headers) Append(name, value string, params ...Param) {
	name = CanonicalName(name)
	if len(params) > 0 {
		parts := []string{value}
		for _, p := range params {
			if !p.HasValue {
				parts = append(parts, p.Key)
			} else {
				parts = append(parts, FormatParam(p.Key, p.Value))
			}
		}
		value = strings.Join(parts, "; ")
	}

	if name == SetCookieHeader {
		h.multi[name] = append(h.multi[name], value)
		h.remember(name)
		return
	}

	kind := kindFor(name)
	if existing, ok := h.single[name]; ok && existing != "" {
		h.single[name] = kind.Join(existing, value)
	} else {
		h.single[name] = value
	}
	h.remember(name)
}

// Element parses name's combined value as a single Element using its
// registered Kind, running Sanitize before returning.
func (h *Headers) Element(name string) (Element, error) {
	name = CanonicalName(name)
	value, ok := h.single[name]
	if !ok {
		return nil, nil
	}
	kind := kindFor(name)
	elem, err := kind.Parse(name, value)
	if err != nil {
		return nil, err
	}
	if err := kind.Sanitize(elem); err != nil {
		return nil, err
	}
	return elem, nil
}

// Elements splits name's combined value into its comma-separated
// members, parses and sanitizes each one, and returns them sorted
// (descending quality, then specificity, for Accept-like fields).
func (h *Headers) Elements(name string) ([]Element, error) {
	name = CanonicalName(name)
	value, ok := h.single[name]
	if !ok || value == "" {
		return nil, nil
	}
	kind := kindFor(name)
	raws := kind.Split(value)
	elems := make([]Element, 0, len(raws))
	for _, raw := range raws {
		elem, err := kind.Parse(name, raw)
		if err != nil {
			return nil, err
		}
		if err := kind.Sanitize(elem); err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	sort.SliceStable(elems, func(i, j int) bool { return kind.Less(elems[i], elems[j]) })
	return elems, nil
}

// Validate dry-runs Elements on every stored field, surfacing the
// first InvalidHeaderError encountered.
func (h *Headers) Validate() error {
	for _, name := range h.order {
		if _, err := h.Elements(name); err != nil {
			return err
		}
	}
	return nil
}

// Parse reads a block of header field lines (no trailing blank line)
// in wire format, resolving obs-fold continuation lines along the way.
func (h *Headers) Parse(data []byte) error {
	lines := strings.Split(string(data), "\r\n")
	for len(lines) > 0 {
		cur := lines[0]
		lines = lines[1:]
		if cur == "" {
			continue
		}

		idx := strings.IndexByte(cur, ':')
		if idx < 0 {
			return &InvalidHeaderError{Msg: fmt.Sprintf("invalid header line: %q", cur)}
		}
		name := strings.TrimRight(cur[:idx], " \t")
		if !ValidFieldName(name) {
			return &InvalidHeaderError{Msg: fmt.Sprintf("invalid header name: %q", name)}
		}

		valueParts := []string{strings.TrimLeft(cur[idx+1:], " \t")}
		for len(lines) > 0 && len(lines[0]) > 0 && (lines[0][0] == ' ' || lines[0][0] == '\t') {
			valueParts = append(valueParts, lines[0][1:])
			lines = lines[1:]
		}
		value := strings.TrimRight(strings.Join(valueParts, ""), " \t")

		h.Append(name, value)
	}
	return nil
}

// Compose renders the stored fields back into wire format, each as
// "Name: value\r\n", followed by a trailing blank line.
func (h *Headers) Compose() []byte {
	var b strings.Builder
	for _, name := range h.order {
		for _, v := range h.Values(name) {
			b.WriteString(name)
			b.WriteString(": ")
			b.WriteString(encodeLatin1(v))
			b.WriteString("\r\n")
		}
	}
	b.WriteString("\r\n")
	return []byte(b.String())
}

// encodeLatin1 mirrors ISO-8859-1-with-replacement encoding: runes
// outside the Latin-1 range become '?'.
func encodeLatin1(s string) string {
	hasNonLatin1 := false
	for _, r := range s {
		if r > 0xFF {
			hasNonLatin1 = true
			break
		}
	}
	if !hasNonLatin1 {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r > 0xFF {
			b.WriteByte('?')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Clone returns a deep copy of h.
func (h *Headers) Clone() *Headers {
	h2 := New()
	h2.order = append([]string(nil), h.order...)
	for k, v := range h.single {
		h2.single[k] = v
	}
	for k, v := range h.multi {
		h2.multi[k] = append([]string(nil), v...)
	}
	return h2
}
