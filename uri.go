/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"net/url"
	"strconv"
	"strings"
)

// URI is the parsed request-target: scheme, host, port, path, query,
// fragment. It wraps net/url.URL rather than forking it -- the
// teacher's own url/ package exists only to dodge a historical
// stdlib-internal import cycle that does not constrain this module
// (see DESIGN.md).
type URI struct {
	raw      *url.URL
	Asterisk bool // true for the OPTIONS asterisk-form request-target "*"
}

// Scheme, Host, Port, Path, Query and Fragment expose the components
// named in spec.md §3.
func (u *URI) Scheme() string { return u.raw.Scheme }
func (u *URI) Host() string   { return u.raw.Hostname() }
func (u *URI) Port() string   { return u.raw.Port() }
func (u *URI) Path() string   { return u.raw.Path }
func (u *URI) Query() string  { return u.raw.RawQuery }
func (u *URI) Fragment() string { return u.raw.Fragment }

// SetScheme overrides the scheme (used by the server state machine to
// fill in scheme/host/port from listener configuration when the
// request-target carries none).
func (u *URI) SetScheme(scheme, host, port string) {
	u.raw.Scheme = scheme
	if port != "" {
		u.raw.Host = host + ":" + port
	} else {
		u.raw.Host = host
	}
}

// String renders the URI back to its wire form.
func (u *URI) String() string {
	if u.Asterisk {
		return "*"
	}
	return u.raw.String()
}

var allowedSchemes = map[string]bool{"": true, "http": true, "https": true}

// ParseRequestTarget parses the second token of a request line per
// spec.md §4.4: "*" (asterisk-form, only valid for OPTIONS --
// ServerStateMachine.validate rejects any other method), an absolute
// path beginning with "/" (rejecting "//"-prefixed, protocol-relative
// targets), or an absolute URI with scheme http/https.
func ParseRequestTarget(target string) (*URI, error) {
	if target == "*" {
		return &URI{raw: &url.URL{}, Asterisk: true}, nil
	}
	if strings.HasPrefix(target, "//") {
		return nil, newInvalidURI("protocol-relative request-target: %q", target)
	}
	if !strings.HasPrefix(target, "/") && !strings.Contains(target, "://") {
		return nil, newInvalidURI("request-target must be absolute path or absolute URI: %q", target)
	}
	parsed, err := url.Parse(target)
	if err != nil {
		return nil, newInvalidURI("%s", err)
	}
	if !allowedSchemes[strings.ToLower(parsed.Scheme)] {
		return nil, newInvalidURI("unsupported scheme: %q", parsed.Scheme)
	}
	return &URI{raw: parsed}, nil
}

// Normalize decodes unreserved percent-escapes, collapses "."/".."
// path segments, and lowercases scheme and host. It returns whether the
// path changed, since the server state machine surfaces a 301 with the
// canonical path when it does (spec.md §4.4, §4.7).
func (u *URI) Normalize() (changed bool) {
	if u.Asterisk {
		return false
	}
	original := u.raw.Path

	u.raw.Scheme = strings.ToLower(u.raw.Scheme)
	u.raw.Host = strings.ToLower(u.raw.Host)

	cleaned := collapseDotSegments(decodeUnreserved(original))
	u.raw.Path = cleaned

	return cleaned != original
}

// decodeUnreserved percent-decodes only the RFC 3986 unreserved set
// (ALPHA / DIGIT / "-" / "." / "_" / "~"), leaving every other
// percent-escape (including %2F, which would otherwise collide with a
// path separator) untouched.
func decodeUnreserved(path string) string {
	var b strings.Builder
	b.Grow(len(path))
	for i := 0; i < len(path); i++ {
		if path[i] == '%' && i+2 < len(path) {
			if n, err := strconv.ParseUint(path[i+1:i+3], 16, 8); err == nil {
				c := byte(n)
				if isUnreservedByte(c) {
					b.WriteByte(c)
					i += 2
					continue
				}
			}
		}
		b.WriteByte(path[i])
	}
	return b.String()
}

func isUnreservedByte(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}
	return false
}

// collapseDotSegments implements RFC 3986 §5.2.4 "." and ".." removal.
func collapseDotSegments(path string) string {
	if path == "" {
		return path
	}
	trailingSlash := strings.HasSuffix(path, "/")
	segments := strings.Split(path, "/")
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case ".":
			// drop
		case "..":
			if len(out) > 0 && out[len(out)-1] != "" {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, seg)
		}
	}
	result := strings.Join(out, "/")
	if !strings.HasPrefix(result, "/") {
		result = "/" + result
	}
	if trailingSlash && !strings.HasSuffix(result, "/") {
		result += "/"
	}
	return result
}
