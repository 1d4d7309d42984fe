/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// disallowedHostByte mirrors the historical httoop hostname grammar:
// control bytes and the separator characters that would make a Host
// value ambiguous with other header or URI syntax are rejected.
var disallowedHostByte = [256]bool{}

func init() {
	for c := 0; c < 0x20; c++ {
		disallowedHostByte[c] = true
	}
	disallowedHostByte[0x7f] = true
	for _, c := range []byte("()^'\"<>@,;:/[]={} \t\\") {
		disallowedHostByte[c] = true
	}
}

// Host is the Element produced for the Host and X-Forwarded-Host
// fields: a hostname or address plus an optional port.
type Host struct {
	*Generic
	Hostname string
	Port     int
	IsIPv4   bool
	IsIPv6   bool
	IsFQDN   bool
	ASCII    string // punycode form, best-effort, only set for FQDNs
}

// splitHostPort mirrors the historical `^(.*?)(?::(\d+))?$` host:port
// grammar: the port is the digits after the rightmost colon, if any.
func splitHostPort(s string) (host, port string) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 || i == len(s)-1 {
		return s, ""
	}
	suffix := s[i+1:]
	for j := 0; j < len(suffix); j++ {
		if suffix[j] < '0' || suffix[j] > '9' {
			return s, ""
		}
	}
	return s[:i], suffix
}

func validHostnameBytes(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if disallowedHostByte[s[i]] {
			return false
		}
	}
	return true
}

type hostKind struct{}

func (hostKind) Split(value string) []string { return []string{value} }

func (hostKind) Parse(name, raw string) (Element, error) {
	g := &Generic{name: name, value: raw, q: 1.0}
	return &Host{Generic: g}, nil
}

func (hostKind) Sanitize(e Element) error {
	h := e.(*Host)
	h.value = strings.ToLower(h.value)

	hostPart, portPart := splitHostPort(h.value)
	if strings.HasPrefix(hostPart, "[") && strings.HasSuffix(hostPart, "]") {
		hostPart = hostPart[1 : len(hostPart)-1]
	}
	h.Hostname = hostPart
	if portPart != "" {
		port, err := strconv.Atoi(portPart)
		if err != nil {
			return &InvalidHeaderError{Msg: fmt.Sprintf("invalid Host header: %q", h.value)}
		}
		h.Port = port
	}

	if ip := net.ParseIP(hostPart); ip != nil {
		if ip.To4() != nil {
			h.IsIPv4 = true
		} else {
			h.IsIPv6 = true
		}
	} else if validHostnameBytes(hostPart) {
		h.IsFQDN = true
		if ascii, err := idna.ToASCII(hostPart); err == nil {
			h.ASCII = ascii
		}
	}

	if !h.IsIPv4 && !h.IsIPv6 && !h.IsFQDN {
		return &InvalidHeaderError{Msg: fmt.Sprintf("invalid Host header: %q", h.value)}
	}
	return nil
}

func (hostKind) Less(a, b Element) bool { return false }

func (hostKind) Join(existing, next string) string {
	return genericKindInstance.Join(existing, next)
}

func init() {
	k := hostKind{}
	Register(Host, k)
	Register(XForwardedHost, k)
}
