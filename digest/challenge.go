/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package digest

import (
	"strconv"
	"strings"
)

// Challenge is the server-issued WWW-Authenticate: Digest ... value
// (RFC 2617 §3.2.1). Composition mirrors DigestAuthResponseScheme in
// the source: domain, opaque, stale and qop are emitted only when set;
// realm, nonce and algorithm (MD5 when empty) are always emitted.
type Challenge struct {
	Realm     string
	Domain    []string
	Nonce     string
	Opaque    string
	Stale     bool
	StaleSet  bool
	Algorithm Algorithm
	QOP       []QOP
}

// Compose renders the challenge as the comma-separated parameter list
// that follows "Digest " in a WWW-Authenticate header.
func (c Challenge) Compose() string {
	var parts []string
	parts = append(parts, quotedParam("realm", c.Realm))
	if len(c.Domain) > 0 {
		parts = append(parts, quotedParam("domain", strings.Join(c.Domain, " ")))
	}
	parts = append(parts, quotedParam("nonce", strings.ReplaceAll(c.Nonce, `"`, "")))
	if c.Opaque != "" {
		parts = append(parts, quotedParam("opaque", c.Opaque))
	}
	if c.StaleSet {
		parts = append(parts, "stale="+strconv.FormatBool(c.Stale))
	}
	alg := c.Algorithm
	if alg == "" {
		alg = MD5
	}
	parts = append(parts, "algorithm="+string(alg))
	if len(c.QOP) > 0 {
		strs := make([]string, len(c.QOP))
		for i, q := range c.QOP {
			strs[i] = string(q)
		}
		parts = append(parts, quotedParam("qop", strings.Join(strs, ",")))
	}
	return strings.Join(parts, ", ")
}

// Credential is the client-supplied Authorization: Digest ... value
// (RFC 2617 §3.2.2), composed from an Authinfo plus the computed
// response digest.
type Credential struct {
	Authinfo
	Response string
	Opaque   string
}

// Compose renders the credential as the comma-separated parameter list
// that follows "Digest " in an Authorization header.
func (c Credential) Compose() string {
	parts := []string{
		quotedParam("username", c.Username),
		quotedParam("realm", c.Realm),
		quotedParam("nonce", strings.ReplaceAll(c.Nonce, `"`, "")),
		quotedParam("uri", c.URI),
		quotedParam("response", c.Response),
	}
	if c.Algorithm != "" {
		parts = append(parts, "algorithm="+string(c.Algorithm))
	}
	if c.QOP != QOPNone {
		parts = append(parts, quotedParam("cnonce", c.CNonce))
	}
	if c.Opaque != "" {
		parts = append(parts, quotedParam("opaque", c.Opaque))
	}
	if c.QOP != QOPNone {
		parts = append(parts, "qop="+string(c.QOP))
		parts = append(parts, "nc="+c.NC)
	}
	return strings.Join(parts, ", ")
}

func quotedParam(key, value string) string {
	return key + `="` + value + `"`
}

// ParseCredential parses the parameter list following "Digest " in an
// Authorization header back into an Authinfo plus the claimed response.
func ParseCredential(value string) (Authinfo, string) {
	params := parseParams(value)
	info := Authinfo{
		Username:  params["username"],
		Realm:     params["realm"],
		Nonce:     params["nonce"],
		URI:       params["uri"],
		CNonce:    params["cnonce"],
		NC:        params["nc"],
		Algorithm: Algorithm(params["algorithm"]),
		QOP:       QOP(params["qop"]),
	}
	return info, params["response"]
}

func parseParams(value string) map[string]string {
	out := map[string]string{}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		val := strings.Trim(strings.TrimSpace(kv[1]), `"`)
		out[key] = val
	}
	return out
}
