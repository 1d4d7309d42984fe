/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import "github.com/badu/wirehttp/hdr"

// statusInfo is one entry of the status taxonomy (C9): a reason
// phrase, the headers response preparation must strip for this status,
// and whether a body is permitted at all.
type statusInfo struct {
	reason        string
	headerRemove  []string
	bodyPermitted bool
}

var statusTable = map[int]statusInfo{
	100: {reason: "Continue", bodyPermitted: false},
	101: {reason: "Switching Protocols", bodyPermitted: false},
	200: {reason: "OK", bodyPermitted: true},
	201: {reason: "Created", bodyPermitted: true},
	202: {reason: "Accepted", bodyPermitted: true},
	204: {reason: "No Content", bodyPermitted: false},
	205: {reason: "Reset Content", bodyPermitted: false},
	206: {reason: "Partial Content", bodyPermitted: true},
	301: {reason: "Moved Permanently", bodyPermitted: true},
	302: {reason: "Found", bodyPermitted: true},
	304: {
		reason:        "Not Modified",
		headerRemove:  []string{hdr.ContentLength, hdr.ContentType, hdr.TransferEncoding},
		bodyPermitted: false,
	},
	400: {reason: "Bad Request", bodyPermitted: true},
	401: {reason: "Unauthorized", bodyPermitted: true},
	403: {reason: "Forbidden", bodyPermitted: true},
	404: {reason: "Not Found", bodyPermitted: true},
	405: {reason: "Method Not Allowed", bodyPermitted: true},
	411: {reason: "Length Required", bodyPermitted: true},
	413: {reason: "Payload Too Large", bodyPermitted: true},
	414: {reason: "URI Too Long", bodyPermitted: true},
	500: {reason: "Internal Server Error", bodyPermitted: true},
	501: {reason: "Not Implemented", bodyPermitted: true},
	505: {reason: "HTTP Version Not Supported", bodyPermitted: true},
}

// ReasonPhrase returns the reason phrase for code, or "" if unknown.
func ReasonPhrase(code int) string { return statusTable[code].reason }

// HeadersToRemove returns the fields response preparation must strip
// for code, e.g. 304 removes Content-Length/Content-Type/Transfer-Encoding.
func HeadersToRemove(code int) []string {
	return statusTable[code].headerRemove
}

// BodyPermitted reports whether code allows a response body at all.
// Statuses below 200, plus 204, 205 and 304, never carry one.
func BodyPermitted(code int) bool {
	if code < 200 {
		return false
	}
	if info, ok := statusTable[code]; ok {
		return info.bodyPermitted
	}
	return true
}

// clearsBody reports the same thing as !BodyPermitted but reads more
// naturally at the one call site that needs it, response preparation
// (spec.md §4.7): statuses < 200, 204, 205 and 304 are cleared.
func clearsBody(code int) bool {
	return code < 200 || code == 204 || code == 205 || code == 304
}
