/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

// Canonical field names used throughout the protocol core. Declaring
// them as constants lets callers avoid typos and lets us register
// per-field element kinds without relying on magic strings.
const (
	Accept           = "Accept"
	AcceptCharset    = "Accept-Charset"
	AcceptEncoding   = "Accept-Encoding"
	AcceptLanguage   = "Accept-Language"
	AcceptRanges     = "Accept-Ranges"
	Allow            = "Allow"
	Authorization    = "Authorization"
	CacheControl     = "Cache-Control"
	Connection       = "Connection"
	ContentDispo     = "Content-Disposition"
	ContentEncoding  = "Content-Encoding"
	ContentLanguage  = "Content-Language"
	ContentLength    = "Content-Length"
	ContentLocation  = "Content-Location"
	ContentMD5       = "Content-Md5"
	ContentType      = "Content-Type"
	Date             = "Date"
	Etag             = "Etag"
	Expect           = "Expect"
	Expires          = "Expires"
	From             = "From"
	Host             = "Host"
	HTTP2Settings    = "Http2-Settings"
	IfModifiedSince  = "If-Modified-Since"
	IfNoneMatch      = "If-None-Match"
	LastModified     = "Last-Modified"
	Location         = "Location"
	MaxForwards      = "Max-Forwards"
	Pragma           = "Pragma"
	Referer          = "Referer"
	RetryAfter       = "Retry-After"
	ServerHeader     = "Server"
	SetCookieHeader  = "Set-Cookie"
	TE               = "Te"
	Trailer          = "Trailer"
	TransferEncoding = "Transfer-Encoding"
	Upgrade          = "Upgrade"
	UserAgent        = "User-Agent"
	Via              = "Via"
	WWWAuthenticate  = "Www-Authenticate"
	XForwardedHost   = "X-Forwarded-Host"

	TimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"
)

// commonHeader interns the canonical spellings above so canonicalization
// of a well-known field never allocates a new string.
var commonHeader = make(map[string]string)

func init() {
	for _, v := range []string{
		Accept, AcceptCharset, AcceptEncoding, AcceptLanguage, AcceptRanges,
		Allow, Authorization, CacheControl, Connection, ContentDispo,
		ContentEncoding, ContentLanguage, ContentLength, ContentLocation,
		ContentMD5, ContentType, Date, Etag, Expect, Expires, From, Host,
		HTTP2Settings, IfModifiedSince, IfNoneMatch, LastModified, Location,
		MaxForwards, Pragma, Referer, RetryAfter, ServerHeader, SetCookieHeader,
		TE, Trailer, TransferEncoding, Upgrade, UserAgent, Via, WWWAuthenticate,
		XForwardedHost,
	} {
		commonHeader[v] = v
	}
}
