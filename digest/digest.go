/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package digest implements RFC 2617 HTTP Digest authentication:
// credential composition (the request side) and verification (the
// server side), for algorithms MD5 and MD5-sess with qop absent,
// "auth" or "auth-int".
package digest

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Algorithm names the two hash variants RFC 2617 defines.
type Algorithm string

const (
	MD5     Algorithm = "MD5"
	MD5Sess Algorithm = "MD5-sess"
)

// QOP is the quality-of-protection value, or "" when absent.
type QOP string

const (
	QOPNone    QOP = ""
	QOPAuth    QOP = "auth"
	QOPAuthInt QOP = "auth-int"
)

// ErrUnknownAlgorithm reports an Authinfo.Algorithm this package does
// not implement.
var ErrUnknownAlgorithm = errors.New("digest: unknown algorithm")

// ErrUnknownQOP reports an Authinfo.QOP this package does not implement.
var ErrUnknownQOP = errors.New("digest: unknown quality of protection")

// Authinfo carries every field the A1/A2/response formulas need. Not
// every field is required for every combination of Algorithm and QOP;
// see RequestDigest.
type Authinfo struct {
	Username string
	Realm    string
	Password string
	Nonce    string
	CNonce   string
	NC       string // nonce count, e.g. "00000001"
	Method   string
	URI      string
	Algorithm Algorithm
	QOP      QOP

	// A1, when set and Algorithm is MD5-sess, is taken as the A1 string
	// itself (and hashed to form the secret) instead of recomputing it
	// from username, realm, password, nonce and cnonce -- mirrors
	// authinfo.get('A1') in the source.
	A1 string
}

func hashHex(parts ...string) string {
	h := md5.New()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte(":"))
		}
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func algorithmOrDefault(a Algorithm) Algorithm {
	if a == "" {
		return MD5
	}
	return a
}

func validAlgorithm(a Algorithm) bool {
	return a == MD5 || a == MD5Sess
}

// A1 computes the A1 component: "username:realm:password" for MD5, or
// "H(username:realm:password):nonce:cnonce" for MD5-sess.
func A1(info Authinfo) (string, error) {
	alg := algorithmOrDefault(info.Algorithm)
	switch alg {
	case MD5:
		return fmt.Sprintf("%s:%s:%s", info.Username, info.Realm, info.Password), nil
	case MD5Sess:
		inner := hashHex(info.Username, info.Realm, info.Password)
		return fmt.Sprintf("%s:%s:%s", inner, info.Nonce, info.CNonce), nil
	default:
		return "", ErrUnknownAlgorithm
	}
}

// A2 computes the A2 component: "method:uri" for qop absent or "auth",
// or "method:uri:H(entityBody)" for "auth-int".
func A2(info Authinfo, entityBody []byte) (string, error) {
	switch info.QOP {
	case QOPNone, QOPAuth:
		return fmt.Sprintf("%s:%s", info.Method, info.URI), nil
	case QOPAuthInt:
		if !validAlgorithm(algorithmOrDefault(info.Algorithm)) {
			return "", ErrUnknownAlgorithm
		}
		bodyHash := hashHex(string(entityBody))
		return fmt.Sprintf("%s:%s:%s", info.Method, info.URI, bodyHash), nil
	default:
		return "", ErrUnknownQOP
	}
}

// RequestDigest computes the "response" field per RFC 2617 §3.2.2.1:
//
//	response = H( H(A1) : nonce : nc : cnonce : qop : H(A2) )   when qop is set
//	response = H( H(A1) : nonce : H(A2) )                        otherwise
//
// entityBody is only consulted when QOP is "auth-int".
func RequestDigest(info Authinfo, entityBody []byte) (string, error) {
	alg := algorithmOrDefault(info.Algorithm)
	if !validAlgorithm(alg) {
		return "", ErrUnknownAlgorithm
	}

	var secret string
	if alg == MD5Sess && info.A1 != "" {
		secret = hashHex(info.A1)
	} else {
		a1, err := A1(info)
		if err != nil {
			return "", err
		}
		secret = hashHex(a1)
	}

	a2, err := A2(info, entityBody)
	if err != nil {
		return "", err
	}
	hashA2 := hashHex(a2)

	var data string
	switch info.QOP {
	case QOPAuth, QOPAuthInt:
		data = fmt.Sprintf("%s:%s:%s:%s:%s", info.Nonce, info.NC, info.CNonce, string(info.QOP), hashA2)
	case QOPNone:
		data = fmt.Sprintf("%s:%s", info.Nonce, hashA2)
	default:
		return "", ErrUnknownQOP
	}

	return hashHex(secret, data), nil
}

// GenerateNonce computes H(time:etagOrRealm:uuid), matching the
// source's generate_nonce: a fresh nonce binds the current time, the
// resource's etag (falling back to realm), and a random UUID.
func GenerateNonce(realm, etag string, algorithm Algorithm) string {
	salt := etag
	if salt == "" {
		salt = realm
	}
	raw := fmt.Sprintf("%d:%s:%s", time.Now().Unix(), salt, uuid.New().String())
	_ = algorithmOrDefault(algorithm)
	return hashHex(raw)
}

// Check verifies a client-supplied response against freshly recomputed
// credentials: the realm must match, and the recomputed response must
// equal the client's in constant time. The stale return is true when
// the realm matches and the response does not, and the received nonce
// differs from the stored one -- callers may use it to decide whether
// to reissue a fresh challenge instead of failing the request outright.
func Check(stored, received Authinfo, receivedResponse string, entityBody []byte) (ok bool, stale bool, err error) {
	if stored.Realm != received.Realm {
		return false, false, nil
	}
	computed, err := RequestDigest(received, entityBody)
	if err != nil {
		return false, false, err
	}
	match := subtle.ConstantTimeCompare([]byte(computed), []byte(receivedResponse)) == 1
	if !match && stored.Nonce != received.Nonce {
		return false, true, nil
	}
	return match, false, nil
}
