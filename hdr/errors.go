/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

// InvalidHeaderError reports a malformed field name, a malformed
// element, or a sanitize-time rejection (e.g. a bad Content-Type
// boundary). Callers that need to map it onto a protocol status code
// should use errors.As against this type.
type InvalidHeaderError struct {
	Msg string
}

func (e *InvalidHeaderError) Error() string { return e.Msg }
