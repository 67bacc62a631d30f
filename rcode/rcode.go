// SPDX-License-Identifier: GPL-3.0-or-later

// Package rcode maps [result.Code] to DNS response codes.
//
// A DNS server that fails while serving a query (e.g., because a socket
// or file operation failed) answers with the code returned by [FromResult].
package rcode

import (
	"github.com/miekg/dns"
	"github.com/rbmk-project/oserr/result"
)

// FromResult returns the DNS response code for the given result.
//
// [result.Success] maps to NOERROR, [result.NoPermission] maps to
// REFUSED, and every other code (including invalid codes) maps
// to SERVFAIL.
func FromResult(code result.Code) int {
	switch code {
	case result.Success:
		return dns.RcodeSuccess
	case result.NoPermission:
		return dns.RcodeRefused
	default:
		return dns.RcodeServerFailure
	}
}

// String returns the name of the DNS response code for the given result.
func String(code result.Code) string {
	return dns.RcodeToString[FromResult(code)]
}

// NewErrorResponse returns a response to query whose response
// code is the one returned by [FromResult].
func NewErrorResponse(query *dns.Msg, code result.Code) *dns.Msg {
	resp := &dns.Msg{}
	resp.SetRcode(query, FromResult(code))
	return resp
}
