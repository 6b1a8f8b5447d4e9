// Package token implements the transport encoding that carries a
// payload string inside a URL query parameter.
package token

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// Encode maps a payload string to a URL-safe token. The token uses the
// unpadded base64url alphabet, so it needs no additional escaping when
// placed in a query parameter.
func Encode(payload string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

// Decode reverses Encode. Any malformed input — empty string, bytes
// outside the token alphabet, truncated groups, or non-UTF-8 content —
// yields the empty string so callers can treat every bad token
// uniformly as a missing payload.
func Decode(tok string) string {
	if tok == "" {
		return ""
	}
	// Tolerate padded tokens produced by standard base64url encoders.
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(tok, "="))
	if err != nil {
		return ""
	}
	if !utf8.Valid(b) {
		return ""
	}
	return string(b)
}
