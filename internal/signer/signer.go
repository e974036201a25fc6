// Package signer implements the APIAuth signature scheme used by the
// Remitano REST API: a Content-MD5 digest of the request payload and an
// HMAC-SHA1 over a canonical string of the request fields.
package signer

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"encoding/base64"
	"fmt"

	"github.com/bytedance/sonic"
)

// contentType participates in the canonical string and must match the
// Content-Type header actually sent.
const contentType = "application/json"

// Signer computes APIAuth signatures for outgoing requests.
// It is immutable and safe for concurrent use.
type Signer struct {
	secret []byte
}

// New creates a Signer keyed with the API secret.
func New(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Payload normalizes a request body to the exact bytes that are hashed
// into Content-MD5 and sent on the wire. Strings and byte slices pass
// through untouched, nil yields no payload, and anything else is
// encoded as compact JSON.
func Payload(body any) ([]byte, error) {
	switch v := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		data, err := sonic.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		return data, nil
	}
}

// ContentMD5 returns the base64-encoded MD5 digest of the payload.
// An absent body digests as the empty byte string.
func ContentMD5(payload []byte) string {
	sum := md5.Sum(payload)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// CanonicalString concatenates the signed request fields in the order
// the API verifies them: method, content type, Content-MD5, request URI
// (path plus encoded query), and HTTP date.
func CanonicalString(method, contentMD5, requestURI, date string) string {
	return method + "," + contentType + "," + contentMD5 + "," + requestURI + "," + date
}

// Sign returns the base64-encoded HMAC-SHA1 of the canonical string.
func (s *Signer) Sign(canonical string) string {
	h := hmac.New(sha1.New, s.secret)
	h.Write([]byte(canonical))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// Authorization formats the APIAuth authorization header value.
func Authorization(key, signature string) string {
	return "APIAuth " + key + ":" + signature
}
