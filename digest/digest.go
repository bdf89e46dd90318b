// Package digest signs a response string with the caller's credentials.
//
// The signature is a SHA-256 digest over the concatenation of student id,
// secret key, and response string, hex encoded. The concatenation order is
// fixed; the grader recomputes the same digest to verify the submission.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
)

// Credentials identifies the submitter. Both fields are opaque strings
// supplied by the caller and never persisted.
type Credentials struct {
	StudentID string
	SecretKey string
}

// Sum computes the hex-encoded SHA-256 digest of
// StudentID + SecretKey + response, in that exact order, over the UTF-8
// bytes of the concatenation.
func Sum(creds Credentials, response string) string {
	h := sha256.New()
	h.Write([]byte(creds.StudentID))
	h.Write([]byte(creds.SecretKey))
	h.Write([]byte(response))
	return hex.EncodeToString(h.Sum(nil))
}
