package dashboard

import (
	"crypto/sha256"
	"crypto/subtle"
	"io"

	"golang.org/x/crypto/hkdf"
)

// TokenSize is the derived auth token size in bytes.
const TokenSize = 32

// tokenInfo domain-separates the dashboard token derivation.
var tokenInfo = []byte("reefbot-dashboard-v1")

// DeriveToken derives the dashboard auth token from the shared secret
// configured on both the robot and the operator console. An empty secret
// yields a token too, so open pits setups keep working; the handshake
// then only rejects clients with a mismatched non-empty secret.
func DeriveToken(secret string) []byte {
	r := hkdf.New(sha256.New, []byte(secret), nil, tokenInfo)
	token := make([]byte, TokenSize)
	if _, err := io.ReadFull(r, token); err != nil {
		// HKDF cannot fail for these sizes.
		panic(err)
	}
	return token
}

// VerifyToken compares tokens in constant time.
func VerifyToken(expected, got []byte) bool {
	if len(expected) != len(got) {
		return false
	}
	return subtle.ConstantTimeCompare(expected, got) == 1
}
