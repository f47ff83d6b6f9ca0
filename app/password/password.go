package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

const (
	saltLen   = 32 // hex chars (16 random bytes)
	digestLen = 64 // hex chars (sha256)
)

// Hash returns a fresh salted hash in the fixed salt-prefix format:
// 32 hex chars of salt followed by 64 hex chars of sha256(password+salt).
func Hash(password string) (string, error) {
	raw := make([]byte, saltLen/2)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	salt := hex.EncodeToString(raw)
	digest := sha256.Sum256([]byte(password + salt))
	return salt + hex.EncodeToString(digest[:]), nil
}

// Verify recomputes the digest using the salt prefix of hashed and
// compares in constant time.
func Verify(password, hashed string) bool {
	if len(hashed) != saltLen+digestLen {
		return false
	}
	salt := hashed[:saltLen]
	digest := sha256.Sum256([]byte(password + salt))
	want := hex.EncodeToString(digest[:])
	return subtle.ConstantTimeCompare([]byte(hashed[saltLen:]), []byte(want)) == 1
}
