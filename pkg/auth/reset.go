package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// NewResetToken creates a password-reset token pair: the raw token that is
// emailed to the user and the sha256 hash that is stored. Only the hash
// ever touches the database.
func NewResetToken() (raw, hashed string, err error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(bytes)
	return raw, HashResetToken(raw), nil
}

// HashResetToken hashes a raw reset token the same way NewResetToken does,
// so an incoming token can be matched against the stored hash.
func HashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
