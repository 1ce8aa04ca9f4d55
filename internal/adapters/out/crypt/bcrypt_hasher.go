// Package crypt implements the CredentialHasher port with bcrypt.
package crypt

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt digests start with a version marker; anything else in the credential
// column is a legacy plaintext secret awaiting migration.
var digestPrefixes = []string{"$2a$", "$2b$", "$2y$"}

const hashCost = 12

// BcryptHasher hashes and verifies secrets with bcrypt. Each Hash call salts
// independently, so two digests of the same secret differ but both verify.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher at the standard cost.
func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{cost: hashCost}
}

// Hash produces a fresh digest for the secret.
func (h BcryptHasher) Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// IsHashed reports whether the stored value is a bcrypt digest.
func (h BcryptHasher) IsHashed(stored string) bool {
	for _, prefix := range digestPrefixes {
		if strings.HasPrefix(stored, prefix) {
			return true
		}
	}
	return false
}

// Verify reports whether the secret matches the digest.
func (h BcryptHasher) Verify(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
