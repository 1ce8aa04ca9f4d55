package ports

// CredentialHasher is the credential verification primitive. The domain only
// needs three facts about a secret: how to produce a digest, whether a stored
// value already is a digest, and whether a candidate secret matches one.
//
// A stored value that is not in the recognized digest format is a legacy
// plaintext secret; the authentication path compares it byte for byte and
// migrates it to hashed form on a successful login.
type CredentialHasher interface {
	// Hash produces a fresh digest for the secret. Two calls on the same
	// secret yield different digests (random salt); both verify.
	Hash(secret string) (string, error)

	// IsHashed reports whether the stored value is in the digest format.
	IsHashed(stored string) bool

	// Verify reports whether the secret matches the digest.
	Verify(secret, digest string) bool
}
