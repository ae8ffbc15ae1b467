package crypter

// Crypter is the capability surface shared by the active cipher and the
// disabled no-op variant, letting callers hold either polymorphically.
// Implementations are immutable and safe for concurrent use.
type Crypter interface {
	// Encrypt produces an opaque token for the plaintext. Output is
	// randomized per call; callers must not assume determinism.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt recovers the plaintext from a token, failing with
	// ErrDecryptionFailed on tag mismatch, malformed input, or a token
	// produced under a different key.
	Decrypt(token []byte) ([]byte, error)

	// Handshake verifies that the candidate token proves knowledge of
	// this crypter's key. It never fails loudly: any decryption error is
	// reported as false.
	Handshake(candidate []byte) bool

	// HandshakeToken builds the challenge a peer verifies with
	// Handshake: the crypter's own canonical key encrypted under itself.
	HandshakeToken() ([]byte, error)

	// Key returns the bound key, or the absence sentinel for the
	// disabled variant.
	Key() Key

	// Disabled reports whether this is the no-op variant.
	Disabled() bool
}

// Equal reports whether two crypters hold bit-for-bit identical key
// material. Two disabled crypters are equal, both holding the absence
// sentinel.
func Equal(a, b Crypter) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Key().Equal(b.Key())
}

// IsDisabled reports whether c is equivalent to the Disabled singleton.
func IsDisabled(c Crypter) bool {
	return Equal(c, Disabled)
}
