package crypter

// Disabled is the canonical no-op crypter, used when encryption is turned
// off for an artifact. Every transform is the identity function and its
// key is the absence sentinel. It is stateless, so this single well-known
// instance serves the whole process.
var Disabled Crypter = disabledCrypter{}

// disabledCrypter is the closed no-op variant. It is deliberately not
// constructible from key material; the only instance is Disabled.
type disabledCrypter struct{}

// Encrypt returns the payload unchanged.
func (disabledCrypter) Encrypt(plaintext []byte) ([]byte, error) {
	return plaintext, nil
}

// Decrypt returns the token unchanged.
func (disabledCrypter) Decrypt(token []byte) ([]byte, error) {
	return token, nil
}

// Handshake succeeds only for the empty candidate: both sides agreeing
// encryption is off, rather than proving any key material. Any non-empty
// candidate fails.
func (disabledCrypter) Handshake(candidate []byte) bool {
	return len(candidate) == 0
}

// HandshakeToken returns the empty challenge, so a disabled peer's
// Handshake accepts it.
func (disabledCrypter) HandshakeToken() ([]byte, error) {
	return nil, nil
}

// Key returns the absence sentinel.
func (disabledCrypter) Key() Key {
	return Key{}
}

// Disabled reports true.
func (disabledCrypter) Disabled() bool {
	return true
}
