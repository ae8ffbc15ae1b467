package crypter

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
)

// randReader is the entropy source for key and IV generation. It is a
// variable so tests can exercise the regeneration path.
var randReader io.Reader = rand.Reader

// Key is an immutable symmetric key in its canonical encoding: 44 urlsafe
// base64 bytes holding a 16-byte signing subkey and a 16-byte encryption
// subkey. The zero Key is the absence sentinel used by the disabled
// crypter.
type Key struct {
	encoded []byte
}

// ParseKey validates and copies a key in canonical encoding. Any input
// that is not exactly 44 bytes of valid urlsafe base64 is rejected with
// ErrInvalidKey.
func ParseKey(encoded []byte) (Key, error) {
	if len(encoded) != EncodedKeySize {
		return Key{}, fmt.Errorf("%w: got %d bytes", ErrInvalidKey, len(encoded))
	}
	raw := make([]byte, tokenDecoding.DecodedLen(len(encoded)))
	n, err := tokenDecoding.Decode(raw, encoded)
	memguard.WipeBytes(raw)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if n != rawKeySize {
		return Key{}, fmt.Errorf("%w: decodes to %d raw bytes", ErrInvalidKey, n)
	}

	b := make([]byte, EncodedKeySize)
	copy(b, encoded)
	return Key{encoded: b}, nil
}

// GenerateKey draws a fresh key from the process entropy source.
func GenerateKey() (Key, error) {
	raw := make([]byte, rawKeySize)
	if _, err := io.ReadFull(randReader, raw); err != nil {
		return Key{}, fmt.Errorf("crypter: key generation failed: %w", err)
	}
	encoded := make([]byte, EncodedKeySize)
	tokenEncoding.Encode(encoded, raw)
	memguard.WipeBytes(raw)
	return Key{encoded: encoded}, nil
}

// RotateKey generates a fresh key guaranteed to differ from avoid. The
// zero key places no constraint, making RotateKey(Key{}) equivalent to
// GenerateKey.
func RotateKey(avoid Key) (Key, error) {
	for {
		k, err := GenerateKey()
		if err != nil {
			return Key{}, err
		}
		if !k.Equal(avoid) {
			return k, nil
		}
	}
}

// IsZero reports whether the key is the absence sentinel.
func (k Key) IsZero() bool {
	return len(k.encoded) == 0
}

// Encoded returns a copy of the canonical encoding, or nil for the
// absence sentinel.
func (k Key) Encoded() []byte {
	if k.IsZero() {
		return nil
	}
	b := make([]byte, len(k.encoded))
	copy(b, k.encoded)
	return b
}

// Equal reports whether two keys are bit-for-bit identical. Two absent
// keys are equal. The comparison is constant time.
func (k Key) Equal(other Key) bool {
	return subtle.ConstantTimeCompare(k.encoded, other.encoded) == 1
}

// String redacts the key material.
func (k Key) String() string {
	if k.IsZero() {
		return "Key(absent)"
	}
	return "Key(redacted)"
}

// subkeys decodes the canonical encoding into its signing and encryption
// halves. The returned slices share one backing array; callers that are
// done with them should wipe via memguard.WipeBytes.
func (k Key) subkeys() (sign, enc []byte, err error) {
	if k.IsZero() {
		return nil, nil, fmt.Errorf("%w: key is absent", ErrInvalidKey)
	}
	raw := make([]byte, tokenDecoding.DecodedLen(len(k.encoded)))
	n, err := tokenDecoding.Decode(raw, k.encoded)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if n != rawKeySize {
		memguard.WipeBytes(raw)
		return nil, nil, fmt.Errorf("%w: decodes to %d raw bytes", ErrInvalidKey, n)
	}
	return raw[:signKeySize], raw[signKeySize:rawKeySize], nil
}
