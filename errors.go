package crypter

import "errors"

var (
	// ErrInvalidKey is returned when a key is not the canonical 44-byte
	// urlsafe base64 encoding of 32 raw bytes.
	ErrInvalidKey = errors.New("crypter: invalid key, must be 44 urlsafe base64 bytes")

	// ErrDecryptionFailed is returned when a token cannot be decrypted:
	// tag mismatch, malformed encoding, or a token produced under a
	// different key.
	ErrDecryptionFailed = errors.New("crypter: decryption failed")

	// ErrExpiredToken is returned by DecryptWithTTL when a token is older
	// than the allowed TTL or timestamped too far into the future.
	ErrExpiredToken = errors.New("crypter: token expired")
)

// IsInvalidKey returns true if the error is or wraps ErrInvalidKey.
func IsInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}

// IsDecryptionFailed returns true if the error is or wraps ErrDecryptionFailed.
func IsDecryptionFailed(err error) bool {
	return errors.Is(err, ErrDecryptionFailed)
}

// IsExpiredToken returns true if the error is or wraps ErrExpiredToken.
func IsExpiredToken(err error) bool {
	return errors.Is(err, ErrExpiredToken)
}
