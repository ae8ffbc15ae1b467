package crypter

import (
	"crypto/sha256"
	"fmt"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/pbkdf2"
)

// KeyFromPassword derives a Key from a password using
// PBKDF2-HMAC-SHA256. The salt must be non-empty and should be stored
// alongside the encrypted artifacts; iter is the PBKDF2 iteration count.
// Derivation is deterministic per (password, salt, iter), so the same
// inputs always yield the same key.
func KeyFromPassword(password, salt []byte, iter int) (Key, error) {
	if len(salt) == 0 {
		return Key{}, fmt.Errorf("crypter: salt must not be empty")
	}
	if iter < 1 {
		return Key{}, fmt.Errorf("crypter: iteration count must be positive, got %d", iter)
	}

	raw := pbkdf2.Key(password, salt, iter, rawKeySize, sha256.New)
	encoded := make([]byte, EncodedKeySize)
	tokenEncoding.Encode(encoded, raw)
	memguard.WipeBytes(raw)
	return Key{encoded: encoded}, nil
}
