package crypter

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"
	"time"
)

// Encrypt produces a freshly time-stamped, randomized token for the
// plaintext. Two calls with identical inputs yield different tokens
// because each call draws a new IV.
func (e *Engine) Encrypt(plaintext []byte) ([]byte, error) {
	tok, err := e.encryptAt(plaintext, time.Now(), nil)
	recordOp(encryptOps, err)
	return tok, err
}

// encryptAt builds a token with an explicit timestamp and, when iv is
// non-nil, a fixed IV. Production callers go through Encrypt; tests use
// this to pin token contents.
func (e *Engine) encryptAt(plaintext []byte, at time.Time, iv []byte) ([]byte, error) {
	if iv == nil {
		iv = make([]byte, aes.BlockSize)
		if _, err := io.ReadFull(randReader, iv); err != nil {
			return nil, fmt.Errorf("crypter: failed to generate IV: %w", err)
		}
	}

	block, err := aes.NewCipher(e.encKey)
	if err != nil {
		return nil, fmt.Errorf("crypter: failed to create cipher: %w", err)
	}

	// Padded buffer doubles as the in-place ciphertext destination.
	padded := pad(plaintext)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(padded, padded)

	return buildToken(e.signKey, uint64(at.Unix()), iv, padded), nil
}
