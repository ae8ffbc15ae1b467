package crypter

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"time"
)

// maxClockSkew is how far into the future a token timestamp may lie
// before DecryptWithTTL rejects it.
const maxClockSkew = 60 * time.Second

// Decrypt verifies and decrypts a token. It fails closed: on any tag
// mismatch, structural defect, or token produced under a different key it
// returns ErrDecryptionFailed and never partial plaintext.
func (e *Engine) Decrypt(token []byte) ([]byte, error) {
	plaintext, err := e.decrypt(token, 0)
	recordOp(decryptOps, err)
	return plaintext, err
}

// DecryptWithTTL behaves like Decrypt but additionally rejects tokens
// whose creation timestamp is older than ttl, or further than the allowed
// clock skew into the future, with ErrExpiredToken. A non-positive ttl
// disables the age check.
func (e *Engine) DecryptWithTTL(token []byte, ttl time.Duration) ([]byte, error) {
	plaintext, err := e.decrypt(token, ttl)
	recordOp(decryptOps, err)
	return plaintext, err
}

// Timestamp returns the creation time recorded in a token, after
// verifying its authentication tag.
func (e *Engine) Timestamp(token []byte) (time.Time, error) {
	t, err := e.verify(token)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(t.timestamp), 0), nil
}

func (e *Engine) decrypt(encoded []byte, ttl time.Duration) ([]byte, error) {
	t, err := e.verify(encoded)
	if err != nil {
		return nil, err
	}

	if ttl > 0 {
		now := time.Now()
		issued := time.Unix(int64(t.timestamp), 0)
		if now.Sub(issued) > ttl {
			return nil, fmt.Errorf("%w: issued at %s", ErrExpiredToken, issued.UTC().Format(time.RFC3339))
		}
		if issued.Sub(now) > maxClockSkew {
			return nil, fmt.Errorf("%w: timestamp too far in the future", ErrExpiredToken)
		}
	}

	block, err := aes.NewCipher(e.encKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	plaintext := make([]byte, len(t.ciphertext))
	cipher.NewCBCDecrypter(block, t.iv).CryptBlocks(plaintext, t.ciphertext)

	return unpad(plaintext)
}

// verify parses the token and checks its authentication tag in constant
// time against the bound signing subkey.
func (e *Engine) verify(encoded []byte) (*token, error) {
	t, err := parseToken(encoded)
	if err != nil {
		return nil, err
	}
	mac := hmac.New(sha256.New, e.signKey)
	mac.Write(t.signed)
	if !hmac.Equal(mac.Sum(nil), t.tag) {
		return nil, fmt.Errorf("%w: authentication tag mismatch", ErrDecryptionFailed)
	}
	return t, nil
}
