package crypter

import (
	"crypto/aes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

// Token format constants. The binary layout is
//
//	version(1) | timestamp(8, big endian) | IV(16) | ciphertext(16n) | tag(32)
//
// encoded as urlsafe base64, interoperable with the Fernet token format.
const (
	// tokenVersion is the Fernet version marker.
	tokenVersion = 0x80

	// rawKeySize is the decoded key size: 16-byte signing subkey followed
	// by a 16-byte encryption subkey.
	rawKeySize = 32

	// EncodedKeySize is the canonical key length: 32 raw bytes as padded
	// urlsafe base64.
	EncodedKeySize = 44

	// signKeySize and encKeySize are the subkey sizes.
	signKeySize = 16
	encKeySize  = 16

	// tagSize is the HMAC-SHA256 authentication tag size.
	tagSize = sha256.Size

	// headerSize is version + timestamp + IV.
	headerSize = 1 + 8 + aes.BlockSize

	// minTokenSize is the smallest valid decoded token: header, one
	// cipher block (empty plaintext still pads to a full block), tag.
	minTokenSize = headerSize + aes.BlockSize + tagSize
)

// tokenEncoding is the outer textual encoding of tokens and keys.
// Decoding is strict so that non-canonical trailing bits are rejected and
// any single-byte tampering of a token is caught.
var (
	tokenEncoding = base64.URLEncoding
	tokenDecoding = base64.URLEncoding.Strict()
)

// token is a parsed binary token. signed covers version through
// ciphertext, the exact range the tag authenticates.
type token struct {
	timestamp  uint64
	iv         []byte
	ciphertext []byte
	signed     []byte
	tag        []byte
}

// buildToken assembles the binary token, signs it with signKey and returns
// the urlsafe base64 encoding.
func buildToken(signKey []byte, timestamp uint64, iv, ciphertext []byte) []byte {
	raw := make([]byte, 0, headerSize+len(ciphertext)+tagSize)
	raw = append(raw, tokenVersion)
	raw = binary.BigEndian.AppendUint64(raw, timestamp)
	raw = append(raw, iv...)
	raw = append(raw, ciphertext...)

	mac := hmac.New(sha256.New, signKey)
	mac.Write(raw)
	raw = mac.Sum(raw)

	out := make([]byte, tokenEncoding.EncodedLen(len(raw)))
	tokenEncoding.Encode(out, raw)
	return out
}

// parseToken decodes and structurally validates a textual token. Tag
// verification is the caller's responsibility.
func parseToken(encoded []byte) (*token, error) {
	raw := make([]byte, tokenDecoding.DecodedLen(len(encoded)))
	n, err := tokenDecoding.Decode(raw, encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token encoding", ErrDecryptionFailed)
	}
	raw = raw[:n]

	if len(raw) < minTokenSize {
		return nil, fmt.Errorf("%w: token too short", ErrDecryptionFailed)
	}
	if raw[0] != tokenVersion {
		return nil, fmt.Errorf("%w: unknown token version %#x", ErrDecryptionFailed, raw[0])
	}

	ciphertext := raw[headerSize : len(raw)-tagSize]
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not block aligned", ErrDecryptionFailed)
	}

	return &token{
		timestamp:  binary.BigEndian.Uint64(raw[1:9]),
		iv:         raw[9:headerSize],
		ciphertext: ciphertext,
		signed:     raw[:len(raw)-tagSize],
		tag:        raw[len(raw)-tagSize:],
	}, nil
}

// pad applies PKCS#7 padding to a full cipher block, copying src.
func pad(src []byte) []byte {
	n := aes.BlockSize - len(src)%aes.BlockSize
	out := make([]byte, len(src)+n)
	copy(out, src)
	for i := len(src); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// unpad strips PKCS#7 padding in place.
func unpad(src []byte) ([]byte, error) {
	if len(src) == 0 || len(src)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: invalid padded length", ErrDecryptionFailed)
	}
	n := int(src[len(src)-1])
	if n == 0 || n > aes.BlockSize {
		return nil, fmt.Errorf("%w: invalid padding", ErrDecryptionFailed)
	}
	for _, b := range src[len(src)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: invalid padding", ErrDecryptionFailed)
		}
	}
	return src[:len(src)-n], nil
}
