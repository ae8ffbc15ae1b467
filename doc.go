// Package crypter provides an optional confidentiality and integrity layer
// for opaque artifact payloads, plus a challenge-response handshake that
// lets two parties verify they hold the same symmetric key without ever
// transmitting it.
//
// The active cipher produces Fernet tokens: version marker, creation
// timestamp, random IV, AES-128-CBC ciphertext and an HMAC-SHA256 tag,
// encoded as urlsafe base64. Tokens are interchangeable with other Fernet
// implementations using the same 44-byte canonical key encoding.
//
// When encryption is turned off for an artifact, the Disabled singleton
// satisfies the same Crypter contract with identity transforms, so call
// sites handle both variants uniformly.
//
// The package neither reads nor writes files or network resources; callers
// own key persistence and payload transport. All types are immutable after
// construction and safe for unrestricted concurrent use.
package crypter
