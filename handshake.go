package crypter

import (
	"crypto/subtle"

	"go.uber.org/zap"
)

// Handshake checks that the candidate token proves knowledge of the bound
// key: the peer encrypted its own canonical key under that key, so only a
// party holding the identical key can decrypt it to matching bytes. The
// raw key never crosses the wire.
//
// Handshake is a total probe: wrong keys, tampering, and malformed input
// are swallowed and reported as false. It is stateless and single-shot,
// safe to retry.
func (e *Engine) Handshake(candidate []byte) bool {
	plaintext, err := e.decrypt(candidate, 0)
	if err != nil {
		e.logger.Debug("handshake probe rejected", zap.Error(err))
		recordOp(handshakeOps, err)
		return false
	}
	ok := subtle.ConstantTimeCompare(plaintext, e.key.encoded) == 1
	recordOp(handshakeOps, nil)
	return ok
}

// HandshakeToken builds the challenge this engine's peers verify: the
// engine's own canonical key, encrypted under itself.
func (e *Engine) HandshakeToken() ([]byte, error) {
	return e.Encrypt(e.key.Encoded())
}
