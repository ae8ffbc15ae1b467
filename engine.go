package crypter

import (
	"github.com/awnumar/memguard"
	"go.uber.org/zap"
)

// Engine is the active cipher, bound to exactly one key for its lifetime.
// It carries no per-call state; every operation is a pure function of the
// bound key and its input, so one Engine may be shared freely across
// goroutines.
type Engine struct {
	key     Key
	signKey []byte
	encKey  []byte
	logger  *zap.Logger
}

// Compile-time interface check.
var _ Crypter = (*Engine)(nil)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used to record swallowed handshake failures
// at debug level. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Engine bound to the given key. It fails with
// ErrInvalidKey when the key is absent or not canonically encoded.
func New(key Key, opts ...Option) (*Engine, error) {
	sign, enc, err := key.subkeys()
	if err != nil {
		return nil, err
	}
	e := &Engine{
		key:     key,
		signKey: sign,
		encKey:  enc,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// NewFromEncoded creates an Engine directly from a key in canonical
// encoding, e.g. as loaded from a project's configuration store.
func NewFromEncoded(encoded []byte, opts ...Option) (*Engine, error) {
	key, err := ParseKey(encoded)
	if err != nil {
		return nil, err
	}
	return New(key, opts...)
}

// Key returns the bound key.
func (e *Engine) Key() Key {
	return e.key
}

// Disabled reports false; an Engine always holds real key material.
func (e *Engine) Disabled() bool {
	return false
}

// Destroy wipes the decoded subkeys. It is optional hygiene for callers
// that want key material gone before garbage collection; the Engine must
// not be used afterwards.
func (e *Engine) Destroy() {
	memguard.WipeBytes(e.signKey)
	memguard.WipeBytes(e.encKey)
}
