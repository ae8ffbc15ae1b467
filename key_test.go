package crypter

import (
	"bytes"
	"encoding/base64"
	"io"
	"strings"
	"testing"
)

func TestParseKey(t *testing.T) {
	key := testKey(t)

	parsed, err := ParseKey(key.Encoded())
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	if !parsed.Equal(key) {
		t.Error("parsed key differs from original")
	}
}

func TestParseKeyCopiesInput(t *testing.T) {
	encoded := testKey(t).Encoded()
	key, err := ParseKey(encoded)
	if err != nil {
		t.Fatal(err)
	}

	for i := range encoded {
		encoded[i] = 0
	}
	if bytes.Equal(key.Encoded(), encoded) {
		t.Error("key shares memory with caller input")
	}
}

func TestParseKeyRejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, 1, 43, 45, 64} {
		_, err := ParseKey([]byte(strings.Repeat("A", n)))
		if !IsInvalidKey(err) {
			t.Errorf("length %d: expected ErrInvalidKey, got %v", n, err)
		}
	}
}

func TestParseKeyRejectsInvalidEncoding(t *testing.T) {
	for name, encoded := range map[string]string{
		"invalid characters": strings.Repeat("*", EncodedKeySize),
		"standard alphabet":  strings.Repeat("+", EncodedKeySize),
		"short raw value":    strings.Repeat("A", EncodedKeySize-2) + "==",
		"long raw value":     strings.Repeat("A", EncodedKeySize),
	} {
		if _, err := ParseKey([]byte(encoded)); !IsInvalidKey(err) {
			t.Errorf("%s: expected ErrInvalidKey, got %v", name, err)
		}
	}
}

func TestGenerateKey(t *testing.T) {
	k1, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	encoded := k1.Encoded()
	if len(encoded) != EncodedKeySize {
		t.Fatalf("encoded length: got %d, want %d", len(encoded), EncodedKeySize)
	}
	if _, err := ParseKey(encoded); err != nil {
		t.Fatalf("generated key not canonical: %v", err)
	}

	k2, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	if k1.Equal(k2) {
		t.Error("two generated keys are identical")
	}
}

func TestRotateKeyDiffersFromAvoided(t *testing.T) {
	key := testKey(t)

	for i := 0; i < 10; i++ {
		rotated, err := RotateKey(key)
		if err != nil {
			t.Fatalf("RotateKey: %v", err)
		}
		if rotated.Equal(key) {
			t.Fatal("RotateKey returned the avoided key")
		}
	}
}

func TestRotateKeyZeroConstraint(t *testing.T) {
	rotated, err := RotateKey(Key{})
	if err != nil {
		t.Fatalf("RotateKey: %v", err)
	}
	if rotated.IsZero() {
		t.Error("RotateKey returned the absence sentinel")
	}
}

// scriptedReader replays fixed outputs before falling through to the real
// entropy source.
type scriptedReader struct {
	outputs  [][]byte
	fallback io.Reader
}

func (r *scriptedReader) Read(p []byte) (int, error) {
	if len(r.outputs) > 0 {
		out := r.outputs[0]
		r.outputs = r.outputs[1:]
		return copy(p, out), nil
	}
	return r.fallback.Read(p)
}

func TestRotateKeyRetriesOnCollision(t *testing.T) {
	collide := bytes.Repeat([]byte{0x07}, rawKeySize)
	fresh := bytes.Repeat([]byte{0x08}, rawKeySize)

	avoid, err := ParseKey([]byte(base64.URLEncoding.EncodeToString(collide)))
	if err != nil {
		t.Fatal(err)
	}
	want, err := ParseKey([]byte(base64.URLEncoding.EncodeToString(fresh)))
	if err != nil {
		t.Fatal(err)
	}

	orig := randReader
	defer func() { randReader = orig }()
	randReader = &scriptedReader{
		outputs:  [][]byte{bytes.Clone(collide), bytes.Clone(fresh)},
		fallback: orig,
	}

	rotated, err := RotateKey(avoid)
	if err != nil {
		t.Fatalf("RotateKey: %v", err)
	}
	if rotated.Equal(avoid) {
		t.Fatal("RotateKey accepted the colliding draw")
	}
	if !rotated.Equal(want) {
		t.Error("RotateKey skipped past the second draw")
	}
}

func TestKeyZeroValue(t *testing.T) {
	var zero Key

	if !zero.IsZero() {
		t.Error("zero key should report IsZero")
	}
	if zero.Encoded() != nil {
		t.Error("zero key should have nil encoding")
	}
	if !zero.Equal(Key{}) {
		t.Error("two absent keys should be equal")
	}
	if zero.Equal(testKey(t)) {
		t.Error("absent key should not equal real key material")
	}
}

func TestKeyStringRedacts(t *testing.T) {
	key := testKey(t)

	s := key.String()
	if strings.Contains(s, string(key.Encoded())) {
		t.Error("String exposes key material")
	}
	if (Key{}).String() == s {
		t.Error("absent and present keys should stringify differently")
	}
}
