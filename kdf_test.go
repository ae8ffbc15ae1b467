package crypter

import "testing"

func TestKeyFromPassword(t *testing.T) {
	password := []byte("correct horse battery staple")
	salt := []byte("per-project-salt")

	k1, err := KeyFromPassword(password, salt, 10_000)
	if err != nil {
		t.Fatalf("KeyFromPassword: %v", err)
	}
	k2, err := KeyFromPassword(password, salt, 10_000)
	if err != nil {
		t.Fatal(err)
	}
	if !k1.Equal(k2) {
		t.Error("derivation is not deterministic")
	}

	// Derived keys are canonical and usable by the engine.
	e, err := New(k1)
	if err != nil {
		t.Fatalf("New with derived key: %v", err)
	}
	token, err := e.Encrypt([]byte("payload"))
	if err != nil {
		t.Fatal(err)
	}
	if got, err := e.Decrypt(token); err != nil || string(got) != "payload" {
		t.Errorf("round trip with derived key: %q, %v", got, err)
	}
}

func TestKeyFromPasswordSaltSensitivity(t *testing.T) {
	password := []byte("hunter2")

	k1, err := KeyFromPassword(password, []byte("salt-a"), 1000)
	if err != nil {
		t.Fatal(err)
	}
	k2, err := KeyFromPassword(password, []byte("salt-b"), 1000)
	if err != nil {
		t.Fatal(err)
	}
	if k1.Equal(k2) {
		t.Error("different salts produced the same key")
	}

	k3, err := KeyFromPassword(password, []byte("salt-a"), 1001)
	if err != nil {
		t.Fatal(err)
	}
	if k1.Equal(k3) {
		t.Error("different iteration counts produced the same key")
	}
}

func TestKeyFromPasswordValidation(t *testing.T) {
	if _, err := KeyFromPassword([]byte("pw"), nil, 1000); err == nil {
		t.Error("expected error for empty salt")
	}
	if _, err := KeyFromPassword([]byte("pw"), []byte("salt"), 0); err == nil {
		t.Error("expected error for non-positive iteration count")
	}
}
