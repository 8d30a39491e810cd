package keystore

import (
	"bytes"
	"testing"
)

func TestSealUnsealRoundTrip(t *testing.T) {
	key, err := randomBytes(keyLength)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plaintext := []byte(`{"access_token":"tok-1"}`)
	nonce, ciphertext, err := seal(key, plaintext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytes.Contains(ciphertext, []byte("tok-1")) {
		t.Error("ciphertext leaks plaintext")
	}

	got, err := unseal(key, nonce, ciphertext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("round trip mismatch: %q", got)
	}
}

func TestUnsealRejectsWrongKey(t *testing.T) {
	key, _ := randomBytes(keyLength)
	other, _ := randomBytes(keyLength)

	nonce, ciphertext, err := seal(key, []byte("secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := unseal(other, nonce, ciphertext); err == nil {
		t.Error("expected an error with the wrong key")
	}
}

func TestUnsealRejectsTamperedCiphertext(t *testing.T) {
	key, _ := randomBytes(keyLength)
	nonce, ciphertext, err := seal(key, []byte("secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ciphertext[0] ^= 0xff
	if _, err := unseal(key, nonce, ciphertext); err == nil {
		t.Error("expected an error for tampered ciphertext")
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	salt, _ := randomBytes(saltLength)

	a := deriveKey("passphrase", salt)
	b := deriveKey("passphrase", salt)
	if !bytes.Equal(a, b) {
		t.Error("expected identical keys for identical inputs")
	}
	if len(a) != keyLength {
		t.Errorf("expected %d-byte key, got %d", keyLength, len(a))
	}

	c := deriveKey("other", salt)
	if bytes.Equal(a, c) {
		t.Error("expected different keys for different passphrases")
	}
}

func TestVerifierRoundTrip(t *testing.T) {
	verifier, err := hashPassphrase("correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	match, err := verifyPassphrase("correct horse", verifier)
	if err != nil || !match {
		t.Errorf("expected match, got %v (err=%v)", match, err)
	}
	match, err = verifyPassphrase("wrong", verifier)
	if err != nil || match {
		t.Errorf("expected mismatch, got %v (err=%v)", match, err)
	}
}

func TestChecksumStable(t *testing.T) {
	data := []byte("payload")
	if checksum(data) != checksum(data) {
		t.Error("expected stable checksum")
	}
	if checksum(data) == checksum([]byte("other")) {
		t.Error("expected different checksums for different data")
	}
	if len(checksum(data)) != 16 {
		t.Errorf("expected 16 hex chars, got %q", checksum(data))
	}
}
