package keystore

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/alexedwards/argon2id"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// KDF parameters follow the OWASP minimum for Argon2id:
// 47 MiB memory, 1 iteration, 1 lane.
const (
	kdfMemory      = 47 * 1024
	kdfIterations  = 1
	kdfParallelism = 1
	saltLength     = 16
	keyLength      = chacha20poly1305.KeySize
)

// verifierParams are used for the stored passphrase verifier hash.
var verifierParams = &argon2id.Params{
	Memory:      kdfMemory,
	Iterations:  kdfIterations,
	Parallelism: kdfParallelism,
	SaltLength:  saltLength,
	KeyLength:   keyLength,
}

// randomBytes returns n cryptographically random bytes.
func randomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return buf, nil
}

// deriveKey derives the file encryption key from a passphrase and salt.
func deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, kdfIterations, kdfMemory, kdfParallelism, keyLength)
}

// hashPassphrase returns a PHC-format Argon2id verifier for the passphrase.
// The verifier lets Open distinguish a wrong passphrase from a corrupted
// file before attempting decryption.
func hashPassphrase(passphrase string) (string, error) {
	return argon2id.CreateHash(passphrase, verifierParams)
}

// verifyPassphrase checks a passphrase against the stored verifier.
func verifyPassphrase(passphrase, verifier string) (bool, error) {
	return argon2id.ComparePasswordAndHash(passphrase, verifier)
}

// seal encrypts plaintext with XChaCha20-Poly1305 under a fresh nonce.
func seal(key, plaintext []byte) (nonce, ciphertext []byte, err error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, nil, fmt.Errorf("create cipher: %w", err)
	}
	nonce, err = randomBytes(aead.NonceSize())
	if err != nil {
		return nil, nil, err
	}
	return nonce, aead.Seal(nil, nonce, plaintext, nil), nil
}

// unseal decrypts ciphertext. Fails when the key is wrong or the
// ciphertext was modified.
func unseal(key, nonce, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("open ciphertext: %w", err)
	}
	return plaintext, nil
}

// checksum returns a fast content hash used to detect file corruption
// before decryption is attempted.
func checksum(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
