// Package keystore persists named string secrets in a single encrypted,
// app-scoped file. It stands in for a platform keychain: secrets are
// sealed with XChaCha20-Poly1305, the file is written atomically
// (write-tmp-then-rename) under an exclusive lock, and permissions are
// kept at 0600.
//
// The encryption key comes from one of two places: a random key stored
// next to the secrets file (default, machine-local protection), or an
// Argon2id-derived key when a passphrase is supplied.
package keystore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// Secrets file format version.
const formatVersion = 1

// Key derivation modes recorded in the file header.
const (
	kdfKeyFile    = "keyfile"
	kdfPassphrase = "passphrase"
)

var (
	// ErrCorrupted is returned when the secrets file fails its checksum or
	// cannot be decrypted with the correct key.
	ErrCorrupted = errors.New("keystore file corrupted")

	// ErrWrongPassphrase is returned when the supplied passphrase does not
	// match the stored verifier.
	ErrWrongPassphrase = errors.New("wrong passphrase")

	// ErrPassphraseRequired is returned when the file is
	// passphrase-protected and none was supplied.
	ErrPassphraseRequired = errors.New("passphrase required")
)

// fileEnvelope is the on-disk JSON container around the sealed secrets.
type fileEnvelope struct {
	Version  int    `json:"version"`
	KDF      string `json:"kdf"`
	Salt     []byte `json:"salt"`
	Verifier string `json:"verifier,omitempty"`
	Nonce    []byte `json:"nonce"`
	Data     []byte `json:"data"`
	Checksum string `json:"checksum"`
}

// Store is an encrypted credential store. Safe for concurrent use. Every
// mutation writes through to disk before returning.
type Store struct {
	path   string
	logger *slog.Logger

	mu       sync.Mutex
	key      []byte
	salt     []byte
	kdf      string
	verifier string
	secrets  map[string]string
}

type openConfig struct {
	passphrase string
	logger     *slog.Logger
}

// Option configures Open.
type Option func(*openConfig)

// WithPassphrase protects the store with a passphrase instead of a local
// key file. Opening an existing passphrase-protected store without the
// matching passphrase fails.
func WithPassphrase(passphrase string) Option {
	return func(c *openConfig) {
		c.passphrase = passphrase
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *openConfig) {
		c.logger = logger
	}
}

// Open loads the secrets file at path, creating and initializing it (and
// its parent directory) when absent.
func Open(path string, opts ...Option) (*Store, error) {
	cfg := openConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Store{
		path:   path,
		logger: cfg.logger,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := s.initialize(cfg.passphrase); err != nil {
				return nil, err
			}
			return s, nil
		}
		return nil, fmt.Errorf("read keystore: %w", err)
	}

	s.warnOnOpenPermissions()

	var env fileEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if env.Version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupted, env.Version)
	}
	if checksum(env.Data) != env.Checksum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorrupted)
	}

	key, err := s.resolveKey(&env, cfg.passphrase)
	if err != nil {
		return nil, err
	}

	plaintext, err := unseal(key, env.Nonce, env.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	secrets := make(map[string]string)
	if err := json.Unmarshal(plaintext, &secrets); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	s.key = key
	s.salt = env.Salt
	s.kdf = env.KDF
	s.verifier = env.Verifier
	s.secrets = secrets
	return s, nil
}

// Get returns the named secret; ok is false when it is absent.
func (s *Store) Get(name string) (value string, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok = s.secrets[name]
	return value, ok, nil
}

// Set stores the named secret and writes the file through immediately.
func (s *Store) Set(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secrets[name] = value
	return s.saveLocked()
}

// Delete removes the named secret. Deleting an absent secret is a no-op
// that still succeeds.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.secrets[name]; !ok {
		return nil
	}
	delete(s.secrets, name)
	return s.saveLocked()
}

// Names returns the names of all stored secrets.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.secrets))
	for name := range s.secrets {
		names = append(names, name)
	}
	return names
}

// initialize sets up a brand-new store: fresh salt, fresh key (random or
// passphrase-derived), empty secret set, and an initial file on disk.
func (s *Store) initialize(passphrase string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create keystore directory: %w", err)
	}

	salt, err := randomBytes(saltLength)
	if err != nil {
		return err
	}
	s.salt = salt
	s.secrets = make(map[string]string)

	if passphrase != "" {
		verifier, err := hashPassphrase(passphrase)
		if err != nil {
			return fmt.Errorf("hash passphrase: %w", err)
		}
		s.kdf = kdfPassphrase
		s.verifier = verifier
		s.key = deriveKey(passphrase, salt)
	} else {
		key, err := randomBytes(keyLength)
		if err != nil {
			return err
		}
		s.kdf = kdfKeyFile
		s.key = key
		if err := os.WriteFile(s.keyFilePath(), []byte(fmt.Sprintf("%x\n", key)), 0600); err != nil {
			return fmt.Errorf("write key file: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// resolveKey recovers the encryption key for an existing file.
func (s *Store) resolveKey(env *fileEnvelope, passphrase string) ([]byte, error) {
	switch env.KDF {
	case kdfPassphrase:
		if passphrase == "" {
			return nil, ErrPassphraseRequired
		}
		match, err := verifyPassphrase(passphrase, env.Verifier)
		if err != nil {
			return nil, fmt.Errorf("%w: bad verifier: %v", ErrCorrupted, err)
		}
		if !match {
			return nil, ErrWrongPassphrase
		}
		return deriveKey(passphrase, env.Salt), nil

	case kdfKeyFile:
		raw, err := os.ReadFile(s.keyFilePath())
		if err != nil {
			return nil, fmt.Errorf("read key file: %w", err)
		}
		var key []byte
		if _, err := fmt.Sscanf(string(raw), "%x", &key); err != nil || len(key) != keyLength {
			return nil, fmt.Errorf("%w: malformed key file", ErrCorrupted)
		}
		return key, nil

	default:
		return nil, fmt.Errorf("%w: unknown kdf %q", ErrCorrupted, env.KDF)
	}
}

// saveLocked seals the secret set and writes the file atomically.
//
// The write sequence is:
//  1. Acquire flock on path+".lock"
//  2. Seal secrets under a fresh nonce
//  3. Write to path+".tmp" with 0600 permissions
//  4. Fsync the temp file
//  5. Rename path+".tmp" -> path
//  6. Release flock
//
// Callers must hold s.mu.
func (s *Store) saveLocked() error {
	plaintext, err := json.Marshal(s.secrets)
	if err != nil {
		return fmt.Errorf("marshal secrets: %w", err)
	}

	nonce, ciphertext, err := seal(s.key, plaintext)
	if err != nil {
		return err
	}

	env := fileEnvelope{
		Version:  formatVersion,
		KDF:      s.kdf,
		Salt:     s.salt,
		Verifier: s.verifier,
		Nonce:    nonce,
		Data:     ciphertext,
		Checksum: checksum(ciphertext),
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	data = append(data, '\n')

	lockPath := s.path + ".lock"
	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer func() { _ = lockFile.Close() }()

	if err := flockLock(lockFile.Fd()); err != nil {
		return fmt.Errorf("acquire file lock: %w", err)
	}
	defer flockUnlock(lockFile.Fd()) //nolint:errcheck

	if err := s.writeAtomic(data); err != nil {
		return err
	}

	if err := os.Chmod(s.path, 0600); err != nil {
		s.logger.Warn("failed to set permissions on keystore file", "error", err)
	}

	s.logger.Debug("keystore saved", "path", s.path, "secrets", len(s.secrets))
	return nil
}

// writeAtomic writes data to a temp file, fsyncs it, and renames it over
// the target path. On any error the temp file is cleaned up.
func (s *Store) writeAtomic(data []byte) error {
	tmpPath := s.path + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	cleanup := func() {
		_ = f.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := f.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("fsync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// warnOnOpenPermissions logs when an existing secrets file is readable by
// group or other. Skipped on Windows where Unix permission bits are not
// supported.
func (s *Store) warnOnOpenPermissions() {
	if runtime.GOOS == "windows" {
		return
	}
	info, err := os.Stat(s.path)
	if err != nil {
		return
	}
	mode := info.Mode().Perm()
	if mode&0077 != 0 {
		s.logger.Warn("keystore file has too-open permissions, should be 0600",
			"path", s.path, "current_mode", fmt.Sprintf("%04o", mode))
	}
}

func (s *Store) keyFilePath() string {
	return s.path + ".key"
}
