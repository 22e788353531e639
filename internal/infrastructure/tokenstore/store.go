// Package tokenstore keeps the bearer token encrypted at rest. The token
// is the only durable state the module owns.
package tokenstore

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

type Store struct {
	path string
	key  [32]byte
}

// New derives the sealing key from the passphrase. The file lives at a
// fixed path, the secure-store equivalent of a fixed key name.
func New(path, passphrase string) (*Store, error) {
	if path == "" {
		return nil, errors.New("token store path is required")
	}
	if passphrase == "" {
		return nil, errors.New("token store passphrase is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create token store dir: %w", err)
	}
	return &Store{
		path: path,
		key:  sha256.Sum256([]byte(passphrase)),
	}, nil
}

func (s *Store) Save(token string) error {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(token), &nonce, &s.key)
	if err := os.WriteFile(s.path, sealed, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Load returns an empty string when no token has been stored yet.
func (s *Store) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	if len(raw) < nonceSize {
		return "", errors.New("token file is truncated")
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", errors.New("token file cannot be decrypted")
	}
	return string(plain), nil
}

// Clear forgets the stored token.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
