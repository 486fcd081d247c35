package tokenstore

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/castmate/castmate-client/internal/core/ports"
)

// ErrSealedTokenInvalid is returned when a stored token cannot be opened,
// typically after the seal key changed.
var ErrSealedTokenInvalid = errors.New("stored token cannot be decrypted")

// Sealed encrypts tokens with XChaCha20-Poly1305 before handing them to the
// wrapped store. Values are base64(nonce || ciphertext).
type Sealed struct {
	next ports.TokenStore
	key  [chacha20poly1305.KeySize]byte
}

// NewSealed derives a 256-bit key from secret with SHA-256.
func NewSealed(next ports.TokenStore, secret string) (*Sealed, error) {
	if secret == "" {
		return nil, fmt.Errorf("seal key is empty")
	}
	return &Sealed{next: next, key: sha256.Sum256([]byte(secret))}, nil
}

func (s *Sealed) Get(ctx context.Context) (string, error) {
	stored, err := s.next.Get(ctx)
	if err != nil {
		return "", err
	}
	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return "", ErrSealedTokenInvalid
	}
	aead, err := chacha20poly1305.NewX(s.key[:])
	if err != nil {
		return "", err
	}
	if len(raw) < aead.NonceSize() {
		return "", ErrSealedTokenInvalid
	}
	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrSealedTokenInvalid
	}
	return string(plain), nil
}

func (s *Sealed) Set(ctx context.Context, token string) error {
	aead, err := chacha20poly1305.NewX(s.key[:])
	if err != nil {
		return err
	}
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(token)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("seal token: %w", err)
	}
	sealed := aead.Seal(nonce, nonce, []byte(token), nil)
	return s.next.Set(ctx, base64.StdEncoding.EncodeToString(sealed))
}

func (s *Sealed) Clear(ctx context.Context) error {
	return s.next.Clear(ctx)
}

var _ ports.TokenStore = (*Sealed)(nil)
