// Package cryptox implements the symmetric string cipher used to keep secret
// payloads encrypted at rest. Values are encrypted with AES-256-GCM under a
// single process-wide key derived from the configured secret.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/drivenpass/internal/common"
)

// Cipher encrypts and decrypts strings with a fixed key. It is safe for
// concurrent use; the key is read-only after construction.
type Cipher struct {
	aead cipher.AEAD
}

// New derives a 256-bit key from secret and returns a ready Cipher.
// An empty secret is rejected so that a misconfigured deployment fails at
// boot instead of on the first request.
func New(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, errors.New("cipher secret must not be empty")
	}

	key := sha256.Sum256([]byte(secret))
	defer common.WipeByteArray(key[:])

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("cipher init error: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cipher init error: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt encrypts plaintext and returns hex(nonce || ciphertext).
// A fresh random nonce is generated per call, so encrypting the same value
// twice yields different outputs.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce := common.GenerateRandByteArray(c.aead.NonceSize())
	ciphertext := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(ciphertext), nil
}

// Decrypt reverses Encrypt. Input that was not produced by this cipher and
// key (wrong key, truncated, tampered, not hex) fails with an error matching
// common.ErrCrypto.
func (c *Cipher) Decrypt(encrypted string) (string, error) {
	raw, err := hex.DecodeString(encrypted)
	if err != nil {
		return "", fmt.Errorf("%w: malformed ciphertext", common.ErrCrypto)
	}

	n := c.aead.NonceSize()
	if len(raw) < n {
		return "", fmt.Errorf("%w: ciphertext too short", common.ErrCrypto)
	}

	plaintext, err := c.aead.Open(nil, raw[:n], raw[n:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}

	return string(plaintext), nil
}
