// Package common defines shared constants and sentinel errors used across
// DrivenPass layers. Callers should use errors.Is to match these values;
// additional context is attached by wrapping, e.g.
// fmt.Errorf("%w: title already in use", common.ErrConflict).
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	// Service-level errors (generic/internal flow control).
	ErrInternal           = errors.New("internal error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Cipher errors (ciphertext not produced by this cipher/key).
	ErrCrypto = errors.New("decryption failed")
)
