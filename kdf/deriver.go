package kdf

import "fmt"

// Algorithm identifies a supported key derivation algorithm.
type Algorithm string

// Supported derivation algorithms.
const (
	PBKDF2SHA256 Algorithm = "pbkdf2_sha256"
	PBKDF2SHA512 Algorithm = "pbkdf2_sha512"
	Argon2i      Algorithm = "argon2i"
	Argon2id     Algorithm = "argon2id"
	Scrypt       Algorithm = "scrypt"
	HKDFSHA256   Algorithm = "hkdf_sha256"
)

// Input and output bounds shared by every deriver.
const (
	// MinPasswordLength is the shortest password accepted when password
	// validation is enabled (the default).
	MinPasswordLength = 8

	// MinSaltSize is the shortest salt accepted by any deriver.
	MinSaltSize = 16

	// MaxSaltSize is the longest salt [GenerateSalt] will produce.
	MaxSaltSize = 1024

	// DefaultSaltSize is the salt length used when no explicit size is
	// requested.
	DefaultSaltSize = 32

	// MinKeyLength and MaxKeyLength bound the derived key length in bytes.
	MinKeyLength = 16
	MaxKeyLength = 512
)

// Deriver derives cryptographic key material from a password and salt.
//
// Implementations are immutable after construction and safe for concurrent
// use.
type Deriver interface {
	// Derive stretches password with salt into length bytes of key
	// material. The same inputs always produce the same output.
	Derive(password string, salt []byte, length int) ([]byte, error)

	// Algorithm reports which algorithm this deriver implements.
	Algorithm() Algorithm
}

// validateInputs applies the bounds every deriver shares. Password length is
// only checked when validatePassword is true, so callers deriving from
// high-entropy machine secrets can opt out.
func validateInputs(password string, salt []byte, length int, validatePassword bool) error {
	if validatePassword && len(password) < MinPasswordLength {
		return fmt.Errorf("%w: got %d characters, need at least %d", ErrPasswordTooShort, len(password), MinPasswordLength)
	}
	if len(salt) < MinSaltSize {
		return fmt.Errorf("%w: got %d bytes, need at least %d", ErrSaltTooShort, len(salt), MinSaltSize)
	}
	if length < MinKeyLength || length > MaxKeyLength {
		return fmt.Errorf("%w: %d is outside [%d, %d]", ErrInvalidKeyLength, length, MinKeyLength, MaxKeyLength)
	}
	return nil
}
