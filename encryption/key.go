package encryption

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultKeySize is the key length generated by [GenerateKey] when no
	// other length is requested.
	DefaultKeySize = 32

	// DefaultPBKDF2Iterations is the PBKDF2-SHA256 iteration count used by
	// [DeriveKey] and the default [PBKDF2KeyDeriver].
	DefaultPBKDF2Iterations = 10000

	// MinPBKDF2Iterations is this package's iteration floor.  It is
	// deliberately lower than the floor enforced by dedicated KDF tooling:
	// the two policies are distinct and must stay independently tunable.
	MinPBKDF2Iterations = 1000

	// MinPasswordLength is the shortest password accepted by the
	// key-derivation paths.
	MinPasswordLength = 8

	// MinSaltSize is the shortest salt accepted by [DeriveKey].
	MinSaltSize = 16
)

// GenerateKey returns length cryptographically random bytes, base64-encoded
// for transport.  length must be in [MinKeySize, MaxKeySize]; the default of
// 32 bytes yields a full-strength AES-256 key.
//
//	key, err := encryption.GenerateKey(32)
//	enc, err := encryption.NewAESGCM([]byte(key))
func GenerateKey(length int) (string, error) {
	if length < MinKeySize || length > MaxKeySize {
		return "", fmt.Errorf("%w: %d bytes must be in [%d, %d]",
			ErrInvalidKeyLength, length, MinKeySize, MaxKeySize)
	}
	key, err := randomBytes(length)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// DeriveKey derives a key from password and salt using PBKDF2-HMAC-SHA256
// and returns it base64-encoded.
//
// Constraints: password at least [MinPasswordLength] characters, salt at
// least [MinSaltSize] bytes, iterations at least [MinPBKDF2Iterations],
// length in [MinKeySize, MaxKeySize].
func DeriveKey(password string, salt []byte, iterations, length int) (string, error) {
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("%w: need at least %d characters", ErrPasswordTooShort, MinPasswordLength)
	}
	if len(salt) < MinSaltSize {
		return "", fmt.Errorf("%w: need at least %d bytes, got %d", ErrSaltTooShort, MinSaltSize, len(salt))
	}
	if iterations < MinPBKDF2Iterations {
		return "", fmt.Errorf("%w: %d is below the minimum of %d",
			ErrInvalidIterations, iterations, MinPBKDF2Iterations)
	}
	if length < MinKeySize || length > MaxKeySize {
		return "", fmt.Errorf("%w: %d bytes must be in [%d, %d]",
			ErrInvalidKeyLength, length, MinKeySize, MaxKeySize)
	}
	key := pbkdf2.Key([]byte(password), salt, iterations, length, sha256.New)
	return base64.StdEncoding.EncodeToString(key), nil
}

// PBKDF2KeyDeriver is the default [KeyDeriver]: PBKDF2-HMAC-SHA256 with a
// configurable iteration count.
type PBKDF2KeyDeriver struct {
	// Iterations is the PBKDF2 iteration count.
	// Minimum: [MinPBKDF2Iterations].  Default (zero value): [DefaultPBKDF2Iterations].
	Iterations int
}

// DeriveKey implements [KeyDeriver].
func (d PBKDF2KeyDeriver) DeriveKey(password string, salt []byte, length int) ([]byte, error) {
	iterations := d.Iterations
	if iterations == 0 {
		iterations = DefaultPBKDF2Iterations
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: need at least %d characters", ErrPasswordTooShort, MinPasswordLength)
	}
	if len(salt) < MinSaltSize {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrSaltTooShort, MinSaltSize, len(salt))
	}
	if iterations < MinPBKDF2Iterations {
		return nil, fmt.Errorf("%w: %d is below the minimum of %d",
			ErrInvalidIterations, iterations, MinPBKDF2Iterations)
	}
	if length < MinKeySize || length > MaxKeySize {
		return nil, fmt.Errorf("%w: %d bytes must be in [%d, %d]",
			ErrInvalidKeyLength, length, MinKeySize, MaxKeySize)
	}
	return pbkdf2.Key([]byte(password), salt, iterations, length, sha256.New), nil
}

// randomBytes returns n cryptographically random bytes from crypto/rand.
// It is used internally for key, nonce, and salt generation.
func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("encryption: failed to generate %d random bytes: %w", n, err)
	}
	return b, nil
}
