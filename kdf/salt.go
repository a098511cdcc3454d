package kdf

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateSalt returns length cryptographically random bytes suitable for
// use as a derivation salt. length must be in [MinSaltSize, MaxSaltSize];
// use [DefaultSaltSize] when in doubt.
//
// The salt is not secret and should be stored alongside the derived key so
// the derivation can be repeated at verification time.
func GenerateSalt(length int) ([]byte, error) {
	if length < MinSaltSize || length > MaxSaltSize {
		return nil, fmt.Errorf("%w: %d is outside [%d, %d]", ErrInvalidSaltLength, length, MinSaltSize, MaxSaltSize)
	}
	salt := make([]byte, length)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("kdf: reading random salt: %w", err)
	}
	return salt, nil
}

// EncodeKey encodes derived key material as standard base64 for storage or
// transport.
func EncodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// DecodeKey reverses [EncodeKey].
func DecodeKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("kdf: decoding key: %w", err)
	}
	return key, nil
}
