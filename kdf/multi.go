package kdf

import (
	"crypto/sha256"
	"fmt"
)

// DeriveMultipleKeys derives one independent key per purpose label from a
// single password. Each purpose gets its own salt, computed as
// SHA-256(salt || purpose), so keys for different purposes cannot be
// substituted for one another even though they share a master password.
//
// Typical purposes are "encryption", "signing", "storage". The purpose list
// must be non-empty and every label must be non-empty and unique.
func DeriveMultipleKeys(d Deriver, password string, salt []byte, length int, purposes []string) (map[string][]byte, error) {
	if d == nil {
		return nil, ErrNilDeriver
	}
	if len(purposes) == 0 {
		return nil, ErrNoPurposes
	}

	keys := make(map[string][]byte, len(purposes))
	for _, purpose := range purposes {
		if purpose == "" {
			return nil, fmt.Errorf("%w: purpose label must not be empty", ErrNoPurposes)
		}
		if _, dup := keys[purpose]; dup {
			return nil, fmt.Errorf("%w: duplicate purpose %q", ErrNoPurposes, purpose)
		}

		h := sha256.New()
		h.Write(salt)
		h.Write([]byte(purpose))
		purposeSalt := h.Sum(nil)

		key, err := d.Derive(password, purposeSalt, length)
		if err != nil {
			return nil, fmt.Errorf("kdf: deriving key for purpose %q: %w", purpose, err)
		}
		keys[purpose] = key
	}
	return keys, nil
}
