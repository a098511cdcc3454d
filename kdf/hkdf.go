package kdf

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// HKDFOptions configures an HKDF deriver. The zero value selects the
// defaults.
type HKDFOptions struct {
	// Info is the optional HKDF context string. Distinct info values yield
	// independent keys from the same secret and salt.
	Info []byte

	// AllowWeakPasswords disables the minimum-secret-length check. HKDF is
	// not a password hash, so this is commonly set when the input is
	// already uniform key material.
	AllowWeakPasswords bool
}

// HKDFDeriver implements [Deriver] using HKDF-SHA256.
//
// HKDF expands existing high-entropy secrets; it does not stretch weak
// passwords. Use [Argon2Deriver] or [PBKDF2Deriver] for human-chosen
// passwords.
type HKDFDeriver struct {
	info      []byte
	allowWeak bool
}

// NewHKDFDeriver builds an HKDF-SHA256 deriver.
func NewHKDFDeriver(opts HKDFOptions) (*HKDFDeriver, error) {
	info := make([]byte, len(opts.Info))
	copy(info, opts.Info)
	return &HKDFDeriver{info: info, allowWeak: opts.AllowWeakPasswords}, nil
}

// Derive implements [Deriver].
func (d *HKDFDeriver) Derive(password string, salt []byte, length int) ([]byte, error) {
	if err := validateInputs(password, salt, length, !d.allowWeak); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(password), salt, d.info), out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDerivationFailed, err)
	}
	return out, nil
}

// Algorithm implements [Deriver].
func (d *HKDFDeriver) Algorithm() Algorithm { return HKDFSHA256 }
