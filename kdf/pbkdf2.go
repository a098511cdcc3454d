package kdf

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 cost parameters.
const (
	// DefaultPBKDF2Iterations is the iteration count used when none is
	// supplied. It tracks current OWASP guidance for SHA-256.
	DefaultPBKDF2Iterations = 100000

	// MinPBKDF2Iterations is the lowest iteration count a deriver will
	// accept. Counts below this are trivially brute-forceable on modern
	// hardware.
	MinPBKDF2Iterations = 10000
)

// PBKDF2Options configures a PBKDF2 deriver. The zero value selects the
// defaults.
type PBKDF2Options struct {
	// Iterations is the PBKDF2 iteration count. Zero selects
	// [DefaultPBKDF2Iterations]; values below [MinPBKDF2Iterations] are
	// rejected.
	Iterations int

	// AllowWeakPasswords disables the minimum-password-length check.
	AllowWeakPasswords bool
}

// PBKDF2Deriver implements [Deriver] using PBKDF2 with a SHA-2 PRF.
type PBKDF2Deriver struct {
	algorithm  Algorithm
	iterations int
	newHash    func() hash.Hash
	allowWeak  bool
}

// NewPBKDF2Deriver builds a PBKDF2 deriver for the given variant, which must
// be [PBKDF2SHA256] or [PBKDF2SHA512].
func NewPBKDF2Deriver(variant Algorithm, opts PBKDF2Options) (*PBKDF2Deriver, error) {
	var newHash func() hash.Hash
	switch variant {
	case PBKDF2SHA256:
		newHash = sha256.New
	case PBKDF2SHA512:
		newHash = sha512.New
	default:
		return nil, fmt.Errorf("%w: %q is not a PBKDF2 variant", ErrUnsupportedAlgorithm, variant)
	}

	iterations := opts.Iterations
	if iterations == 0 {
		iterations = DefaultPBKDF2Iterations
	}
	if iterations < MinPBKDF2Iterations {
		return nil, fmt.Errorf("%w: %d iterations is below the minimum of %d", ErrInvalidOption, iterations, MinPBKDF2Iterations)
	}

	return &PBKDF2Deriver{
		algorithm:  variant,
		iterations: iterations,
		newHash:    newHash,
		allowWeak:  opts.AllowWeakPasswords,
	}, nil
}

// Derive implements [Deriver].
func (d *PBKDF2Deriver) Derive(password string, salt []byte, length int) ([]byte, error) {
	if err := validateInputs(password, salt, length, !d.allowWeak); err != nil {
		return nil, err
	}
	return pbkdf2.Key([]byte(password), salt, d.iterations, length, d.newHash), nil
}

// Algorithm implements [Deriver].
func (d *PBKDF2Deriver) Algorithm() Algorithm { return d.algorithm }

// Iterations reports the configured iteration count.
func (d *PBKDF2Deriver) Iterations() int { return d.iterations }
