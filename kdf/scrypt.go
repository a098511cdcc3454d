package kdf

import (
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters. The block size and parallelism follow the values
// recommended by the scrypt paper for interactive logins.
const (
	// DefaultScryptN is the CPU/memory cost used when none is supplied.
	DefaultScryptN = 32768

	// MinScryptN is the lowest cost accepted.
	MinScryptN = 1024

	scryptR = 8
	scryptP = 1
)

// ScryptOptions configures a scrypt deriver. The zero value selects the
// defaults.
type ScryptOptions struct {
	// N is the CPU/memory cost parameter. It must be a power of two; zero
	// selects [DefaultScryptN].
	N int

	// AllowWeakPasswords disables the minimum-password-length check.
	AllowWeakPasswords bool
}

// ScryptDeriver implements [Deriver] using scrypt.
type ScryptDeriver struct {
	n         int
	allowWeak bool
}

// NewScryptDeriver builds a scrypt deriver.
func NewScryptDeriver(opts ScryptOptions) (*ScryptDeriver, error) {
	n := opts.N
	if n == 0 {
		n = DefaultScryptN
	}
	if n < MinScryptN {
		return nil, fmt.Errorf("%w: cost %d is below the minimum of %d", ErrInvalidOption, n, MinScryptN)
	}
	if n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: cost %d is not a power of two", ErrInvalidOption, n)
	}

	return &ScryptDeriver{n: n, allowWeak: opts.AllowWeakPasswords}, nil
}

// Derive implements [Deriver].
func (d *ScryptDeriver) Derive(password string, salt []byte, length int) ([]byte, error) {
	if err := validateInputs(password, salt, length, !d.allowWeak); err != nil {
		return nil, err
	}
	out, err := scrypt.Key([]byte(password), salt, d.n, scryptR, scryptP, length)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDerivationFailed, err)
	}
	return out, nil
}

// Algorithm implements [Deriver].
func (d *ScryptDeriver) Algorithm() Algorithm { return Scrypt }
