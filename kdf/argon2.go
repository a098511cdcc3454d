package kdf

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

// Argon2 cost parameters.
const (
	// DefaultArgon2Memory is the memory cost in KiB used when none is
	// supplied (64 MiB).
	DefaultArgon2Memory = 64 * 1024

	// MinArgon2Memory is the lowest memory cost accepted, in KiB.
	MinArgon2Memory = 1024

	// DefaultArgon2Time is the number of passes used when none is supplied.
	DefaultArgon2Time = 3

	// MinArgon2Time is the lowest pass count accepted.
	MinArgon2Time = 2

	// DefaultArgon2Threads is the parallelism used when none is supplied.
	DefaultArgon2Threads = 2

	// argon2KeySize is the raw Argon2 output size before expansion.
	argon2KeySize = 32
)

// Argon2Options configures an Argon2 deriver. The zero value selects the
// defaults.
type Argon2Options struct {
	// Memory is the memory cost in KiB. Zero selects [DefaultArgon2Memory];
	// values below [MinArgon2Memory] are rejected.
	Memory uint32

	// Time is the number of passes over memory. Zero selects
	// [DefaultArgon2Time]; values below [MinArgon2Time] are rejected.
	Time uint32

	// Threads is the degree of parallelism. Zero selects
	// [DefaultArgon2Threads].
	Threads uint8

	// AllowWeakPasswords disables the minimum-password-length check.
	AllowWeakPasswords bool
}

// Argon2Deriver implements [Deriver] using Argon2i or Argon2id. The raw
// 32-byte Argon2 output is expanded with HKDF-SHA256 so any length in
// [MinKeyLength, MaxKeyLength] can be served with stable cost parameters.
type Argon2Deriver struct {
	algorithm Algorithm
	memory    uint32
	time      uint32
	threads   uint8
	allowWeak bool
}

// NewArgon2Deriver builds an Argon2 deriver for the given variant, which must
// be [Argon2i] or [Argon2id].
func NewArgon2Deriver(variant Algorithm, opts Argon2Options) (*Argon2Deriver, error) {
	if variant != Argon2i && variant != Argon2id {
		return nil, fmt.Errorf("%w: %q is not an Argon2 variant", ErrUnsupportedAlgorithm, variant)
	}

	memory := opts.Memory
	if memory == 0 {
		memory = DefaultArgon2Memory
	}
	if memory < MinArgon2Memory {
		return nil, fmt.Errorf("%w: memory cost %d KiB is below the minimum of %d KiB", ErrInvalidOption, memory, MinArgon2Memory)
	}

	time := opts.Time
	if time == 0 {
		time = DefaultArgon2Time
	}
	if time < MinArgon2Time {
		return nil, fmt.Errorf("%w: time cost %d is below the minimum of %d", ErrInvalidOption, time, MinArgon2Time)
	}

	threads := opts.Threads
	if threads == 0 {
		threads = DefaultArgon2Threads
	}

	return &Argon2Deriver{
		algorithm: variant,
		memory:    memory,
		time:      time,
		threads:   threads,
		allowWeak: opts.AllowWeakPasswords,
	}, nil
}

// Derive implements [Deriver].
func (d *Argon2Deriver) Derive(password string, salt []byte, length int) ([]byte, error) {
	if err := validateInputs(password, salt, length, !d.allowWeak); err != nil {
		return nil, err
	}

	var raw []byte
	switch d.algorithm {
	case Argon2id:
		raw = argon2.IDKey([]byte(password), salt, d.time, d.memory, d.threads, argon2KeySize)
	default:
		raw = argon2.Key([]byte(password), salt, d.time, d.memory, d.threads, argon2KeySize)
	}

	// Expansion keeps the Argon2 invocation identical regardless of the
	// requested output length, so rotating length never changes cost.
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.New(sha256.New, raw, salt, nil), out); err != nil {
		return nil, fmt.Errorf("%w: expanding argon2 output: %w", ErrDerivationFailed, err)
	}
	return out, nil
}

// Algorithm implements [Deriver].
func (d *Argon2Deriver) Algorithm() Algorithm { return d.algorithm }
