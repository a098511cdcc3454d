package kdf

import "errors"

// Sentinel errors returned by derivation operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := m.Derive(password, salt, 32)
//	if errors.Is(err, kdf.ErrPasswordTooShort) { ... }
var (
	// ErrPasswordTooShort is returned when a password shorter than
	// [MinPasswordLength] is supplied and password validation is enabled.
	ErrPasswordTooShort = errors.New("kdf: password too short")

	// ErrSaltTooShort is returned when a salt shorter than [MinSaltSize]
	// is supplied to a deriver.
	ErrSaltTooShort = errors.New("kdf: salt too short")

	// ErrInvalidKeyLength is returned when a requested output length falls
	// outside [MinKeyLength, MaxKeyLength].
	ErrInvalidKeyLength = errors.New("kdf: invalid key length")

	// ErrInvalidSaltLength is returned by [GenerateSalt] when the requested
	// length falls outside [MinSaltSize, MaxSaltSize].
	ErrInvalidSaltLength = errors.New("kdf: invalid salt length")

	// ErrInvalidOption is returned when a constructor is called with a
	// parameter outside its allowed range (e.g. a PBKDF2 iteration count
	// below the floor, or a non-power-of-two scrypt cost).
	ErrInvalidOption = errors.New("kdf: invalid option value")

	// ErrUnsupportedAlgorithm is returned when an algorithm name is not
	// recognised or not registered with the [Manager] in use.
	ErrUnsupportedAlgorithm = errors.New("kdf: unsupported algorithm")

	// ErrEmptyAlgorithm is returned by [Manager.RegisterDriver] when the
	// supplied algorithm name is empty.
	ErrEmptyAlgorithm = errors.New("kdf: algorithm name must not be empty")

	// ErrNilDeriver is returned by [Manager.RegisterDriver] when a nil
	// [Deriver] is supplied.
	ErrNilDeriver = errors.New("kdf: deriver must not be nil")

	// ErrDerivationFailed is returned when the underlying primitive reports
	// a failure for reasons other than input validation.
	ErrDerivationFailed = errors.New("kdf: derivation failed")

	// ErrNoPurposes is returned by [DeriveMultipleKeys] when no purpose
	// labels are supplied.
	ErrNoPurposes = errors.New("kdf: at least one purpose is required")
)
