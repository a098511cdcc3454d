package encryption

import "errors"

// Sentinel errors returned by encryption operations.
//
// Callers should use errors.Is for comparisons:
//
//	_, err := enc.Decrypt(envelope)
//	if errors.Is(err, encryption.ErrAuthenticationFailed) {
//	    // envelope was tampered with, corrupted, or encrypted with another key
//	}
var (
	// ErrEmptyValue is returned when a nil or zero-length plaintext is
	// passed to Encrypt.
	ErrEmptyValue = errors.New("encryption: value must not be empty")

	// ErrValueTooLarge is returned when the plaintext exceeds [MaxValueSize].
	ErrValueTooLarge = errors.New("encryption: value exceeds maximum size")

	// ErrEmptyKey is returned when a nil or zero-length key is provided.
	ErrEmptyKey = errors.New("encryption: key must not be empty")

	// ErrInvalidKeyLength is returned when a key (after optional base64
	// decoding) falls outside the accepted [MinKeySize, MaxKeySize] range,
	// or when a requested key length is out of bounds.
	ErrInvalidKeyLength = errors.New("encryption: invalid key length")

	// ErrInvalidTagSize is returned when the configured authentication tag
	// size falls outside [MinTagSize, MaxTagSize].
	ErrInvalidTagSize = errors.New("encryption: invalid authentication tag size")

	// ErrInvalidEncoding is returned when an unrecognised envelope encoding
	// is configured.
	ErrInvalidEncoding = errors.New("encryption: invalid encoding")

	// ErrInvalidEnvelope is returned when an envelope cannot be decoded or
	// is too short to contain a nonce and an authentication tag.
	ErrInvalidEnvelope = errors.New("encryption: invalid envelope")

	// ErrAuthenticationFailed is returned when GCM tag verification fails
	// during decryption.  This indicates tampering, corruption, or a wrong
	// key; no plaintext is ever returned alongside it.
	ErrAuthenticationFailed = errors.New("encryption: authentication failed")

	// ErrEncryptionFailed is returned when the underlying cipher primitive
	// reports a failure unrelated to input validation.  It is fatal and not
	// retryable.
	ErrEncryptionFailed = errors.New("encryption: cipher operation failed")

	// ErrPasswordTooShort is returned when a password shorter than
	// [MinPasswordLength] is supplied to a key-derivation path.
	ErrPasswordTooShort = errors.New("encryption: password too short")

	// ErrSaltTooShort is returned when a salt shorter than [MinSaltSize]
	// is supplied to DeriveKey.
	ErrSaltTooShort = errors.New("encryption: salt too short")

	// ErrInvalidIterations is returned when a PBKDF2 iteration count below
	// [MinPBKDF2Iterations] is requested.
	ErrInvalidIterations = errors.New("encryption: iteration count too low")

	// ErrFileIO is returned (wrapped around the underlying os error) when a
	// file convenience method fails to read its input or write its output.
	// It is orthogonal to cryptographic failures.
	ErrFileIO = errors.New("encryption: file i/o failure")
)
