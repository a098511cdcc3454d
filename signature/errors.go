package signature

import "errors"

// Sentinel errors returned by signing operations.  The verify family never
// returns errors for bad signatures — only construction-time problems (bad
// keys, unknown algorithms) surface here.
var (
	// ErrEmptyKey is returned when a nil or zero-length key is provided.
	ErrEmptyKey = errors.New("signature: key must not be empty")

	// ErrInvalidKeyLength is returned when a key falls outside the
	// [MinKeySize, MaxKeySize] range and validation is enabled.
	ErrInvalidKeyLength = errors.New("signature: invalid key length")

	// ErrUnsupportedAlgorithm is returned when an unrecognised hash
	// algorithm is requested.
	ErrUnsupportedAlgorithm = errors.New("signature: unsupported algorithm")

	// ErrUnsupportedEncoding is returned when an unrecognised signature
	// encoding is requested.
	ErrUnsupportedEncoding = errors.New("signature: unsupported encoding")

	// ErrInvalidTokenData is returned by GenerateToken when the data
	// contains the token separator character '|', which would make the
	// resulting token unparseable.
	ErrInvalidTokenData = errors.New("signature: token data must not contain '|'")

	// ErrInvalidTTL is returned by GenerateToken for zero or negative
	// lifetimes.
	ErrInvalidTTL = errors.New("signature: token ttl must be positive")
)
