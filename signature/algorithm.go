package signature

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// Algorithm names an HMAC hash algorithm.
// The string values are intentionally lowercase to match the on-wire
// webhook-header convention.
type Algorithm string

const (
	// MD5 is supported for legacy interoperability only.  Do not use for
	// new integrations.
	MD5 Algorithm = "md5"
	// SHA1 is supported for legacy interoperability only.  Do not use for
	// new integrations.
	SHA1 Algorithm = "sha1"
	// SHA256 is the default and recommended algorithm.
	SHA256 Algorithm = "sha256"
	// SHA384 produces a 48-byte digest.
	SHA384 Algorithm = "sha384"
	// SHA512 produces a 64-byte digest.
	SHA512 Algorithm = "sha512"
)

// algorithmSpec holds the per-algorithm parameters used for dispatch and
// reporting.
type algorithmSpec struct {
	size        int // digest length in bytes
	secure      bool
	newHash     func() hash.Hash
	description string
}

var algorithmSpecs = map[Algorithm]algorithmSpec{
	MD5:    {size: 16, secure: false, newHash: md5.New, description: "MD5 (legacy only — collision-broken)"},
	SHA1:   {size: 20, secure: false, newHash: sha1.New, description: "SHA-1 (legacy only — collision-broken)"},
	SHA256: {size: 32, secure: true, newHash: sha256.New, description: "SHA-256 (recommended default)"},
	SHA384: {size: 48, secure: true, newHash: sha512.New384, description: "SHA-384"},
	SHA512: {size: 64, secure: true, newHash: sha512.New, description: "SHA-512"},
}

// AlgorithmInfo describes an HMAC hash algorithm.
type AlgorithmInfo struct {
	// Algorithm is the algorithm identifier.
	Algorithm Algorithm
	// Size is the digest length in bytes.
	Size int
	// Secure is false for algorithms that are accepted for legacy
	// interoperability only (md5, sha1).
	Secure bool
	// Description is a human-readable summary.
	Description string
}

// Info returns metadata for algorithm, or [ErrUnsupportedAlgorithm] for
// unknown names.
func Info(algorithm Algorithm) (AlgorithmInfo, error) {
	spec, ok := algorithmSpecs[algorithm]
	if !ok {
		return AlgorithmInfo{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
	return AlgorithmInfo{
		Algorithm:   algorithm,
		Size:        spec.size,
		Secure:      spec.secure,
		Description: spec.description,
	}, nil
}

// Supported reports whether algorithm names a known HMAC hash algorithm.
func Supported(algorithm Algorithm) bool {
	_, ok := algorithmSpecs[algorithm]
	return ok
}

// Algorithms returns all supported algorithms in digest-size order.
func Algorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA256, SHA384, SHA512}
}

// ValidateAlgorithm returns a non-nil error if algorithm is unrecognised.
func ValidateAlgorithm(algorithm Algorithm) error {
	if !Supported(algorithm) {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
	return nil
}
