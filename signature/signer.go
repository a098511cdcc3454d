package signature

import (
	"crypto/hmac"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// MinKeySize and MaxKeySize bound the accepted HMAC key length in bytes.
	// RFC 2104 permits any length, but keys shorter than 16 bytes offer too
	// little entropy and keys beyond 512 bytes are hashed down anyway.
	MinKeySize = 16
	MaxKeySize = 512
)

// Encoding selects the textual representation of a signature.
type Encoding string

const (
	// EncodingHex emits lowercase hexadecimal (default).
	EncodingHex Encoding = "hex"
	// EncodingBase64 emits standard base64.
	EncodingBase64 Encoding = "base64"
	// EncodingRaw emits the raw digest bytes as a string.
	EncodingRaw Encoding = "raw"
)

// Option is a functional option for configuring a [Signer].
type Option func(*signerOptions)

type signerOptions struct {
	algorithm   Algorithm
	encoding    Encoding
	prefix      string
	validateKey bool
}

// WithAlgorithm selects the HMAC hash algorithm.  Default: [SHA256].
func WithAlgorithm(a Algorithm) Option {
	return func(o *signerOptions) { o.algorithm = a }
}

// WithEncoding selects the signature encoding.  Default: [EncodingHex].
func WithEncoding(e Encoding) Option {
	return func(o *signerOptions) { o.encoding = e }
}

// WithPrefix prepends a fixed prefix to every signature (e.g. "sha256=").
// Verify requires the prefix to be present and strips it before comparing;
// a signature missing the prefix verifies as false.
func WithPrefix(prefix string) Option {
	return func(o *signerOptions) { o.prefix = prefix }
}

// WithoutKeyValidation disables the [MinKeySize, MaxKeySize] bounds check.
// Empty keys are still rejected.
func WithoutKeyValidation() Option {
	return func(o *signerOptions) { o.validateKey = false }
}

// Signer computes and verifies HMAC signatures over arbitrary byte payloads.
//
// All configuration is validated at construction, which makes [Signer.Sign]
// infallible and lets the verify family report plain booleans.
//
// # Thread safety
//
// Signer is immutable after construction and safe for concurrent use.
type Signer struct {
	key  []byte
	opts signerOptions
}

// NewSigner constructs a [Signer] for the given key.
//
// The key must be non-empty and, unless [WithoutKeyValidation] is supplied,
// between [MinKeySize] and [MaxKeySize] bytes.
func NewSigner(key []byte, opts ...Option) (*Signer, error) {
	o := signerOptions{
		algorithm:   SHA256,
		encoding:    EncodingHex,
		validateKey: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	if o.validateKey && (len(key) < MinKeySize || len(key) > MaxKeySize) {
		return nil, fmt.Errorf("%w: %d bytes must be in [%d, %d]",
			ErrInvalidKeyLength, len(key), MinKeySize, MaxKeySize)
	}
	if err := ValidateAlgorithm(o.algorithm); err != nil {
		return nil, err
	}
	switch o.encoding {
	case EncodingHex, EncodingBase64, EncodingRaw:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, o.encoding)
	}

	k := make([]byte, len(key))
	copy(k, key)
	return &Signer{key: k, opts: o}, nil
}

// Algorithm returns the configured hash algorithm.
func (s *Signer) Algorithm() Algorithm { return s.opts.algorithm }

// Sign computes the HMAC of data under the signer's key, encodes it per the
// configured encoding, and prepends the configured prefix.
func (s *Signer) Sign(data []byte) string {
	return s.opts.prefix + s.encode(s.digest(data))
}

// Verify reports whether sig is a valid signature for data.
//
// Comparison is constant-time.  If a prefix is configured, a signature that
// does not start with it verifies as false — absence of the expected prefix
// is a verification failure, not malformed input.
func (s *Signer) Verify(data []byte, sig string) bool {
	if s.opts.prefix != "" {
		if !strings.HasPrefix(sig, s.opts.prefix) {
			return false
		}
		sig = sig[len(s.opts.prefix):]
	}
	expected := s.encode(s.digest(data))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(sig)) == 1
}

// digest computes the raw HMAC of data.
func (s *Signer) digest(data []byte) []byte {
	mac := hmac.New(algorithmSpecs[s.opts.algorithm].newHash, s.key)
	mac.Write(data)
	return mac.Sum(nil)
}

func (s *Signer) encode(digest []byte) string {
	switch s.opts.encoding {
	case EncodingBase64:
		return base64.StdEncoding.EncodeToString(digest)
	case EncodingRaw:
		return string(digest)
	default:
		return hex.EncodeToString(digest)
	}
}
