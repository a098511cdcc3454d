package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

const (
	// NonceSize is the AES-GCM nonce length in bytes.  96-bit nonces are the
	// GCM-recommended size; the envelope format fixes it permanently.
	NonceSize = 12

	// MinTagSize and MaxTagSize bound the configurable GCM authentication
	// tag length in bytes.
	MinTagSize = 12
	MaxTagSize = 16

	// DefaultTagSize is the tag length used unless [WithTagSize] overrides it.
	DefaultTagSize = 16

	// MinKeySize and MaxKeySize bound the accepted key length in bytes.
	// Keys that are not exactly 32 bytes are compressed to the AES-256 key
	// size with SHA-256 (see [NewAESGCM]).
	MinKeySize = 16
	MaxKeySize = 64

	// MaxValueSize is the largest plaintext accepted by Encrypt (2 MiB).
	// The file helpers are subject to the same cap.
	MaxValueSize = 2 << 20

	// aesKeySize is the AES-256 key length all accepted keys normalise to.
	aesKeySize = 32
)

// Encoding selects the textual representation of an envelope.
type Encoding string

const (
	// EncodingBase64 emits the envelope as standard base64 text (default).
	EncodingBase64 Encoding = "base64"
	// EncodingRaw emits the envelope as raw binary bytes.
	EncodingRaw Encoding = "raw"
)

// Option is a functional option for configuring an [AESGCM] encrypter.
// Options are applied at construction time via [NewAESGCM].
type Option func(*options)

type options struct {
	tagSize      int
	encoding     Encoding
	validateKey  bool
	deriver      KeyDeriver
	previousKeys [][]byte
}

func defaultOptions() options {
	return options{
		tagSize:     DefaultTagSize,
		encoding:    EncodingBase64,
		validateKey: true,
		deriver:     PBKDF2KeyDeriver{Iterations: DefaultPBKDF2Iterations},
	}
}

func (o *options) validate() error {
	if o.tagSize < MinTagSize || o.tagSize > MaxTagSize {
		return fmt.Errorf("%w: %d must be in [%d, %d]",
			ErrInvalidTagSize, o.tagSize, MinTagSize, MaxTagSize)
	}
	switch o.encoding {
	case EncodingBase64, EncodingRaw:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEncoding, o.encoding)
	}
	if o.deriver == nil {
		return fmt.Errorf("%w: key deriver must not be nil", ErrInvalidEncoding)
	}
	return nil
}

// WithTagSize sets the GCM authentication tag length in bytes.
// Valid range: [MinTagSize] (12) to [MaxTagSize] (16).  Default: 16.
//
// Both sides of an exchange must agree on the tag size, since the envelope
// carries no length marker.
func WithTagSize(n int) Option {
	return func(o *options) { o.tagSize = n }
}

// WithEncoding sets the envelope encoding.  Default: [EncodingBase64].
func WithEncoding(e Encoding) Option {
	return func(o *options) { o.encoding = e }
}

// WithoutKeyValidation disables the [MinKeySize, MaxKeySize] bounds check on
// keys.  Keys are still normalised to 32 bytes.  Intended for callers that
// enforce their own key policy.
func WithoutKeyValidation() Option {
	return func(o *options) { o.validateKey = false }
}

// WithKeyDeriver replaces the password-to-key derivation strategy used by
// [EncryptWithPassword] and [DecryptWithPassword].  The default is
// [PBKDF2KeyDeriver] with [DefaultPBKDF2Iterations].
func WithKeyDeriver(d KeyDeriver) Option {
	return func(o *options) { o.deriver = d }
}

// WithPreviousKeys registers fallback keys to try during decryption.
// This supports key-rotation workflows: encrypt all new values with the
// current primary key, while still being able to decrypt values that were
// encrypted with older keys.  Previous keys are never used for encryption.
func WithPreviousKeys(keys ...[]byte) Option {
	return func(o *options) {
		for _, k := range keys {
			o.previousKeys = append(o.previousKeys, cloneBytes(k))
		}
	}
}

// MessageOption configures a single Encrypt or Decrypt call.
type MessageOption func(*messageOptions)

type messageOptions struct {
	aad []byte
}

// WithAAD binds additional authenticated data to the envelope.  The data is
// authenticated but not encrypted; decryption fails unless the identical AAD
// is supplied.
func WithAAD(aad []byte) MessageOption {
	return func(m *messageOptions) { m.aad = cloneBytes(aad) }
}

// AESGCM provides AES-256-GCM authenticated encryption.
//
// The envelope produced by Encrypt is nonce || ciphertext || tag, encoded
// per the configured [Encoding].  See the package documentation for the
// exact wire contract.
//
// # Nonce management
//
// A fresh 12-byte nonce is generated for every Encrypt call using
// crypto/rand.  With 96-bit random nonces the collision probability becomes
// non-negligible after approximately 2^32 messages under the same key; for
// high-volume applications, rotate keys before reaching that threshold.
//
// # Thread safety
//
// AESGCM is immutable after construction and safe for concurrent use.
type AESGCM struct {
	key  []byte
	opts options
}

var _ Encrypter = (*AESGCM)(nil)

// NewAESGCM constructs an [AESGCM] encrypter.
//
// The key is accepted either as raw bytes or as a base64-encoded string.
// Exactly 32 raw bytes are used as the AES-256 key directly; any other
// input that is well-formed base64 decoding to [MinKeySize, MaxKeySize]
// bytes is decoded first (so [GenerateKey] output is accepted verbatim),
// and remaining raw input is used as supplied.  Keys that do not end up
// at exactly 32 bytes are compressed to the AES-256 key size with
// SHA-256, so any accepted key maps deterministically onto a valid
// cipher key.
//
// Use [GenerateKey] to obtain a suitable random key.
func NewAESGCM(key []byte, opts ...Option) (*AESGCM, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	normalised, err := normaliseKey(key, o.validateKey)
	if err != nil {
		return nil, err
	}
	for i, prev := range o.previousKeys {
		np, err := normaliseKey(prev, o.validateKey)
		if err != nil {
			return nil, fmt.Errorf("previous key %d: %w", i, err)
		}
		o.previousKeys[i] = np
	}

	return &AESGCM{key: normalised, opts: o}, nil
}

// Encrypt encrypts value with AES-256-GCM and returns the encoded envelope.
//
// value must be non-empty and at most [MaxValueSize] bytes.  Each call
// generates a fresh random nonce, so encrypting the same plaintext twice
// produces different envelopes.
func (e *AESGCM) Encrypt(value []byte, opts ...MessageOption) ([]byte, error) {
	var m messageOptions
	for _, opt := range opts {
		opt(&m)
	}

	if len(value) == 0 {
		return nil, ErrEmptyValue
	}
	if len(value) > MaxValueSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrValueTooLarge, len(value), MaxValueSize)
	}

	gcm, err := e.newGCM(e.key)
	if err != nil {
		return nil, err
	}

	nonce, err := randomBytes(NonceSize)
	if err != nil {
		return nil, err
	}

	// gcm.Seal appends the tag after the ciphertext, so the result already
	// has the ciphertext || tag shape; prefixing the nonce completes the
	// envelope.
	envelope := gcm.Seal(nonce, nonce, value, m.aad)
	return e.encode(envelope), nil
}

// EncryptString is a convenience wrapper that encrypts a UTF-8 string and
// returns the encoded envelope as a string.
func (e *AESGCM) EncryptString(value string, opts ...MessageOption) (string, error) {
	out, err := e.Encrypt([]byte(value), opts...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Decrypt authenticates and decrypts an envelope produced by [AESGCM.Encrypt].
//
// The authentication tag is verified as part of decryption; if verification
// fails (tampered envelope, wrong key, mismatched AAD) the result is
// [ErrAuthenticationFailed] and no plaintext is returned.  If
// [WithPreviousKeys] was configured, each key is tried in order (primary
// first) until one opens the envelope or all keys are exhausted.
func (e *AESGCM) Decrypt(envelope []byte, opts ...MessageOption) ([]byte, error) {
	var m messageOptions
	for _, opt := range opts {
		opt(&m)
	}

	raw, err := e.decode(envelope)
	if err != nil {
		return nil, err
	}
	if len(raw) < NonceSize+e.opts.tagSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than nonce (%d) + tag (%d)",
			ErrInvalidEnvelope, len(raw), NonceSize, e.opts.tagSize)
	}

	nonce, sealed := raw[:NonceSize], raw[NonceSize:]

	for _, key := range e.allKeys() {
		gcm, err := e.newGCM(key)
		if err != nil {
			return nil, err
		}
		plaintext, err := gcm.Open(nil, nonce, sealed, m.aad)
		if err == nil {
			return plaintext, nil
		}
	}
	return nil, ErrAuthenticationFailed
}

// DecryptString is a convenience wrapper around [AESGCM.Decrypt] for string
// envelopes.
func (e *AESGCM) DecryptString(envelope string, opts ...MessageOption) (string, error) {
	out, err := e.Decrypt([]byte(envelope), opts...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// CanDecrypt reports whether envelope decrypts successfully under this
// encrypter.  All errors — malformed envelopes included — are swallowed and
// reported as false; this is the only operation in the package permitted to
// suppress errors.
func (e *AESGCM) CanDecrypt(envelope []byte, opts ...MessageOption) bool {
	_, err := e.Decrypt(envelope, opts...)
	return err == nil
}

// Key returns a copy of the normalised primary encryption key.
// Mutating the returned slice does not affect the encrypter.
func (e *AESGCM) Key() []byte { return cloneBytes(e.key) }

// TagSize returns the configured GCM authentication tag length in bytes.
func (e *AESGCM) TagSize() int { return e.opts.tagSize }

// newGCM builds the AEAD for key with the configured tag size.  Failures
// here indicate environment misconfiguration rather than bad input.
func (e *AESGCM) newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
	}
	gcm, err := cipher.NewGCMWithTagSize(block, e.opts.tagSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
	}
	return gcm, nil
}

func (e *AESGCM) encode(envelope []byte) []byte {
	if e.opts.encoding == EncodingRaw {
		return envelope
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(envelope)))
	base64.StdEncoding.Encode(out, envelope)
	return out
}

func (e *AESGCM) decode(envelope []byte) ([]byte, error) {
	if e.opts.encoding == EncodingRaw {
		return envelope, nil
	}
	raw, err := base64Decode(string(envelope))
	if err != nil {
		return nil, fmt.Errorf("%w: not valid base64", ErrInvalidEnvelope)
	}
	return raw, nil
}

// allKeys returns the primary key followed by any previous keys.
func (e *AESGCM) allKeys() [][]byte {
	keys := make([][]byte, 0, 1+len(e.opts.previousKeys))
	keys = append(keys, e.key)
	keys = append(keys, e.opts.previousKeys...)
	return keys
}

// normaliseKey validates and normalises key material to the AES-256 size.
//
// Exactly 32 bytes are always treated as a raw AES-256 key.  Any other
// input that is well-formed base64 with a decoded length in the accepted
// bounds is decoded first (so GenerateKey output round-trips); otherwise
// the bytes are used as supplied.  A textual key that happens to be valid
// base64 is therefore read as encoded — supply exactly 32 raw bytes to
// bypass the decode.  Inputs that do not end up at exactly 32 bytes are
// compressed with SHA-256 so the cipher always receives a valid key.
func normaliseKey(key []byte, validate bool) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	raw := key
	if len(key) != aesKeySize {
		decoded, err := base64Decode(string(key))
		if err == nil && len(decoded) >= MinKeySize && len(decoded) <= MaxKeySize {
			raw = decoded
		}
	}

	if validate && (len(raw) < MinKeySize || len(raw) > MaxKeySize) {
		return nil, fmt.Errorf("%w: %d bytes must be in [%d, %d]",
			ErrInvalidKeyLength, len(raw), MinKeySize, MaxKeySize)
	}

	if len(raw) == aesKeySize {
		return cloneBytes(raw), nil
	}
	sum := sha256.Sum256(raw)
	return sum[:], nil
}

// base64Decode attempts multiple base64 variants in order.
func base64Decode(s string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	if b, err := base64.URLEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	if b, err := base64.RawStdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawURLEncoding.DecodeString(s)
}

// cloneBytes returns a fresh copy of b.  Used to ensure callers cannot
// mutate keys stored inside an encrypter.
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
