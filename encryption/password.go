package encryption

import (
	"encoding/base64"
	"fmt"
)

// PasswordSaltSize is the length of the salt prepended to password-based
// envelopes.  The value is fixed by the wire format and cannot change
// without breaking existing envelopes.
const PasswordSaltSize = 16

// EncryptWithPassword encrypts value under a key derived from password.
//
// A fresh 16-byte salt is generated per call and the configured [KeyDeriver]
// (PBKDF2-SHA256 by default, replaceable via [WithKeyDeriver]) turns the
// password into a 32-byte key.  The salt is prepended to the envelope —
//
//	salt[16] || nonce[12] || ciphertext || tag
//
// — so [DecryptWithPassword] can self-extract it.  This envelope shape is
// distinct from the one produced by [AESGCM.Encrypt]; the two flows must not
// be mixed.
func EncryptWithPassword(value []byte, password string, opts ...Option) ([]byte, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	salt, err := randomBytes(PasswordSaltSize)
	if err != nil {
		return nil, err
	}
	key, err := o.deriver.DeriveKey(password, salt, aesKeySize)
	if err != nil {
		return nil, err
	}

	envelope, err := newRawEncrypter(key, o).Encrypt(value)
	if err != nil {
		return nil, err
	}

	return encodePassword(append(salt, envelope...), o.encoding), nil
}

// DecryptWithPassword reverses [EncryptWithPassword]: it extracts the salt,
// re-derives the key, and authenticates + decrypts the remaining envelope.
//
// A wrong password surfaces as [ErrAuthenticationFailed], indistinguishable
// from a tampered envelope.
func DecryptWithPassword(envelope []byte, password string, opts ...Option) ([]byte, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	raw := envelope
	if o.encoding == EncodingBase64 {
		decoded, err := base64Decode(string(envelope))
		if err != nil {
			return nil, fmt.Errorf("%w: not valid base64", ErrInvalidEnvelope)
		}
		raw = decoded
	}
	if len(raw) < PasswordSaltSize+NonceSize+o.tagSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than salt (%d) + nonce (%d) + tag (%d)",
			ErrInvalidEnvelope, len(raw), PasswordSaltSize, NonceSize, o.tagSize)
	}

	salt, inner := raw[:PasswordSaltSize], raw[PasswordSaltSize:]
	key, err := o.deriver.DeriveKey(password, salt, aesKeySize)
	if err != nil {
		return nil, err
	}

	return newRawEncrypter(key, o).Decrypt(inner)
}

// EncryptStringWithPassword is a convenience wrapper around
// [EncryptWithPassword] for string values.
func EncryptStringWithPassword(value, password string, opts ...Option) (string, error) {
	out, err := EncryptWithPassword([]byte(value), password, opts...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DecryptStringWithPassword is a convenience wrapper around
// [DecryptWithPassword] for string envelopes.
func DecryptStringWithPassword(envelope, password string, opts ...Option) (string, error) {
	out, err := DecryptWithPassword([]byte(envelope), password, opts...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// newRawEncrypter builds an internal AESGCM that works on binary envelopes;
// the outer encoding is applied once around salt || envelope.  The key comes
// from a deriver and is already exactly 32 bytes.
func newRawEncrypter(key []byte, o options) *AESGCM {
	inner := o
	inner.encoding = EncodingRaw
	inner.previousKeys = nil
	return &AESGCM{key: cloneBytes(key), opts: inner}
}

func encodePassword(envelope []byte, enc Encoding) []byte {
	if enc == EncodingRaw {
		return envelope
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(envelope)))
	base64.StdEncoding.Encode(out, envelope)
	return out
}
