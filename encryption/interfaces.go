package encryption

// Encrypter is the interface satisfied by authenticated-encryption backends
// in this package.  [AESGCM] is the sole built-in implementation; consumers
// should depend on the interface rather than the concrete type.
//
// To implement a custom backend (e.g. ChaCha20-Poly1305, HSM-backed AES):
//
//  1. Create a struct that holds your key material and configuration.
//  2. Implement all five methods below, preserving the envelope contract:
//     tampering with any byte of an envelope must make Decrypt fail.
//  3. Pass the struct wherever an Encrypter is required.
type Encrypter interface {
	// Encrypt encrypts arbitrary bytes and returns the encoded envelope.
	// Each call uses a fresh random nonce, so identical plaintexts produce
	// distinct envelopes.
	Encrypt(value []byte, opts ...MessageOption) ([]byte, error)

	// EncryptString is a convenience wrapper around Encrypt for string values.
	EncryptString(value string, opts ...MessageOption) (string, error)

	// Decrypt authenticates and decrypts an envelope previously produced by
	// Encrypt, returning the original plaintext bytes.
	Decrypt(envelope []byte, opts ...MessageOption) ([]byte, error)

	// DecryptString is a convenience wrapper around Decrypt for string values.
	DecryptString(envelope string, opts ...MessageOption) (string, error)

	// CanDecrypt reports whether envelope decrypts successfully under this
	// encrypter.  It is the only non-failing probe in the package: every
	// error condition is swallowed and reported as false.
	CanDecrypt(envelope []byte, opts ...MessageOption) bool
}

// KeyDeriver turns a password and salt into key material of the requested
// length.  It is the injection point for the password-based convenience
// functions ([EncryptWithPassword], [DecryptWithPassword]), so that a single
// authoritative derivation implementation can be shared across packages.
//
// The default is [PBKDF2KeyDeriver] with [DefaultPBKDF2Iterations].  Any
// deriver from a dedicated KDF package can be adapted to this interface.
type KeyDeriver interface {
	// DeriveKey derives length bytes of key material from password and salt.
	// Implementations must be deterministic: identical inputs yield
	// identical output.
	DeriveKey(password string, salt []byte, length int) ([]byte, error)
}
