package encryption

import (
	"fmt"
	"os"
)

// EncryptFile reads src in full, encrypts it, and writes the envelope to dst.
//
// The file must fit within [MaxValueSize].  I/O failures are reported as
// [ErrFileIO] wrapping the underlying os error, keeping them distinct from
// cryptographic failures:
//
//	err := enc.EncryptFile("plain.txt", "plain.txt.enc")
//	if errors.Is(err, encryption.ErrFileIO) { ... }
//	if errors.Is(err, os.ErrNotExist)       { ... }
func (e *AESGCM) EncryptFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", ErrFileIO, src, err)
	}
	envelope, err := e.Encrypt(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, envelope, 0o600); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrFileIO, dst, err)
	}
	return nil
}

// DecryptFile reads an envelope from src, authenticates and decrypts it,
// and writes the plaintext to dst.
//
// Error classes are kept separate: [ErrFileIO] for read/write failures,
// [ErrInvalidEnvelope] / [ErrAuthenticationFailed] for envelope problems.
func (e *AESGCM) DecryptFile(src, dst string) error {
	envelope, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", ErrFileIO, src, err)
	}
	plaintext, err := e.Decrypt(envelope)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, plaintext, 0o600); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrFileIO, dst, err)
	}
	return nil
}
