// Package kdf turns passwords and secrets into cryptographic key material.
//
// # Architecture
//
// The central abstraction is the [Deriver] interface.  Six algorithms ship
// with this package: PBKDF2-SHA256, PBKDF2-SHA512, Argon2i, Argon2id,
// Scrypt, and HKDF-SHA256.  All implement [Deriver], so callers can depend
// on the interface rather than a concrete type.
//
// The [Manager] is a driver registry and dispatcher: register named
// [Deriver] implementations, designate one as the default, probe runtime
// capability with [Manager.Supports], and delegate derivation through the
// Manager.  [NewDefaultManager] is the batteries-included variant.
//
// # Quick start
//
//	m, err := kdf.NewDefaultManager()      // Argon2id default, all derivers registered
//	salt, _ := kdf.GenerateSalt(32)
//	key, _ := m.Derive("my-secret-password", salt, 32)
//
// # Choosing an algorithm
//
//   - Argon2id: recommended for password-based keys (memory-hard, RFC 9106).
//   - Scrypt: memory-hard alternative with wide deployment.
//   - PBKDF2: FIPS-friendly and universally portable; needs high iteration
//     counts to compensate for being compute-only.
//   - HKDF: NOT for passwords — it expands existing high-entropy secrets
//     into purpose-specific keys (RFC 5869 extract-then-expand).
//
// # Salts
//
// Salts are not secret but must be unique per derivation.  [GenerateSalt]
// produces CSPRNG salts; when salts are supplied externally, freshness is
// the caller's contract.  [DeriveMultipleKeys] derives independent keys for
// several purposes from one password + salt via mandatory domain separation.
//
// # Resource cost
//
// Memory-hard derivers transiently allocate large buffers (64 MiB with the
// default Argon2 parameters).  Callers running many concurrent derivations
// must bound concurrency themselves; the library does not queue or throttle.
package kdf
