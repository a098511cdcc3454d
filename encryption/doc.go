// Package encryption provides authenticated symmetric encryption using
// AES-256-GCM.
//
// # Envelope format
//
// Every encrypted value is a binary envelope of the form
//
//	nonce[12] || ciphertext || tag[12..16]
//
// base64-encoded as a whole by default (configurable via [WithEncoding]).
// Any consumer — including ports of this library to other languages — must
// slice the envelope in exactly this order.
//
// Password-based encryption ([EncryptWithPassword]) prepends a 16-byte salt:
//
//	salt[16] || nonce[12] || ciphertext || tag
//
// The two shapes are not interchangeable: a password envelope cannot be fed
// to [AESGCM.Decrypt] and vice versa.
//
// # Quick start
//
//	key, err := encryption.GenerateKey(32)
//	enc, err := encryption.NewAESGCM([]byte(key))
//
//	ciphertext, err := enc.EncryptString("hello")
//	plaintext,  err := enc.DecryptString(ciphertext)
//
// # Security notes
//
//   - A fresh random 12-byte nonce is generated for every Encrypt call;
//     encrypting the same plaintext twice produces different envelopes.
//   - GCM verifies the authentication tag before any plaintext is returned.
//     A failed tag yields [ErrAuthenticationFailed] and nothing else — the
//     error does not reveal whether the nonce, ciphertext, or tag was wrong.
//   - Keys are cloned on ingestion so external mutations cannot affect an
//     encrypter in use.
package encryption
