// Package signature provides keyed-hash message authentication (HMAC),
// webhook-signature helpers, and timestamp-bound tokens.
//
// # Signer
//
// A [Signer] is configured once — key, algorithm, encoding, optional prefix —
// and then signs and verifies payloads:
//
//	s, err := signature.NewSigner(secret, signature.WithPrefix("sha256="))
//	sig := s.Sign(payload)
//	ok  := s.Verify(payload, sig)
//
// All verification is constant-time.  Because every parameter is validated
// at construction, Sign is infallible and the verify family reports plain
// booleans: a forged or malformed signature is a verification outcome, not
// an error.
//
// # Webhook signatures
//
// [SignWebhook] and [VerifyWebhook] implement the "<algorithm>=<hex-digest>"
// header convention, e.g.
//
//	sha256=5d41402abc4b2a76b9719d911017c592
//
// A receiving endpoint extracts the header value and calls
// VerifyWebhook(rawBody, headerValue, sharedSecret).  Anything that does not
// match the header shape verifies as false without error.
//
// # Timestamp tokens
//
// [Signer.GenerateToken] produces base64("<data>|<unix-expiry>|<hex-sig>");
// [Signer.ParseToken] rejects tokens that are malformed, expired, or carry
// an invalid signature, reporting (zero, false) rather than an error.
//
// # Legacy algorithms
//
// md5 and sha1 are accepted for interoperability with legacy senders but are
// flagged insecure by [Info]; do not select them for new integrations.
package signature
