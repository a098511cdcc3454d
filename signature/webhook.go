package signature

import (
	"fmt"
	"regexp"
	"strings"
)

// webhookPattern matches the "<algorithm>=<hex-digest>" header shape.
// The algorithm segment is matched case-insensitively and lowered before
// lookup; the digest must be lowercase hex.
var webhookPattern = regexp.MustCompile(`^([a-zA-Z0-9]+)=([a-f0-9]+)$`)

// SignWebhook signs payload with secret and returns the value to place in a
// signature header, in the form "<algorithm>=<hex-digest>":
//
//	sig, err := signature.SignWebhook(body, secret, signature.SHA256)
//	// sig == "sha256=5d41402abc4b2a76..."
//
// An empty algorithm selects [SHA256].
func SignWebhook(payload, secret []byte, algorithm Algorithm) (string, error) {
	if algorithm == "" {
		algorithm = SHA256
	}
	s, err := NewSigner(secret, WithAlgorithm(algorithm))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s=%s", algorithm, s.Sign(payload)), nil
}

// VerifyWebhook reports whether sig — a "<algorithm>=<hex-digest>" header
// value — is a valid signature of payload under secret.
//
// Any header that does not match the expected shape, names an unsupported
// algorithm, or fails the constant-time digest comparison verifies as false
// without error.  The only error condition is an unusable secret, which is
// a programmer error rather than a verification outcome.
func VerifyWebhook(payload []byte, sig string, secret []byte) (bool, error) {
	m := webhookPattern.FindStringSubmatch(sig)
	if m == nil {
		return false, nil
	}

	algorithm := Algorithm(strings.ToLower(m[1]))
	if !Supported(algorithm) {
		return false, nil
	}

	s, err := NewSigner(secret, WithAlgorithm(algorithm))
	if err != nil {
		return false, err
	}
	return s.Verify(payload, m[2]), nil
}
