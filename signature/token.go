package signature

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// DefaultTokenTTL is a conventional token lifetime for callers that have no
// specific requirement.
const DefaultTokenTTL = time.Hour

// tokenSeparator delimits the three token segments.  Fixed by the wire
// format: base64("<data>|<unix-expiry>|<hex-signature>").
const tokenSeparator = "|"

// TokenClaims carries the contents of a successfully verified token.
type TokenClaims struct {
	// Data is the caller-supplied payload embedded in the token.
	Data string
	// ExpiresAt is the token's expiry instant (second precision).
	ExpiresAt time.Time
}

// GenerateToken builds a timestamp-bound token:
//
//	base64("<data>|<unix-expiry>|<hex-signature>")
//
// The signature covers "<data>|<unix-expiry>" and is always hex-encoded
// regardless of the signer's configured encoding, keeping the token
// parseable.  data must not contain '|' and ttl must be positive.
func (s *Signer) GenerateToken(data string, ttl time.Duration) (string, error) {
	if strings.Contains(data, tokenSeparator) {
		return "", ErrInvalidTokenData
	}
	if ttl <= 0 {
		return "", ErrInvalidTTL
	}

	expiry := time.Now().Add(ttl).Unix()
	payload := data + tokenSeparator + strconv.FormatInt(expiry, 10)
	sig := hex.EncodeToString(s.digest([]byte(payload)))

	token := payload + tokenSeparator + sig
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken verifies a token produced by [Signer.GenerateToken] and returns
// its claims.
//
// It reports (zero, false) — never an error — when the token is not valid
// base64, does not contain exactly three pipe-separated segments, carries a
// non-numeric or past expiry, or fails the constant-time signature check.
// A rejected token is a data outcome for the caller to handle (e.g. by
// re-issuing), not a failure of the call itself.
func (s *Signer) ParseToken(token string) (TokenClaims, bool) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return TokenClaims{}, false
	}

	raw := string(decoded)
	if strings.Count(raw, tokenSeparator) != 2 {
		return TokenClaims{}, false
	}
	parts := strings.Split(raw, tokenSeparator)

	expiry, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return TokenClaims{}, false
	}
	if time.Now().Unix() > expiry {
		return TokenClaims{}, false
	}

	payload := parts[0] + tokenSeparator + parts[1]
	expected := hex.EncodeToString(s.digest([]byte(payload)))
	if subtle.ConstantTimeCompare([]byte(expected), []byte(parts[2])) != 1 {
		return TokenClaims{}, false
	}

	return TokenClaims{Data: parts[0], ExpiresAt: time.Unix(expiry, 0)}, true
}
