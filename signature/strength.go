package signature

import "math"

// StrengthLevel classifies HMAC key quality.
type StrengthLevel string

const (
	StrengthWeak   StrengthLevel = "weak"
	StrengthFair   StrengthLevel = "fair"
	StrengthMedium StrengthLevel = "medium"
	StrengthStrong StrengthLevel = "strong"
)

// KeyStrength reports the outcome of [CalculateKeyStrength].
type KeyStrength struct {
	// Length is the key length in bytes.
	Length int
	// Entropy is the Shannon entropy of the key's byte distribution,
	// normalised for key length onto a 0-to-8 scale: a maximally diverse
	// key of any length reads 8, a constant key reads 0.
	Entropy float64
	// Level is the combined length + entropy classification.
	Level StrengthLevel
	// IsSecure is true for medium and strong keys.
	IsSecure bool
	// Recommendations lists concrete improvements for keys below strong.
	Recommendations []string
}

// CalculateKeyStrength scores an HMAC key by length and byte diversity.
// A 32-byte CSPRNG key scores strong; short or low-entropy keys (e.g.
// ASCII passphrases, repeated bytes) score lower.
//
// An N-byte sample can expose at most log2(min(N, 256)) bits of Shannon
// entropy per byte, far below the 8-bit ceiling for short keys, so the
// observed entropy is normalised against that achievable maximum before
// classification.  Strong requires ≥ 32 bytes at more than 85% of maximum
// diversity; medium ≥ 24 bytes above 75%; fair ≥ 16 bytes above 65%;
// everything else is weak.
//
// Note that entropy measures the key as observed, not the process that
// produced it.  Treat the result as a lint, not a proof.
func CalculateKeyStrength(key []byte) KeyStrength {
	ratio := entropyRatio(key)

	var level StrengthLevel
	switch {
	case len(key) >= 32 && ratio > 0.85:
		level = StrengthStrong
	case len(key) >= 24 && ratio > 0.75:
		level = StrengthMedium
	case len(key) >= 16 && ratio > 0.65:
		level = StrengthFair
	default:
		level = StrengthWeak
	}

	var recs []string
	if len(key) < 32 {
		recs = append(recs, "use a key of at least 32 bytes")
	}
	if ratio <= 0.85 {
		recs = append(recs, "generate the key with a CSPRNG rather than deriving it from text")
	}

	return KeyStrength{
		Length:          len(key),
		Entropy:         ratio * 8,
		Level:           level,
		IsSecure:        level == StrengthMedium || level == StrengthStrong,
		Recommendations: recs,
	}
}

// entropyRatio returns the Shannon entropy of b's byte distribution as a
// fraction of the maximum achievable for its length: 1 for a maximally
// diverse key, 0 for a constant or empty key.
func entropyRatio(b []byte) float64 {
	if len(b) < 2 {
		return 0
	}
	max := math.Log2(math.Min(float64(len(b)), 256))
	return shannonEntropy(b) / max
}

// shannonEntropy returns the entropy of the byte-frequency distribution of b
// in bits per byte.
func shannonEntropy(b []byte) float64 {
	if len(b) == 0 {
		return 0
	}
	var freq [256]int
	for _, c := range b {
		freq[c]++
	}
	total := float64(len(b))
	entropy := 0.0
	for _, n := range freq {
		if n == 0 {
			continue
		}
		p := float64(n) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}
