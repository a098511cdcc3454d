package kdf

import (
	"math"
	"strings"
	"unicode"

	"github.com/nbutton23/zxcvbn-go"
)

// StrengthLevel buckets a password strength score.
type StrengthLevel string

// Strength levels, from weakest to strongest.
const (
	LevelVeryWeak StrengthLevel = "very_weak"
	LevelWeak     StrengthLevel = "weak"
	LevelMedium   StrengthLevel = "medium"
	LevelStrong   StrengthLevel = "strong"
)

// MaxPasswordScore is the highest score [ValidatePasswordStrength] can
// assign.
const MaxPasswordScore = 6

// PasswordStrength is the result of [ValidatePasswordStrength].
type PasswordStrength struct {
	// Score in [0, MaxPasswordScore].
	Score int

	// MaxScore is always [MaxPasswordScore]; included so callers can render
	// "4/6" without hard-coding the ceiling.
	MaxScore int

	// Level buckets the score.
	Level StrengthLevel

	// IsAcceptable reports whether the password clears the medium bar and
	// can be used for key derivation without a warning.
	IsAcceptable bool

	// Feedback lists concrete improvements, empty for strong passwords.
	Feedback []string

	// Entropy is the theoretical entropy in bits, per
	// [CalculatePasswordEntropy].
	Entropy float64
}

// commonSequences are rejected as substrings regardless of case. Matching
// any of them costs two points.
var commonSequences = []string{"123", "abc", "qwe", "password", "admin"}

// ValidatePasswordStrength scores a password for use as key derivation
// input. The score rewards length and character-class variety and penalises
// repetition and well-known sequences.
func ValidatePasswordStrength(password string) PasswordStrength {
	score := 0
	var feedback []string

	switch {
	case len(password) >= 12:
		score += 2
	case len(password) >= 8:
		score++
	default:
		feedback = append(feedback, "use at least 8 characters, ideally 12 or more")
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if hasLower {
		score++
	} else {
		feedback = append(feedback, "add lowercase letters")
	}
	if hasUpper {
		score++
	} else {
		feedback = append(feedback, "add uppercase letters")
	}
	if hasDigit {
		score++
	} else {
		feedback = append(feedback, "add digits")
	}
	if hasSpecial {
		score++
	} else {
		feedback = append(feedback, "add symbols")
	}

	if hasRepeatedRun(password, 3) {
		score--
		feedback = append(feedback, "avoid repeating the same character three or more times")
	}

	lower := strings.ToLower(password)
	for _, seq := range commonSequences {
		if strings.Contains(lower, seq) {
			score -= 2
			feedback = append(feedback, "avoid common sequences like "+seq)
			break
		}
	}

	if score < 0 {
		score = 0
	}
	if score > MaxPasswordScore {
		score = MaxPasswordScore
	}

	var level StrengthLevel
	switch {
	case score >= 6:
		level = LevelStrong
	case score >= 4:
		level = LevelMedium
	case score >= 2:
		level = LevelWeak
	default:
		level = LevelVeryWeak
	}

	return PasswordStrength{
		Score:        score,
		MaxScore:     MaxPasswordScore,
		Level:        level,
		IsAcceptable: score >= 4,
		Feedback:     feedback,
		Entropy:      CalculatePasswordEntropy(password),
	}
}

// CalculatePasswordEntropy estimates the theoretical entropy of a password
// in bits, assuming each character was chosen uniformly from the union of
// the character classes it uses (26 lowercase, 26 uppercase, 10 digits, 32
// symbols).
func CalculatePasswordEntropy(password string) float64 {
	if password == "" {
		return 0
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	poolSize := 0
	if hasLower {
		poolSize += 26
	}
	if hasUpper {
		poolSize += 26
	}
	if hasDigit {
		poolSize += 10
	}
	if hasSpecial {
		poolSize += 32
	}

	return float64(len(password)) * math.Log2(float64(poolSize))
}

// PasswordAnalysis is the result of [AnalyzePassword].
type PasswordAnalysis struct {
	// Score in [0, 4] as assigned by zxcvbn, where 4 means very strong.
	Score int

	// Entropy is zxcvbn's pattern-aware entropy estimate in bits. It is
	// usually far lower than [CalculatePasswordEntropy] for human-chosen
	// passwords.
	Entropy float64

	// CrackTime is the estimated offline crack time in seconds.
	CrackTime float64

	// CrackTimeDisplay is CrackTime rendered for humans ("3 days").
	CrackTimeDisplay string
}

// AnalyzePassword runs a pattern-aware strength analysis using the zxcvbn
// estimator. Unlike [ValidatePasswordStrength], it recognises dictionary
// words, keyboard walks, dates, and l33t substitutions, so it is a much
// better predictor of real-world guessability.
func AnalyzePassword(password string) PasswordAnalysis {
	res := zxcvbn.PasswordStrength(password, nil)
	return PasswordAnalysis{
		Score:            res.Score,
		Entropy:          res.Entropy,
		CrackTime:        res.CrackTime,
		CrackTimeDisplay: res.CrackTimeDisplay,
	}
}

// hasRepeatedRun reports whether s contains n or more identical consecutive
// bytes.
func hasRepeatedRun(s string, n int) bool {
	run := 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}
