package kdf_test

import (
	"math"
	"strings"
	"testing"

	"github.com/clubify/go-checkout-crypto/kdf"
)

// ──────────────────────────────────────────────────────────────────────────────
// ValidatePasswordStrength
// ──────────────────────────────────────────────────────────────────────────────

func TestValidatePasswordStrength_Levels(t *testing.T) {
	tests := []struct {
		password       string
		wantLevel      kdf.StrengthLevel
		wantAcceptable bool
	}{
		// Dictionary word: short, one class, common sequence penalty.
		{"password", kdf.LevelVeryWeak, false},
		{"", kdf.LevelVeryWeak, false},
		{"aaaaaaaa", kdf.LevelVeryWeak, false},
		// All four classes, 14 chars, no penalties.
		{"Tr7$mK9#qL2@wZ", kdf.LevelStrong, true},
		// Long but single class.
		{"justlowercaseletters", kdf.LevelWeak, false},
		// Three classes, 12+ chars.
		{"Winter2024melon", kdf.LevelMedium, true},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			got := kdf.ValidatePasswordStrength(tt.password)
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q (score %d)", got.Level, tt.wantLevel, got.Score)
			}
			if got.IsAcceptable != tt.wantAcceptable {
				t.Errorf("IsAcceptable = %v, want %v", got.IsAcceptable, tt.wantAcceptable)
			}
			if got.MaxScore != kdf.MaxPasswordScore {
				t.Errorf("MaxScore = %d, want %d", got.MaxScore, kdf.MaxPasswordScore)
			}
		})
	}
}

func TestValidatePasswordStrength_ScoreBounds(t *testing.T) {
	for _, password := range []string{"", "123", "password123", "Tr7$mK9#qL2@wZ", strings.Repeat("aA1!", 20)} {
		got := kdf.ValidatePasswordStrength(password)
		if got.Score < 0 || got.Score > kdf.MaxPasswordScore {
			t.Errorf("Score(%q) = %d, outside [0, %d]", password, got.Score, kdf.MaxPasswordScore)
		}
	}
}

func TestValidatePasswordStrength_Feedback(t *testing.T) {
	got := kdf.ValidatePasswordStrength("password")
	if len(got.Feedback) == 0 {
		t.Fatal("expected feedback for a weak password")
	}
	var mentionsSequence bool
	for _, f := range got.Feedback {
		if strings.Contains(f, "common sequences") {
			mentionsSequence = true
		}
	}
	if !mentionsSequence {
		t.Errorf("expected common-sequence feedback, got %q", got.Feedback)
	}

	strong := kdf.ValidatePasswordStrength("Tr7$mK9#qL2@wZ")
	if len(strong.Feedback) != 0 {
		t.Errorf("expected no feedback for a strong password, got %q", strong.Feedback)
	}
}

func TestValidatePasswordStrength_SequencePenaltyIsCaseInsensitive(t *testing.T) {
	with := kdf.ValidatePasswordStrength("xK9$PaSsWoRdQ2!")
	without := kdf.ValidatePasswordStrength("xK9$mJwUvTbnQ2!")
	if with.Score >= without.Score {
		t.Errorf("embedded PaSsWoRd scored %d, plain scored %d; want a penalty", with.Score, without.Score)
	}
}

func TestValidatePasswordStrength_RepetitionPenalty(t *testing.T) {
	with := kdf.ValidatePasswordStrength("xK9$wwwUvTbnQ2!")
	without := kdf.ValidatePasswordStrength("xK9$mJwUvTbnQ2!")
	if with.Score >= without.Score {
		t.Errorf("repeated run scored %d, clean scored %d; want a penalty", with.Score, without.Score)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CalculatePasswordEntropy
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculatePasswordEntropy(t *testing.T) {
	tests := []struct {
		password string
		want     float64
	}{
		{"", 0},
		// 8 lowercase chars: 8 * log2(26).
		{"abcdefgh", 8 * math.Log2(26)},
		// Lower + upper + digit: pool of 62.
		{"Abc123", 6 * math.Log2(62)},
		// All four classes: pool of 94.
		{"Ab1!", 4 * math.Log2(94)},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			got := kdf.CalculatePasswordEntropy(tt.password)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CalculatePasswordEntropy(%q) = %f, want %f", tt.password, got, tt.want)
			}
		})
	}
}

func TestCalculatePasswordEntropy_GrowsWithLength(t *testing.T) {
	short := kdf.CalculatePasswordEntropy("abcd")
	long := kdf.CalculatePasswordEntropy("abcdabcd")
	if long <= short {
		t.Errorf("entropy of longer password (%f) not greater than shorter (%f)", long, short)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AnalyzePassword (zxcvbn)
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalyzePassword_DictionaryWordScoresLow(t *testing.T) {
	got := kdf.AnalyzePassword("password")
	if got.Score > 1 {
		t.Errorf("zxcvbn score for %q = %d, want <= 1", "password", got.Score)
	}
	if got.CrackTimeDisplay == "" {
		t.Error("expected a human-readable crack time")
	}
}

func TestAnalyzePassword_RandomScoresHigh(t *testing.T) {
	got := kdf.AnalyzePassword("Tr7$mK9#qL2@wZ")
	if got.Score < 3 {
		t.Errorf("zxcvbn score for random password = %d, want >= 3", got.Score)
	}
}

func TestAnalyzePassword_PatternAwareEntropyIsLower(t *testing.T) {
	// zxcvbn recognises the dictionary word; the theoretical estimator
	// assumes uniform choice and must come out higher.
	theoretical := kdf.CalculatePasswordEntropy("password123")
	analysed := kdf.AnalyzePassword("password123")
	if analysed.Entropy >= theoretical {
		t.Errorf("pattern-aware entropy %f not below theoretical %f", analysed.Entropy, theoretical)
	}
}
