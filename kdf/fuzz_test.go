package kdf_test

import (
	"bytes"
	"testing"

	"github.com/clubify/go-checkout-crypto/kdf"
)

// FuzzValidatePasswordStrength asserts the scoring invariants hold for
// arbitrary input: the score stays in bounds, the level matches the score,
// and acceptability matches the documented threshold.
func FuzzValidatePasswordStrength(f *testing.F) {
	f.Add("")
	f.Add("password")
	f.Add("Tr7$mK9#qL2@wZ")
	f.Add("aaaaaaaaaaaa")
	f.Add("änderung-Ü123!")

	f.Fuzz(func(t *testing.T, password string) {
		got := kdf.ValidatePasswordStrength(password)
		if got.Score < 0 || got.Score > kdf.MaxPasswordScore {
			t.Fatalf("score %d outside [0, %d]", got.Score, kdf.MaxPasswordScore)
		}
		if got.IsAcceptable != (got.Score >= 4) {
			t.Fatalf("IsAcceptable = %v with score %d", got.IsAcceptable, got.Score)
		}
		switch got.Level {
		case kdf.LevelVeryWeak, kdf.LevelWeak, kdf.LevelMedium, kdf.LevelStrong:
		default:
			t.Fatalf("unknown level %q", got.Level)
		}
		if got.Entropy < 0 {
			t.Fatalf("negative entropy %f", got.Entropy)
		}
	})
}

// FuzzHKDFDerive asserts HKDF derivation is total and deterministic for any
// secret and salt that pass validation.
func FuzzHKDFDerive(f *testing.F) {
	f.Add("correct horse battery staple", []byte("0123456789abcdef"))
	f.Add("another secret!!", []byte("ffffffffffffffffffffffffffffffff"))

	d, err := kdf.NewHKDFDeriver(kdf.HKDFOptions{})
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, password string, salt []byte) {
		a, err := d.Derive(password, salt, 32)
		if err != nil {
			// Validation rejections are expected for arbitrary input.
			return
		}
		b, err := d.Derive(password, salt, 32)
		if err != nil {
			t.Fatalf("second derivation failed after first succeeded: %v", err)
		}
		if !bytes.Equal(a, b) {
			t.Fatal("derivation not deterministic")
		}
		if len(a) != 32 {
			t.Fatalf("derived %d bytes, want 32", len(a))
		}
	})
}
