package signature_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/clubify/go-checkout-crypto/signature"
)

func TestWebhook_RoundTrip(t *testing.T) {
	payload := []byte(`{"event":"order.paid","id":"ord_123"}`)

	sig, err := signature.SignWebhook(payload, testSecret, signature.SHA256)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(sig, "sha256=") {
		t.Fatalf("unexpected header shape: %q", sig)
	}

	ok, err := signature.VerifyWebhook(payload, sig, testSecret)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("own signature failed verification")
	}
}

func TestSignWebhook_DefaultsToSHA256(t *testing.T) {
	payload := []byte("default algorithm")
	sig, err := signature.SignWebhook(payload, testSecret, "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(sig, "sha256=") {
		t.Fatalf("got %q, want sha256= prefix", sig)
	}
}

func TestVerifyWebhook_MalformedHeadersAreFalseNotError(t *testing.T) {
	payload := []byte("payload")
	valid, _ := signature.SignWebhook(payload, testSecret, signature.SHA256)

	tests := []struct {
		name string
		sig  string
	}{
		{"empty", ""},
		{"no separator", "sha256deadbeef"},
		{"missing digest", "sha256="},
		{"missing algorithm", "=deadbeef"},
		{"non-hex digest", "sha256=XYZ123"},
		{"uppercase hex digest", "sha256=" + strings.ToUpper(strings.TrimPrefix(valid, "sha256="))},
		{"unsupported algorithm", "sha3=deadbeef"},
		{"trailing junk", valid + " "},
		{"digest of wrong payload", "sha256=" + strings.Repeat("ab", 32)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := signature.VerifyWebhook(payload, tt.sig, testSecret)
			if err != nil {
				t.Fatalf("verification must not error: %v", err)
			}
			if ok {
				t.Fatal("malformed header verified")
			}
		})
	}
}

func TestVerifyWebhook_AlgorithmSegmentIsCaseInsensitive(t *testing.T) {
	payload := []byte("case insensitive algorithm")
	sig, _ := signature.SignWebhook(payload, testSecret, signature.SHA256)

	upper := "SHA256=" + strings.TrimPrefix(sig, "sha256=")
	ok, err := signature.VerifyWebhook(payload, upper, testSecret)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("uppercase algorithm segment rejected")
	}
}

func TestVerifyWebhook_WrongSecret(t *testing.T) {
	payload := []byte("payload")
	sig, _ := signature.SignWebhook(payload, testSecret, signature.SHA256)

	ok, err := signature.VerifyWebhook(payload, sig, []byte("a different shared secret!!"))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("signature verified under the wrong secret")
	}
}

func TestVerifyWebhook_BadSecretIsError(t *testing.T) {
	// An unusable secret is the caller's bug, not a verification outcome.
	_, err := signature.VerifyWebhook([]byte("payload"), "sha256=deadbeef", nil)
	if !errors.Is(err, signature.ErrEmptyKey) {
		t.Fatalf("got %v, want ErrEmptyKey", err)
	}
}

func TestWebhook_LegacyAlgorithms(t *testing.T) {
	// sha1/md5 senders remain verifiable for compatibility.
	payload := []byte("legacy sender")
	for _, algorithm := range []signature.Algorithm{signature.SHA1, signature.MD5} {
		sig, err := signature.SignWebhook(payload, testSecret, algorithm)
		if err != nil {
			t.Fatalf("%s: %v", algorithm, err)
		}
		ok, err := signature.VerifyWebhook(payload, sig, testSecret)
		if err != nil || !ok {
			t.Fatalf("%s: ok=%v err=%v", algorithm, ok, err)
		}
	}
}
