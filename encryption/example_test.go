package encryption_test

import (
	"fmt"
	"log"

	"github.com/clubify/go-checkout-crypto/encryption"
)

// Example_basicUsage demonstrates the simplest encrypt / decrypt workflow.
func Example_basicUsage() {
	// Generate a random 32-byte key (returned base64-encoded).
	key, err := encryption.GenerateKey(32)
	if err != nil {
		log.Fatal(err)
	}

	enc, err := encryption.NewAESGCM([]byte(key))
	if err != nil {
		log.Fatal(err)
	}

	envelope, err := enc.EncryptString("Hello, World!")
	if err != nil {
		log.Fatal(err)
	}

	plaintext, err := enc.DecryptString(envelope)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(plaintext)
	// Output: Hello, World!
}

// Example_passwordBased shows the password-based convenience flow.  The
// 16-byte salt is embedded in the envelope, so only the password is needed
// to decrypt.
func Example_passwordBased() {
	envelope, err := encryption.EncryptStringWithPassword("card token", "correct horse battery")
	if err != nil {
		log.Fatal(err)
	}

	plaintext, err := encryption.DecryptStringWithPassword(envelope, "correct horse battery")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(plaintext)
	// Output: card token
}

// Example_additionalAuthenticatedData binds unencrypted context to the
// envelope; decryption fails unless the identical AAD is presented.
func Example_additionalAuthenticatedData() {
	key, _ := encryption.GenerateKey(32)
	enc, _ := encryption.NewAESGCM([]byte(key))

	envelope, _ := enc.Encrypt([]byte("order payload"), encryption.WithAAD([]byte("order-1001")))

	// Correct AAD succeeds.
	plaintext, err := enc.Decrypt(envelope, encryption.WithAAD([]byte("order-1001")))
	fmt.Println(string(plaintext), err)

	// Wrong AAD is an authentication failure.
	_, err = enc.Decrypt(envelope, encryption.WithAAD([]byte("order-1002")))
	fmt.Println(err)
	// Output:
	// order payload <nil>
	// encryption: authentication failed
}

// Example_keyRotation decrypts old envelopes while encrypting with the new key.
func Example_keyRotation() {
	oldKey, _ := encryption.GenerateKey(32)
	newKey, _ := encryption.GenerateKey(32)

	oldEnc, _ := encryption.NewAESGCM([]byte(oldKey))
	envelope, _ := oldEnc.EncryptString("pre-rotation value")

	rotated, _ := encryption.NewAESGCM([]byte(newKey), encryption.WithPreviousKeys([]byte(oldKey)))
	plaintext, err := rotated.DecryptString(envelope)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(plaintext)
	// Output: pre-rotation value
}
