package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
)

func signFor(secret, dataID, requestID, ts string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "id:%s;request-id:%s;ts:%s;", dataID, requestID, ts)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	const secret = "whsec_test"

	t.Run("valid signature", func(t *testing.T) {
		v1 := signFor(secret, "12345", "req-1", "1700000000")
		header := "ts=1700000000,v1=" + v1
		if err := VerifyWebhookSignature(secret, header, "req-1", "12345"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("header with spaces and extra fields", func(t *testing.T) {
		v1 := signFor(secret, "12345", "req-1", "1700000000")
		header := "alg=hs256, ts=1700000000, v1=" + v1
		if err := VerifyWebhookSignature(secret, header, "req-1", "12345"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("tampered data id", func(t *testing.T) {
		v1 := signFor(secret, "12345", "req-1", "1700000000")
		header := "ts=1700000000,v1=" + v1
		err := VerifyWebhookSignature(secret, header, "req-1", "99999")
		if !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		v1 := signFor("other-secret", "12345", "req-1", "1700000000")
		header := "ts=1700000000,v1=" + v1
		err := VerifyWebhookSignature(secret, header, "req-1", "12345")
		if !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		for _, header := range []string{"", "ts=1700000000", "v1=deadbeef", "garbage"} {
			if err := VerifyWebhookSignature(secret, header, "req-1", "12345"); !errors.Is(err, ErrInvalidSignature) {
				t.Fatalf("header %q: expected ErrInvalidSignature, got %v", header, err)
			}
		}
	})
}
