package utils

import (
	"testing"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	t.Parallel()

	signed, err := SignSessionToken("secret", "token-123")
	if err != nil {
		t.Fatalf("SignSessionToken error: %v", err)
	}

	token, err := ParseSessionToken("secret", signed)
	if err != nil {
		t.Fatalf("ParseSessionToken error: %v", err)
	}
	if token != "token-123" {
		t.Fatalf("token mismatch: got %q want %q", token, "token-123")
	}
}

func TestParseSessionToken_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signed, err := SignSessionToken("secret", "token-123")
	if err != nil {
		t.Fatalf("SignSessionToken error: %v", err)
	}

	if _, err := ParseSessionToken("other-secret", signed); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestParseSessionToken_RejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := ParseSessionToken("secret", "not-a-jwt"); err == nil {
		t.Fatal("expected error for a malformed cookie value")
	}
}
