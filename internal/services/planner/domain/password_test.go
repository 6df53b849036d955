package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPasswordProducesPHCFormat(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("expected argon2id prefix, got %q", hash)
	}
	if parts := strings.Split(hash, "$"); len(parts) != 6 {
		t.Fatalf("expected 6 hash segments, got %d", len(parts))
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	t.Parallel()

	if _, err := HashPassword("  "); err == nil {
		t.Fatal("expected error for blank password")
	}
}

func TestVerifyPasswordRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("tulle-and-taffeta")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := VerifyPassword(hash, "tulle-and-taffeta"); err != nil {
		t.Fatalf("verify password: %v", err)
	}
}

func TestVerifyPasswordMismatch(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("tulle-and-taffeta")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	err = VerifyPassword(hash, "organza")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "wrong algorithm", encoded: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$a2V5"},
		{name: "missing segments", encoded: "$argon2id$v=19$m=65536,t=1,p=4"},
		{name: "bad salt encoding", encoded: "$argon2id$v=19$m=65536,t=1,p=4$!!!$a2V5"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if err := VerifyPassword(tc.encoded, "whatever"); err == nil {
				t.Fatal("expected malformed hash error")
			}
		})
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct hashes for distinct salts")
	}
}
