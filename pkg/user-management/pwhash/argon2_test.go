package pwhash

import (
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	passwords := []string{
		"correct horse battery staple",
		"p4ssw0rd!",
		"üñíçødé-påsswörd",
	}

	for _, pw := range passwords {
		hash, err := HashPassword(pw)
		if err != nil {
			t.Fatalf("HashPassword(%q) returned error: %v", pw, err)
		}
		if !strings.HasPrefix(hash, "$argon2id$") {
			t.Errorf("unexpected hash format: %q", hash)
		}

		match, err := ComparePasswordWithHash(hash, pw)
		if err != nil {
			t.Fatalf("ComparePasswordWithHash returned error: %v", err)
		}
		if !match {
			t.Errorf("password %q did not verify against its own hash", pw)
		}
	}
}

func TestCompareWrongPassword(t *testing.T) {
	hash, err := HashPassword("first password")
	if err != nil {
		t.Fatal(err)
	}

	match, err := ComparePasswordWithHash(hash, "second password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match {
		t.Error("different password verified as matching")
	}
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := HashPassword("same password")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashPassword("same password")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical, salt missing")
	}
}

func TestEmptyPasswordRejected(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestMalformedStoredHashIsMismatch(t *testing.T) {
	malformed := []string{
		"",
		"not a hash",
		"$argon2id$v=19$m=65536,t=4,p=1$short",
		"$argon2i$v=19$m=65536,t=4,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=65536,t=4,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=4,p=1$!!!$aGFzaA",
	}

	for _, h := range malformed {
		match, err := ComparePasswordWithHash(h, "whatever")
		if err != nil {
			t.Errorf("ComparePasswordWithHash(%q) returned error %v, want silent mismatch", h, err)
		}
		if match {
			t.Errorf("malformed hash %q verified as matching", h)
		}
	}
}
