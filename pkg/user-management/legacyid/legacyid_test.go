package legacyid

import (
	"regexp"
	"testing"
)

// Known-answer vectors computed with the historical reference parameters.
// If any of these fail, the derivation no longer matches the IDs stored on
// existing profiles.
func TestDeriveOwnerIDGoldenVectors(t *testing.T) {
	tests := []struct {
		email    string
		expected string
	}{
		{
			email:    "user@example.com",
			expected: "04BC58A47BCEB73B9AE8FE54D0D4E2E98559DF7970A9839A",
		},
		{
			email:    "pilot@example.com",
			expected: "1276A2101AA81D283A9841AC77A029E50B4E41856BFE89DF",
		},
		{
			email:    "someone@flysim.example",
			expected: "83340E7E5769140D79481A90D7E47E6C912897769213B642",
		},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got := DeriveOwnerID(tt.email)
			if got != tt.expected {
				t.Errorf("DeriveOwnerID(%q) = %q, want %q", tt.email, got, tt.expected)
			}
		})
	}
}

func TestDeriveOwnerIDDeterministic(t *testing.T) {
	a := DeriveOwnerID("user@example.com")
	b := DeriveOwnerID("user@example.com")
	if a != b {
		t.Errorf("derivation not deterministic: %q != %q", a, b)
	}
}

func TestDeriveOwnerIDFormat(t *testing.T) {
	id := DeriveOwnerID("format-check@example.com")
	if len(id) != 48 {
		t.Errorf("expected 48 hex characters, got %d", len(id))
	}
	if !regexp.MustCompile(`^[0-9A-F]{48}$`).MatchString(id) {
		t.Errorf("expected uppercase hex, got %q", id)
	}
}

func TestDeriveOwnerIDCaseSensitivity(t *testing.T) {
	// The deriver does not normalize; casing is the caller's job.
	if DeriveOwnerID("User@example.com") == DeriveOwnerID("user@example.com") {
		t.Error("expected different IDs for differently cased input")
	}
}
