package utils

import (
	"strconv"
	"testing"
)

func TestSanitizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already normalized",
			input:    "user@example.com",
			expected: "user@example.com",
		},
		{
			name:     "uppercase",
			input:    "User@Example.COM",
			expected: "user@example.com",
		},
		{
			name:     "surrounding whitespace",
			input:    "  user@example.com \n",
			expected: "user@example.com",
		},
		{
			name:     "uppercase and whitespace",
			input:    " USER@EXAMPLE.COM\r\n",
			expected: "user@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeEmail(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeEmail(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCheckEmailFormat(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.co.uk",
		"o'brien@example.ie",
		"user+tag@example.com",
	}
	for _, e := range valid {
		if !CheckEmailFormat(e) {
			t.Errorf("expected %q to be valid", e)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@localhost",
		"user @example.com",
	}
	for _, e := range invalid {
		if CheckEmailFormat(e) {
			t.Errorf("expected %q to be invalid", e)
		}
	}
}

func TestCheckPasswordFormat(t *testing.T) {
	if CheckPasswordFormat("short7!") {
		t.Error("7 characters should be rejected")
	}
	if !CheckPasswordFormat("8chars!!") {
		t.Error("8 characters should be accepted")
	}
	long := make([]byte, PASSWORD_MAX_LEN+1)
	for i := range long {
		long[i] = 'a'
	}
	if CheckPasswordFormat(string(long)) {
		t.Error("over-long password should be rejected")
	}
}

func TestCheckDisplayName(t *testing.T) {
	if CheckDisplayName("") || CheckDisplayName("   ") {
		t.Error("empty or whitespace-only names should be rejected")
	}
	if !CheckDisplayName("Jo") {
		t.Error("non-empty name should be accepted")
	}
}

func TestGenerateResetCodeRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateResetCode()
		if err != nil {
			t.Fatalf("GenerateResetCode returned error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 digits, got %q", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric", code)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d out of range", n)
		}
	}
}

func TestGenerateConversionTokenUnique(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		tok := GenerateConversionToken()
		if tok == "" {
			t.Fatal("empty token")
		}
		if _, dup := seen[tok]; dup {
			t.Fatalf("duplicate token %q", tok)
		}
		seen[tok] = struct{}{}
	}
}

func TestBlurEmailAddress(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "user@example.com", expected: "u****@example.com"},
		{input: "", expected: "****@**"},
		{input: "@example.com", expected: "****@**"},
	}
	for _, tt := range tests {
		if got := BlurEmailAddress(tt.input); got != tt.expected {
			t.Errorf("BlurEmailAddress(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
