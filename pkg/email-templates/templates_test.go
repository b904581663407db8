package emailtemplates

import (
	"strings"
	"testing"
)

func TestPasswordResetEmail(t *testing.T) {
	body, err := PasswordResetEmail("123456")
	if err != nil {
		t.Fatalf("PasswordResetEmail returned error: %v", err)
	}
	if !strings.Contains(body, "123456") {
		t.Error("rendered body does not contain the code")
	}
	if !strings.Contains(body, "15 minutes") {
		t.Error("rendered body does not mention the validity window")
	}
}

func TestAccountConversionEmail(t *testing.T) {
	link := "https://profiles.example.com/auth/convert/some-token"
	body, err := AccountConversionEmail(link)
	if err != nil {
		t.Fatalf("AccountConversionEmail returned error: %v", err)
	}
	if strings.Count(body, link) != 2 {
		t.Error("rendered body should contain the link as href and text")
	}
	if !strings.Contains(body, "24 hours") {
		t.Error("rendered body does not mention the validity window")
	}
}

func TestResolveTemplateInvalid(t *testing.T) {
	if _, err := ResolveTemplate("broken", "{{.unclosed", nil); err == nil {
		t.Error("expected error for unparsable template")
	}
}
