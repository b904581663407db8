package emailsending

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileSinkWritesMail(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileSink(dir)
	if err != nil {
		t.Fatalf("NewFileSink returned error: %v", err)
	}

	if err := fs.Send("user@example.com", "Test Subject", "<p>hello</p>"); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 file, got %d", len(entries))
	}

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	text := string(content)
	if !strings.Contains(text, "To:      user@example.com") {
		t.Errorf("missing recipient header in %q", text)
	}
	if !strings.Contains(text, "<p>hello</p>") {
		t.Errorf("missing body in %q", text)
	}
	if !strings.Contains(entries[0].Name(), "user_example_com") {
		t.Errorf("unexpected filename %q", entries[0].Name())
	}
}
