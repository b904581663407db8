package emailsending

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// FileSink writes each mail as a text file, for development setups without
// an SMTP server.
type FileSink struct {
	dir string
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileSink{dir: dir}, nil
}

func (fs *FileSink) Send(to string, subject string, htmlBody string) error {
	text := fmt.Sprintf("To:      %s\nSubject: %s\nDate:    %s\n\n%s",
		to, subject, time.Now().UTC().Format(time.RFC3339), htmlBody)

	safeTo := unsafeFilenameChars.ReplaceAllString(to, "_")
	if safeTo == "" {
		safeTo = "recipient"
	}
	filename := fmt.Sprintf("%d-%s.txt", time.Now().UnixMilli(), safeTo)

	return os.WriteFile(filepath.Join(fs.dir, filename), []byte(text), 0o644)
}
