// Package emailsending sends transactional mails either through the SMTP
// connection pool or, for local development, into a directory on disk.
// Callers that serve zero-disclosure endpoints must treat failures as
// best-effort-logged and never surface them to the end user.
package emailsending

import (
	"errors"
	"log/slog"

	smtpclient "github.com/simionic-community/profiledb-backend/pkg/smtp-client"
)

const (
	EMAIL_PROVIDER_SMTP = "smtp"
	EMAIL_PROVIDER_FILE = "file"
)

var (
	smtpClients *smtpclient.SmtpClients
	fileSink    *FileSink
)

// InitSmtpSender connects the SMTP pool from a server list config file.
func InitSmtpSender(serverConfigPath string) error {
	serverList := smtpclient.SmtpServerList{}
	if err := serverList.ReadFromFile(serverConfigPath); err != nil {
		return err
	}

	sc, err := smtpclient.NewSmtpClients(serverList)
	if err != nil {
		return err
	}
	smtpClients = sc
	fileSink = nil
	return nil
}

// InitFileSender routes all mails into outDir instead of SMTP.
func InitFileSender(outDir string) error {
	fs, err := NewFileSink(outDir)
	if err != nil {
		return err
	}
	fileSink = fs
	smtpClients = nil
	return nil
}

// SendEmail delivers a single HTML mail through whichever sender was
// initialized.
func SendEmail(to string, subject string, htmlBody string) error {
	if fileSink != nil {
		return fileSink.Send(to, subject, htmlBody)
	}
	if smtpClients != nil {
		return smtpClients.SendMail([]string{to}, subject, htmlBody, nil)
	}
	return errors.New("email sending not initialized")
}

// SendEmailBestEffort logs delivery failures instead of returning them.
// Used on zero-disclosure paths where a transport error must not change the
// response.
func SendEmailBestEffort(to string, subject string, htmlBody string) {
	if err := SendEmail(to, subject, htmlBody); err != nil {
		slog.Error("failed to send email", slog.String("subject", subject), slog.String("error", err.Error()))
	}
}
