package emailtemplates

import (
	"bytes"
	"fmt"
	"text/template"
)

const (
	SubjectPasswordReset     = "Password Reset Code - Simionic G1000 Profile DB"
	SubjectAccountConversion = "Account Conversion - Simionic G1000 Profile DB"
)

const passwordResetTemplate = `<h2>Password Reset</h2>
<p>Your password reset code is:</p>
<h1 style="letter-spacing: 0.3em; font-family: monospace;">{{.code}}</h1>
<p>This code will expire in 15 minutes.</p>
<p>If you did not request this reset, you can safely ignore this email.</p>`

const accountConversionTemplate = `<h2>Account Conversion</h2>
<p>You requested to convert your Microsoft account to a local account.</p>
<p>Click the link below to complete the conversion:</p>
<p><a href="{{.link}}">{{.link}}</a></p>
<p>This link will expire in 24 hours.</p>
<p>If you did not request this, you can safely ignore this email.</p>`

func ResolveTemplate(tempName string, templateDef string, contentInfos map[string]string) (content string, err error) {
	tmpl, err := template.New(tempName).Parse(templateDef)
	if err != nil {
		return "", fmt.Errorf("error when parsing template %s: %v", tempName, err)
	}
	var tpl bytes.Buffer

	if err := tmpl.Execute(&tpl, contentInfos); err != nil {
		return "", fmt.Errorf("error during executing template %s: %v", tempName, err)
	}
	return tpl.String(), nil
}

// PasswordResetEmail renders the reset-code mail body. The code is the only
// place outside the store where the plaintext secret exists.
func PasswordResetEmail(code string) (string, error) {
	return ResolveTemplate("password-reset", passwordResetTemplate, map[string]string{
		"code": code,
	})
}

// AccountConversionEmail renders the conversion-link mail body.
func AccountConversionEmail(link string) (string, error) {
	return ResolveTemplate("account-conversion", accountConversionTemplate, map[string]string{
		"link": link,
	})
}
