package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/simionic-community/profiledb-backend/pkg/apihelpers/middlewares"
	emailsending "github.com/simionic-community/profiledb-backend/pkg/email-sending"
	emailtemplates "github.com/simionic-community/profiledb-backend/pkg/email-templates"
	usermanagement "github.com/simionic-community/profiledb-backend/pkg/user-management"
	umUtils "github.com/simionic-community/profiledb-backend/pkg/user-management/utils"
)

func (h *HttpEndpoints) AddPasswordResetAPI(rg *gin.RouterGroup) {
	resetGroup := rg.Group("/password-reset")
	{
		resetGroup.POST("/initiate", mw.RequirePayload(), h.initiatePasswordReset)
		resetGroup.POST("/reset", mw.RequirePayload(), h.resetPassword)
	}
}

type InitiatePasswordResetReq struct {
	Email string `json:"email"`
}

// initiatePasswordReset always answers 200 with the same message; whether an
// account exists is only observable through the mailbox.
func (h *HttpEndpoints) initiatePasswordReset(c *gin.Context) {
	var req InitiatePasswordResetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Email = umUtils.SanitizeEmail(req.Email)
	if !umUtils.CheckEmailFormat(req.Email) {
		slog.Error("invalid email format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid email is required"})
		return
	}

	code, err := usermanagement.InitiatePasswordReset(req.Email)
	if err != nil {
		if !errors.Is(err, usermanagement.ErrUnknownAccount) {
			slog.Error("failed to initiate password reset", slog.String("error", err.Error()))
		} else {
			slog.Info("password reset requested for unknown account", slog.String("email", umUtils.BlurEmailAddress(req.Email)))
		}
	} else {
		email := req.Email
		go func() {
			body, tErr := emailtemplates.PasswordResetEmail(code)
			if tErr != nil {
				slog.Error("failed to render reset email", slog.String("error", tErr.Error()))
				return
			}
			emailsending.SendEmailBestEffort(email, emailtemplates.SubjectPasswordReset, body)
		}()
	}

	randomWait(1, 4)
	c.JSON(http.StatusOK, gin.H{"message": "If an account exists, a reset code has been sent."})
}

type ResetPasswordReq struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

func (h *HttpEndpoints) resetPassword(c *gin.Context) {
	var req ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Email = umUtils.SanitizeEmail(req.Email)
	if !umUtils.CheckEmailFormat(req.Email) || req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	if !umUtils.CheckPasswordFormat(req.NewPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 8 characters"})
		return
	}

	if err := usermanagement.CompletePasswordReset(req.Email, req.Code, req.NewPassword); err != nil {
		if errors.Is(err, usermanagement.ErrInvalidSecret) {
			randomWait(1, 4)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired code."})
			return
		}
		slog.Error("failed to reset password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	slog.Info("password reset completed", slog.String("email", umUtils.BlurEmailAddress(req.Email)))
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
