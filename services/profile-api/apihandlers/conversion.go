package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	mw "github.com/simionic-community/profiledb-backend/pkg/apihelpers/middlewares"
	emailsending "github.com/simionic-community/profiledb-backend/pkg/email-sending"
	emailtemplates "github.com/simionic-community/profiledb-backend/pkg/email-templates"
	usermanagement "github.com/simionic-community/profiledb-backend/pkg/user-management"
	umUtils "github.com/simionic-community/profiledb-backend/pkg/user-management/utils"
)

func (h *HttpEndpoints) AddConversionAPI(rg *gin.RouterGroup) {
	convGroup := rg.Group("/conversion")
	{
		convGroup.POST("/request", mw.RequirePayload(), h.requestConversion)
		convGroup.GET("/check/:token", h.checkConversionToken)
		convGroup.POST("/complete", mw.RequirePayload(), h.completeConversion)
	}
}

type RequestConversionReq struct {
	Email string `json:"email"`
}

// requestConversion issues a conversion link for a federated email. The
// response does not reveal whether a local account already exists for it.
func (h *HttpEndpoints) requestConversion(c *gin.Context) {
	var req RequestConversionReq
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

	token, _, err := usermanagement.RequestConversion(req.Email)
	if err != nil {
		if !errors.Is(err, usermanagement.ErrAccountExists) {
			slog.Error("failed to create conversion token", slog.String("error", err.Error()))
		} else {
			slog.Info("conversion requested for already converted account", slog.String("email", umUtils.BlurEmailAddress(req.Email)))
		}
	} else {
		email := req.Email
		link := strings.TrimSuffix(h.appRootURL, "/") + "/auth/convert/" + token
		go func() {
			body, tErr := emailtemplates.AccountConversionEmail(link)
			if tErr != nil {
				slog.Error("failed to render conversion email", slog.String("error", tErr.Error()))
				return
			}
			emailsending.SendEmailBestEffort(email, emailtemplates.SubjectAccountConversion, body)
		}()
	}

	randomWait(1, 4)
	c.JSON(http.StatusOK, gin.H{"message": "If the account is eligible, a conversion link has been sent."})
}

// checkConversionToken lets the completion form verify the link before
// showing its fields. The token is not consumed here.
func (h *HttpEndpoints) checkConversionToken(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token required"})
		return
	}

	record, err := usermanagement.CheckConversionToken(token)
	if err != nil {
		if errors.Is(err, usermanagement.ErrInvalidSecret) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid or expired conversion link."})
			return
		}
		slog.Error("failed to check conversion token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"email": record.Email,
	})
}

type CompleteConversionReq struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (h *HttpEndpoints) completeConversion(c *gin.Context) {
	var req CompleteConversionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token required"})
		return
	}

	if !umUtils.CheckDisplayName(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	req.Email = umUtils.SanitizeEmail(req.Email)
	if !umUtils.CheckEmailFormat(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid email is required"})
		return
	}

	if !umUtils.CheckPasswordFormat(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 8 characters"})
		return
	}

	profilesMigrated, user, err := usermanagement.CompleteConversion(req.Token, req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usermanagement.ErrInvalidSecret):
			randomWait(1, 4)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired conversion link."})
		case errors.Is(err, usermanagement.ErrAccountExists):
			c.JSON(http.StatusConflict, gin.H{"error": "an account with this email already exists"})
		default:
			slog.Error("failed to complete conversion", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		}
		return
	}

	slog.Info("account conversion completed",
		slog.String("ownerID", user.OwnerID),
		slog.Int64("profilesMigrated", profilesMigrated))
	c.JSON(http.StatusOK, gin.H{
		"message":          "account converted",
		"ownerId":          user.OwnerID,
		"profilesMigrated": profilesMigrated,
	})
}
