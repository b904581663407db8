package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/simionic-community/profiledb-backend/pkg/apihelpers/middlewares"
	jwthandling "github.com/simionic-community/profiledb-backend/pkg/jwt-handling"
	usermanagement "github.com/simionic-community/profiledb-backend/pkg/user-management"
	"github.com/simionic-community/profiledb-backend/pkg/user-management/legacyid"
	umUtils "github.com/simionic-community/profiledb-backend/pkg/user-management/utils"
)

func (h *HttpEndpoints) AddAuthAPI(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", mw.RequirePayload(), h.loginWithEmail)
		authGroup.POST("/register", mw.RequirePayload(), h.registerWithEmail)
	}

	// Endpoints reserved for the trusted web front end, which completes the
	// federated identity handshake itself and only forwards the verified
	// email and display name here.
	federatedGroup := authGroup.Group("/federated")
	federatedGroup.Use(mw.HasValidAPIKey(h.frontendAPIKeys))
	{
		federatedGroup.POST("/session", mw.RequirePayload(), h.federatedSession)
		federatedGroup.GET("/owner-id", h.getLegacyOwnerID)
	}
}

type LoginWithEmailReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *HttpEndpoints) loginWithEmail(c *gin.Context) {
	var req LoginWithEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email == "" || req.Password == "" {
		slog.Error("missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	session, err := usermanagement.AuthenticateLocal(req.Email, req.Password)
	if err != nil {
		// missing account and wrong password answer identically
		slog.Warn("failed login attempt", slog.String("email", umUtils.BlurEmailAddress(req.Email)))
		randomWait(1, 4)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := jwthandling.GenerateNewUserToken(session, h.tokenExpiresIn, h.tokenSignKey)
	if err != nil {
		slog.Error("failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("login successful", slog.String("ownerID", session.OwnerID))
	c.JSON(http.StatusOK, gin.H{
		"token": gin.H{
			"accessToken": token,
			"expiresIn":   h.tokenExpiresIn.Seconds(),
		},
		"user": gin.H{
			"email":   session.Email,
			"name":    session.DisplayName,
			"ownerId": session.OwnerID,
		},
	})
}

type RegisterWithEmailReq struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (h *HttpEndpoints) registerWithEmail(c *gin.Context) {
	var req RegisterWithEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !umUtils.CheckDisplayName(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	req.Email = umUtils.SanitizeEmail(req.Email)
	if !umUtils.CheckEmailFormat(req.Email) {
		slog.Error("invalid email format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid email is required"})
		return
	}

	if !umUtils.CheckPasswordFormat(req.Password) {
		slog.Error("invalid password format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 8 characters"})
		return
	}

	user, err := usermanagement.RegisterUser(req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, usermanagement.ErrAccountExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "an account with this email already exists"})
			return
		}
		slog.Error("failed to create user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	slog.Info("new account registered", slog.String("ownerID", user.OwnerID))
	c.JSON(http.StatusCreated, gin.H{
		"message": "account created",
		"ownerId": user.OwnerID,
	})
}

type FederatedSessionReq struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// federatedSession exchanges a verified (email, name) pair for a session
// token. The owner ID is derived from the email on every call and never
// stored.
func (h *HttpEndpoints) federatedSession(c *gin.Context) {
	var req FederatedSessionReq
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

	session := usermanagement.NewFederatedSession(req.Email, req.Name)

	token, err := jwthandling.GenerateNewUserToken(session, h.tokenExpiresIn, h.tokenSignKey)
	if err != nil {
		slog.Error("failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": gin.H{
			"accessToken": token,
			"expiresIn":   h.tokenExpiresIn.Seconds(),
		},
		"ownerId": session.OwnerID,
	})
}

func (h *HttpEndpoints) getLegacyOwnerID(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email parameter required"})
		return
	}

	ownerID := legacyid.DeriveOwnerID(umUtils.SanitizeEmail(email))
	c.JSON(http.StatusOK, gin.H{"ownerId": ownerID})
}
