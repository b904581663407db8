package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	mw "github.com/simionic-community/profiledb-backend/pkg/apihelpers/middlewares"
	profileTypes "github.com/simionic-community/profiledb-backend/pkg/types/profile"
)

func (h *HttpEndpoints) AddProfileManagementAPI(rg *gin.RouterGroup) {
	profilesGroup := rg.Group("/profiles")
	profilesGroup.GET("", h.getAllProfiles)
	profilesGroup.GET("/:id", h.getProfile)

	authed := profilesGroup.Group("")
	authed.Use(mw.GetAndValidateUserJWT(h.tokenSignKey))
	{
		authed.POST("/:id", mw.RequirePayload(), h.saveProfile)
		authed.DELETE("/:id", h.deleteProfile)
	}
}

func (h *HttpEndpoints) getAllProfiles(c *gin.Context) {
	summaries, err := h.profileDBConn.GetAllProfiles()
	if err != nil {
		slog.Error("failed to fetch profiles", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": summaries})
}

func (h *HttpEndpoints) getProfile(c *gin.Context) {
	id := c.Param("id")

	p, err := h.profileDBConn.GetProfile(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		slog.Error("failed to fetch profile", slog.String("profileID", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// saveProfile upserts the full document under the URL id. The owner tag is
// always replaced with the session identity; clients cannot write a profile
// on behalf of somebody else.
func (h *HttpEndpoints) saveProfile(c *gin.Context) {
	id := c.Param("id")

	session, err := sessionFromContext(c)
	if err != nil {
		slog.Error("failed to read session", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var p profileTypes.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.profileDBConn.GetProfile(id)
	if err == nil {
		if existing.Owner.Id == nil || *existing.Owner.Id != session.OwnerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "not the owner of this profile"})
			return
		}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		slog.Error("failed to check existing profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	ownerID := session.OwnerID
	ownerName := session.DisplayName
	p.Owner = profileTypes.OwnerInfo{
		Id:   &ownerID,
		Name: &ownerName,
	}

	if err := h.profileDBConn.UpsertProfile(id, p); err != nil {
		slog.Error("failed to save profile", slog.String("profileID", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	slog.Info("profile saved", slog.String("profileID", id), slog.String("ownerID", session.OwnerID))
	c.JSON(http.StatusOK, gin.H{"message": "profile saved", "id": id})
}

func (h *HttpEndpoints) deleteProfile(c *gin.Context) {
	id := c.Param("id")

	session, err := sessionFromContext(c)
	if err != nil {
		slog.Error("failed to read session", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	deleted, err := h.profileDBConn.DeleteProfile(id, session.OwnerID)
	if err != nil {
		slog.Error("failed to delete profile", slog.String("profileID", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}
	if deleted < 1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	slog.Info("profile deleted", slog.String("profileID", id), slog.String("ownerID", session.OwnerID))
	c.JSON(http.StatusOK, gin.H{"message": "profile deleted"})
}
