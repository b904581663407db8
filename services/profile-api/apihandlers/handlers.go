package apihandlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	profileDB "github.com/simionic-community/profiledb-backend/pkg/db/profiledb"
	userDB "github.com/simionic-community/profiledb-backend/pkg/db/userdb"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	userDBConn      *userDB.UserDBService
	profileDBConn   *profileDB.ProfileDBService
	tokenSignKey    string
	tokenExpiresIn  time.Duration
	frontendAPIKeys []string
	appRootURL      string
}

func NewHTTPHandler(
	tokenSignKey string,
	tokenExpiresIn time.Duration,
	userDBConn *userDB.UserDBService,
	profileDBConn *profileDB.ProfileDBService,
	frontendAPIKeys []string,
	appRootURL string,
) *HttpEndpoints {
	return &HttpEndpoints{
		tokenSignKey:    tokenSignKey,
		tokenExpiresIn:  tokenExpiresIn,
		userDBConn:      userDBConn,
		profileDBConn:   profileDBConn,
		frontendAPIKeys: frontendAPIKeys,
		appRootURL:      appRootURL,
	}
}
