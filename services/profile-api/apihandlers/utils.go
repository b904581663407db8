package apihandlers

import (
	"errors"
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"

	jwthandling "github.com/simionic-community/profiledb-backend/pkg/jwt-handling"
	userTypes "github.com/simionic-community/profiledb-backend/pkg/user-management/types"
)

// randomWait delays error responses on authentication-sensitive paths to
// discourage enumeration and click-flooding.
func randomWait(minTimeSec int, maxTimeSec int) {
	time.Sleep(time.Duration(rand.Intn(maxTimeSec-minTimeSec)+minTimeSec) * time.Second)
}

func sessionFromContext(c *gin.Context) (userTypes.Session, error) {
	val, ok := c.Get("validatedToken")
	if !ok {
		return userTypes.Session{}, errors.New("no validated token in context")
	}
	claims, ok := val.(*jwthandling.UserClaims)
	if !ok {
		return userTypes.Session{}, errors.New("unexpected token type in context")
	}
	return claims.Session(), nil
}
