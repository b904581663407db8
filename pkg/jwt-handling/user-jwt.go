package jwthandling

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	userTypes "github.com/simionic-community/profiledb-backend/pkg/user-management/types"
)

// Information a session token encodes. SessionKind records whether OwnerID
// was derived from the email (federated) or read from the account record
// (local).
type UserClaims struct {
	OwnerID     string                `json:"owner_id,omitempty"`
	SessionKind userTypes.SessionKind `json:"session_kind,omitempty"`
	DisplayName string                `json:"display_name,omitempty"`
	jwt.RegisteredClaims
}

func GenerateNewUserToken(
	session userTypes.Session,
	expiresIn time.Duration,
	secretKey string,
) (tokenString string, err error) {
	claims := UserClaims{
		session.OwnerID,
		session.Kind,
		session.DisplayName,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   session.Email,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString([]byte(secretKey))
	return
}

func ValidateUserToken(tokenString string, secretKey string) (claims *UserClaims, valid bool, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if token == nil {
		return
	}
	claims, valid = token.Claims.(*UserClaims)
	valid = valid && token.Valid
	return
}

// Session reconstructs the request session from validated claims.
func (c *UserClaims) Session() userTypes.Session {
	return userTypes.Session{
		Kind:        c.SessionKind,
		Email:       c.Subject,
		DisplayName: c.DisplayName,
		OwnerID:     c.OwnerID,
	}
}
