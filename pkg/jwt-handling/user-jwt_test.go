package jwthandling

import (
	"testing"
	"time"

	userTypes "github.com/simionic-community/profiledb-backend/pkg/user-management/types"
)

func TestUserTokenRoundTrip(t *testing.T) {
	session := userTypes.Session{
		Kind:        userTypes.SessionKindLocal,
		Email:       "user@example.com",
		DisplayName: "Test Pilot",
		OwnerID:     "0f0e7f60-1c12-4f58-bf97-aa94d4ab9a90",
	}

	token, err := GenerateNewUserToken(session, time.Minute, "test-key")
	if err != nil {
		t.Fatalf("GenerateNewUserToken returned error: %v", err)
	}

	claims, valid, err := ValidateUserToken(token, "test-key")
	if err != nil || !valid {
		t.Fatalf("expected valid token, got valid=%v err=%v", valid, err)
	}

	got := claims.Session()
	if got != session {
		t.Errorf("round-tripped session = %+v, want %+v", got, session)
	}
}

func TestUserTokenWrongKey(t *testing.T) {
	session := userTypes.Session{
		Kind:    userTypes.SessionKindFederated,
		Email:   "user@example.com",
		OwnerID: "04BC58A47BCEB73B9AE8FE54D0D4E2E98559DF7970A9839A",
	}

	token, err := GenerateNewUserToken(session, time.Minute, "right-key")
	if err != nil {
		t.Fatal(err)
	}

	_, valid, _ := ValidateUserToken(token, "wrong-key")
	if valid {
		t.Error("token validated with the wrong key")
	}
}

func TestUserTokenExpired(t *testing.T) {
	session := userTypes.Session{
		Kind:    userTypes.SessionKindLocal,
		Email:   "user@example.com",
		OwnerID: "some-owner-id",
	}

	token, err := GenerateNewUserToken(session, -time.Minute, "test-key")
	if err != nil {
		t.Fatal(err)
	}

	_, valid, err := ValidateUserToken(token, "test-key")
	if valid || err == nil {
		t.Error("expired token should not validate")
	}
}

func TestSessionKindPreserved(t *testing.T) {
	federated := userTypes.Session{
		Kind:    userTypes.SessionKindFederated,
		Email:   "fed@example.com",
		OwnerID: "derived-id",
	}
	token, err := GenerateNewUserToken(federated, time.Minute, "k")
	if err != nil {
		t.Fatal(err)
	}
	claims, valid, err := ValidateUserToken(token, "k")
	if err != nil || !valid {
		t.Fatal("expected valid token")
	}
	if claims.SessionKind != userTypes.SessionKindFederated {
		t.Errorf("session kind = %q, want %q", claims.SessionKind, userTypes.SessionKindFederated)
	}
}
