package usermanagement

import (
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	profileDB "github.com/simionic-community/profiledb-backend/pkg/db/profiledb"
	userDB "github.com/simionic-community/profiledb-backend/pkg/db/userdb"
	"github.com/simionic-community/profiledb-backend/pkg/user-management/legacyid"
	"github.com/simionic-community/profiledb-backend/pkg/user-management/pwhash"
	userTypes "github.com/simionic-community/profiledb-backend/pkg/user-management/types"
	umUtils "github.com/simionic-community/profiledb-backend/pkg/user-management/utils"
)

var (
	userDBService    *userDB.UserDBService
	profileDBService *profileDB.ProfileDBService
)

func Init(
	uDBService *userDB.UserDBService,
	pDBService *profileDB.ProfileDBService,
) {
	userDBService = uDBService
	profileDBService = pDBService
}

// RegisterUser creates a local account. Email uniqueness is left to the
// store's unique index so concurrent registrations cannot race past a
// read-then-write check.
func RegisterUser(email string, name string, password string) (userTypes.User, error) {
	email = umUtils.SanitizeEmail(email)

	passwordHash, err := pwhash.HashPassword(password)
	if err != nil {
		return userTypes.User{}, err
	}

	user, err := userDBService.AddUser(email, name, passwordHash)
	if err != nil {
		if errors.Is(err, userDB.ErrEmailAlreadyRegistered) {
			return userTypes.User{}, ErrAccountExists
		}
		return userTypes.User{}, err
	}
	return user, nil
}

// AuthenticateLocal checks email/password and returns a session carrying the
// account's stored owner ID. A missing account and a wrong password produce
// the same error.
func AuthenticateLocal(email string, password string) (userTypes.Session, error) {
	email = umUtils.SanitizeEmail(email)

	user, err := userDBService.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return userTypes.Session{}, ErrInvalidCredentials
		}
		return userTypes.Session{}, err
	}

	match, err := pwhash.ComparePasswordWithHash(user.PasswordHash, password)
	if err != nil {
		return userTypes.Session{}, err
	}
	if !match {
		return userTypes.Session{}, ErrInvalidCredentials
	}

	return userTypes.Session{
		Kind:        userTypes.SessionKindLocal,
		Email:       user.Email,
		DisplayName: user.Name,
		OwnerID:     user.OwnerID,
	}, nil
}

// NewFederatedSession attaches the derived legacy owner ID to a session for
// an email the federated identity provider has already verified. Nothing is
// persisted; the ID is recomputed on every sign-in.
func NewFederatedSession(email string, displayName string) userTypes.Session {
	email = umUtils.SanitizeEmail(email)
	return userTypes.Session{
		Kind:        userTypes.SessionKindFederated,
		Email:       email,
		DisplayName: displayName,
		OwnerID:     legacyid.DeriveOwnerID(email),
	}
}

// InitiatePasswordReset issues a 6-digit reset code for an existing account
// and returns the plaintext code for the notification email. Returns
// ErrUnknownAccount for unknown emails; the handler keeps the response
// zero-disclosure.
func InitiatePasswordReset(email string) (code string, err error) {
	email = umUtils.SanitizeEmail(email)

	if _, err = userDBService.GetUserByEmail(email); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrUnknownAccount
		}
		return "", err
	}

	code, err = umUtils.GenerateResetCode()
	if err != nil {
		return "", err
	}
	if _, err = userDBService.AddSecret(userDB.ResetCodes, email, code); err != nil {
		return "", err
	}
	return code, nil
}

// CompletePasswordReset consumes the reset code and rotates the password.
// Code validation and marking-used are one atomic store operation.
func CompletePasswordReset(email string, code string, newPassword string) error {
	email = umUtils.SanitizeEmail(email)

	if _, err := userDBService.GetUserByEmail(email); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInvalidSecret
		}
		return err
	}

	ok, err := userDBService.ConsumeSecret(userDB.ResetCodes, email, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidSecret
	}

	newHash, err := pwhash.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return userDBService.UpdatePassword(email, newHash)
}

// RequestConversion issues a conversion token for a federated email that has
// no local account yet. Returns ErrAccountExists when one does; the handler
// hides that behind the zero-disclosure response.
func RequestConversion(email string) (token string, expiresAt time.Time, err error) {
	email = umUtils.SanitizeEmail(email)

	_, err = userDBService.GetUserByEmail(email)
	if err == nil {
		return "", time.Time{}, ErrAccountExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", time.Time{}, err
	}

	token = umUtils.GenerateConversionToken()
	expiresAt, err = userDBService.AddSecret(userDB.ConversionTokens, email, token)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// CheckConversionToken reports whether a token is still valid, without
// consuming it. Used by the completion form before showing its fields.
func CheckConversionToken(token string) (userTypes.SingleUseSecret, error) {
	record, err := userDBService.PeekSecret(userDB.ConversionTokens, token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return userTypes.SingleUseSecret{}, ErrInvalidSecret
		}
		return userTypes.SingleUseSecret{}, err
	}
	return record, nil
}

// CompleteConversion moves a federated user to a local account:
// conflict check, atomic token consumption, account creation with a fresh
// random owner ID, then bulk reassignment of all profiles tagged with the
// legacy derived ID. The consumption filter includes the email, so a token
// replayed against a different address fails as "invalid" and stays
// unconsumed for a retry with the correct one.
//
// There is no rollback: if profile reassignment fails after the account was
// created, the new account exists with un-migrated content and needs manual
// remediation. No distributed transaction is attempted.
func CompleteConversion(token string, email string, name string, password string) (profilesMigrated int64, user userTypes.User, err error) {
	email = umUtils.SanitizeEmail(email)

	_, err = userDBService.GetUserByEmail(email)
	if err == nil {
		return 0, userTypes.User{}, ErrAccountExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, userTypes.User{}, err
	}

	ok, err := userDBService.ConsumeSecret(userDB.ConversionTokens, email, token)
	if err != nil {
		return 0, userTypes.User{}, err
	}
	if !ok {
		return 0, userTypes.User{}, ErrInvalidSecret
	}

	oldOwnerID := legacyid.DeriveOwnerID(email)

	passwordHash, err := pwhash.HashPassword(password)
	if err != nil {
		return 0, userTypes.User{}, err
	}

	user, err = userDBService.AddUser(email, name, passwordHash)
	if err != nil {
		if errors.Is(err, userDB.ErrEmailAlreadyRegistered) {
			// lost a race against a concurrent registration; the token is
			// already spent, which the manual-remediation posture accepts
			return 0, userTypes.User{}, ErrAccountExists
		}
		return 0, userTypes.User{}, err
	}

	profilesMigrated, err = profileDBService.ReassignOwner(oldOwnerID, user.OwnerID, user.Name)
	if err != nil {
		slog.Error("profile reassignment failed after account creation, manual remediation needed",
			slog.String("email", umUtils.BlurEmailAddress(email)),
			slog.String("oldOwnerID", oldOwnerID),
			slog.String("newOwnerID", user.OwnerID),
			slog.String("error", err.Error()))
		return 0, user, err
	}
	return profilesMigrated, user, nil
}
