package userdb

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	userTypes "github.com/simionic-community/profiledb-backend/pkg/user-management/types"
)

// SecretKind parameterizes the single-use timed secret lifecycle. Reset codes
// and conversion tokens share one implementation and differ only in
// collection, validity window and whether the stored secret is hashed.
type SecretKind struct {
	collectionName string
	ttl            time.Duration
	hashedStorage  bool
}

var (
	ResetCodes = SecretKind{
		collectionName: COLLECTION_NAME_PASSWORD_RESET_CODES,
		ttl:            15 * time.Minute,
		hashedStorage:  true,
	}
	ConversionTokens = SecretKind{
		collectionName: COLLECTION_NAME_CONVERSION_TOKENS,
		ttl:            24 * time.Hour,
		hashedStorage:  false,
	}
)

func (k SecretKind) TTL() time.Duration {
	return k.ttl
}

func (k SecretKind) storedForm(secret string) string {
	if !k.hashedStorage {
		return secret
	}
	h := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(h[:])
}

func (dbService *UserDBService) CreateIndexesForSecretKind(kind SecretKind) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionForSecretKind(kind).Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "email", Value: 1},
					{Key: "secret", Value: 1},
				},
			},
			{
				Keys: bson.D{
					{Key: "expiresAt", Value: 1},
				},
				Options: options.Index().SetExpireAfterSeconds(0),
			},
		},
	)
	return err
}

// AddSecret persists a fresh unused record for the plaintext secret and
// returns its expiry. The plaintext itself is never stored for hashed kinds.
func (dbService *UserDBService) AddSecret(kind SecretKind, email string, secret string) (expiresAt time.Time, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	record := userTypes.SingleUseSecret{
		Email:     email,
		Secret:    kind.storedForm(secret),
		ExpiresAt: time.Now().Add(kind.ttl),
		Used:      false,
	}
	_, err = dbService.collectionForSecretKind(kind).InsertOne(ctx, record)
	return record.ExpiresAt, err
}

// ConsumeSecret finds a matching unused, unexpired record and marks it used
// in a single FindOneAndUpdate. Two concurrent calls with the same secret can
// therefore never both succeed. A miss reports nothing about whether the
// record is wrong, expired or already used.
func (dbService *UserDBService) ConsumeSecret(kind SecretKind, email string, secret string) (bool, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"email":     email,
		"secret":    kind.storedForm(secret),
		"expiresAt": bson.M{"$gt": time.Now()},
		"used":      false,
	}

	res := dbService.collectionForSecretKind(kind).FindOneAndUpdate(
		ctx,
		filter,
		bson.M{"$set": bson.M{"used": true}},
	)
	if err := res.Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// PeekSecret returns a still valid record without consuming it. Only usable
// for kinds that store the secret in plain form (the secret is the lookup
// key); the conversion completion form uses this to pre-check its token.
func (dbService *UserDBService) PeekSecret(kind SecretKind, secret string) (userTypes.SingleUseSecret, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"secret":    kind.storedForm(secret),
		"expiresAt": bson.M{"$gt": time.Now()},
		"used":      false,
	}

	var record userTypes.SingleUseSecret
	err := dbService.collectionForSecretKind(kind).FindOne(ctx, filter).Decode(&record)
	return record, err
}
