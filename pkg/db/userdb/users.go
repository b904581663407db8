package userdb

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	userTypes "github.com/simionic-community/profiledb-backend/pkg/user-management/types"
)

var ErrEmailAlreadyRegistered = errors.New("email already registered")

func (dbService *UserDBService) CreateIndexesForUsers() error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionUsers().Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "email", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{
					{Key: "ownerId", Value: 1},
				},
			},
		},
	)
	return err
}

// AddUser inserts a new account with a freshly generated random owner ID.
// Email uniqueness is enforced by the unique index, not a prior read, so
// concurrent registrations for the same address cannot both succeed.
func (dbService *UserDBService) AddUser(email string, name string, passwordHash string) (userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	user := userTypes.User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		OwnerID:      uuid.NewString(),
		CreatedAt:    time.Now(),
	}

	res, err := dbService.collectionUsers().InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return userTypes.User{}, ErrEmailAlreadyRegistered
		}
		return userTypes.User{}, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

// GetUserByEmail returns mongo.ErrNoDocuments if no account exists.
func (dbService *UserDBService) GetUserByEmail(email string) (userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var user userTypes.User
	err := dbService.collectionUsers().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, err
}

func (dbService *UserDBService) GetUserByOwnerID(ownerID string) (userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var user userTypes.User
	err := dbService.collectionUsers().FindOne(ctx, bson.M{"ownerId": ownerID}).Decode(&user)
	return user, err
}

// UpdatePassword replaces the password hash only. A missing account is a
// no-op; callers that need to know check existence first.
func (dbService *UserDBService) UpdatePassword(email string, newPasswordHash string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionUsers().UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"passwordHash": newPasswordHash}},
	)
	return err
}
