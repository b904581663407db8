package userdb

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/simionic-community/profiledb-backend/pkg/db"
)

// collection names
const (
	COLLECTION_NAME_USERS                = "users"
	COLLECTION_NAME_PASSWORD_RESET_CODES = "passwordResetCodes"
	COLLECTION_NAME_CONVERSION_TOKENS    = "conversionTokens"
)

type UserDBService struct {
	DBClient *mongo.Client
	timeout  int
	DBName   string
}

func NewUserDBService(configs db.DBConfig) (*UserDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)
	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	uDBSc := &UserDBService{
		DBClient: dbClient,
		timeout:  configs.Timeout,
		DBName:   configs.DBName,
	}

	uDBSc.ensureIndexes()
	return uDBSc, nil
}

func (dbService *UserDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *UserDBService) collectionUsers() *mongo.Collection {
	return dbService.DBClient.Database(dbService.DBName).Collection(COLLECTION_NAME_USERS)
}

func (dbService *UserDBService) collectionForSecretKind(kind SecretKind) *mongo.Collection {
	return dbService.DBClient.Database(dbService.DBName).Collection(kind.collectionName)
}

// ensureIndexes runs once per process at service construction. Creating an
// index that already exists is a no-op on the server side, so racing
// deployments are safe.
func (dbService *UserDBService) ensureIndexes() {
	slog.Debug("Ensuring indexes for user DB")

	if err := dbService.CreateIndexesForUsers(); err != nil {
		slog.Error("Error creating indexes for users", slog.String("error", err.Error()))
	}
	if err := dbService.CreateIndexesForSecretKind(ResetCodes); err != nil {
		slog.Error("Error creating indexes for password reset codes", slog.String("error", err.Error()))
	}
	if err := dbService.CreateIndexesForSecretKind(ConversionTokens); err != nil {
		slog.Error("Error creating indexes for conversion tokens", slog.String("error", err.Error()))
	}
}
