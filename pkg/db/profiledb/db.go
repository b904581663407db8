package profiledb

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/simionic-community/profiledb-backend/pkg/db"
)

const (
	COLLECTION_NAME_PROFILES = "profiles"
)

type ProfileDBService struct {
	DBClient *mongo.Client
	timeout  int
	DBName   string
}

func NewProfileDBService(configs db.DBConfig) (*ProfileDBService, error) {
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

	pDBSc := &ProfileDBService{
		DBClient: dbClient,
		timeout:  configs.Timeout,
		DBName:   configs.DBName,
	}

	pDBSc.ensureIndexes()
	return pDBSc, nil
}

func (dbService *ProfileDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *ProfileDBService) collectionProfiles() *mongo.Collection {
	return dbService.DBClient.Database(dbService.DBName).Collection(COLLECTION_NAME_PROFILES)
}

func (dbService *ProfileDBService) ensureIndexes() {
	slog.Debug("Ensuring indexes for profile DB")

	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionProfiles().Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "id", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{
					{Key: "Owner.Id", Value: 1},
				},
			},
		},
	)
	if err != nil {
		slog.Error("Error creating indexes for profiles", slog.String("error", err.Error()))
	}
}
