package profiledb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	profileTypes "github.com/simionic-community/profiledb-backend/pkg/types/profile"
)

func (dbService *ProfileDBService) GetAllProfiles() ([]profileTypes.ProfileSummary, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetProjection(bson.M{
		"_id":          0,
		"id":           1,
		"Owner":        1,
		"LastUpdated":  1,
		"Name":         1,
		"AircraftType": 1,
		"Engines":      1,
		"IsPublished":  1,
		"Notes":        1,
	})

	cursor, err := dbService.collectionProfiles().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := []profileTypes.ProfileSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (dbService *ProfileDBService) GetProfile(id string) (profileTypes.Profile, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var p profileTypes.Profile
	err := dbService.collectionProfiles().FindOne(
		ctx,
		bson.M{"id": id},
		options.FindOne().SetProjection(bson.M{"_id": 0}),
	).Decode(&p)
	return p, err
}

// UpsertProfile writes the full document under its public id and refreshes
// LastUpdated.
func (dbService *ProfileDBService) UpsertProfile(id string, p profileTypes.Profile) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	p.ProfileID = &id
	p.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	_, err := dbService.collectionProfiles().UpdateOne(
		ctx,
		bson.M{"id": id},
		bson.M{"$set": p},
		options.Update().SetUpsert(true),
	)
	return err
}

// DeleteProfile removes the profile only when the given owner ID matches, so
// a session can never delete somebody else's profile.
func (dbService *ProfileDBService) DeleteProfile(id string, ownerID string) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionProfiles().DeleteOne(ctx, bson.M{
		"id":       id,
		"Owner.Id": ownerID,
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ReassignOwner rewrites the owner tag on every profile owned by oldOwnerID.
// Used by account conversion to re-attach content created under the legacy
// derived identity. Returns the number of migrated profiles.
func (dbService *ProfileDBService) ReassignOwner(oldOwnerID string, newOwnerID string, newOwnerName string) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionProfiles().UpdateMany(
		ctx,
		bson.M{"Owner.Id": oldOwnerID},
		bson.M{"$set": bson.M{
			"Owner.Id":   newOwnerID,
			"Owner.Name": newOwnerName,
		}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
