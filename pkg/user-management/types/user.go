package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a local credential holder. Accounts created through registration or
// conversion get a randomly generated owner ID; it never changes afterwards.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	OwnerID      string             `bson:"ownerId" json:"ownerId"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
