package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SingleUseSecret is the shared record shape for password reset codes and
// account conversion tokens. Reset codes store a SHA-256 hash of the 6-digit
// code in Secret; conversion tokens store the opaque token itself, since it is
// already unguessable and doubles as the lookup key.
type SingleUseSecret struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email     string             `bson:"email" json:"email"`
	Secret    string             `bson:"secret" json:"-"`
	ExpiresAt time.Time          `bson:"expiresAt" json:"expiresAt"`
	Used      bool               `bson:"used" json:"used"`
}
