package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is a login identity. There is no update or delete path; a record
// is written once at signup and only ever read after that.
type Account struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
