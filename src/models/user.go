package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account that owns form records. Password stays out of responses;
// it is empty for accounts created through Google sign-in.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Name      string             `bson:"name" json:"name"`
	Provider  string             `bson:"provider,omitempty" json:"provider,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
