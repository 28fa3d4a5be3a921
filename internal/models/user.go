package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is keyed by email; there is no unique index on the collection, the
// save-or-update handler's existence check is what keeps emails unique.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	Timestamp int64              `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}
