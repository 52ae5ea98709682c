package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// Roles stored on a user document. An empty role means a regular traveler.
const (
	RoleAdmin     = "admin"
	RoleTourGuide = "TourGuide"
)

// Field names are camelCase on the wire and in Mongo: the documents are
// shared with the JS frontend.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email"          json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	Profile   `bson:",inline"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// Profile holds the editable fields of PATCH /users/profile/:email. The whole
// block is $set on update, so fields missing from the request clear their
// stored values.
type Profile struct {
	Phone          string `bson:"phone" json:"phone"`
	Address        string `bson:"address" json:"address"`
	City           string `bson:"city" json:"city"`
	Age            string `bson:"age" json:"age"`
	Skills         string `bson:"skills" json:"skills"`
	WorkExperience string `bson:"workExperience" json:"workExperience"`
	Education      string `bson:"education" json:"education"`
	Gender         string `bson:"gender" json:"gender"`
	About          string `bson:"about" json:"about"`
}
