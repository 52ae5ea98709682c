package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Story is created once and never edited.
type Story struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email  string             `bson:"email" json:"email"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Title  string             `bson:"title" json:"title"`
	Text   string             `bson:"text" json:"text"`
	Images []string           `bson:"images,omitempty" json:"images,omitempty"`
}
