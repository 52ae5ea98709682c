package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type WishlistItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	PackageID string             `bson:"packageId,omitempty" json:"packageId,omitempty"`
	TripTitle string             `bson:"tripTitle,omitempty" json:"tripTitle,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Price     float64            `bson:"price,omitempty" json:"price,omitempty"`
}
