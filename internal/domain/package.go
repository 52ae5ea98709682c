package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Package struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TripTitle   string             `bson:"tripTitle" json:"tripTitle"`
	TourType    string             `bson:"tourType" json:"tourType"`
	Price       float64            `bson:"price" json:"price"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Duration    string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

// TourType is a lookup label; packages reference it by name.
type TourType struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}
