package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	BookingPending  = "pending"
	BookingAccepted = "Accepted"
	BookingRejected = "Rejected"
)

// Booking references the traveler by email and the guide by display name,
// exactly as the frontend submits them. No foreign keys.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	TourGuide string             `bson:"tourGuide" json:"tourGuide"`
	PackageID string             `bson:"packageId,omitempty" json:"packageId,omitempty"`
	TripTitle string             `bson:"tripTitle,omitempty" json:"tripTitle,omitempty"`
	Date      string             `bson:"date,omitempty" json:"date,omitempty"`
	Price     float64            `bson:"price,omitempty" json:"price,omitempty"`
	Status    string             `bson:"status" json:"status"`
}
