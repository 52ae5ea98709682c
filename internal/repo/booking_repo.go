package repo

import (
	"context"

	"github.com/tazhibayda/tour-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *Store) CreateBooking(ctx context.Context, b *domain.Booking) error {
	res, err := s.colBookings.InsertOne(ctx, b)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid
	}
	return nil
}

// ListBookingsByEmail pages a traveler's own bookings.
func (s *Store) ListBookingsByEmail(ctx context.Context, email string, p *Page) ([]domain.Booking, error) {
	return s.findBookings(ctx, bson.M{"email": email}, p)
}

// ListBookingsByGuide pages the bookings assigned to a guide, keyed by the
// guide's display name as the frontend stores it.
func (s *Store) ListBookingsByGuide(ctx context.Context, name string, p *Page) ([]domain.Booking, error) {
	return s.findBookings(ctx, bson.M{"tourGuide": name}, p)
}

func (s *Store) findBookings(ctx context.Context, filter bson.M, p *Page) ([]domain.Booking, error) {
	cur, err := s.colBookings.Find(ctx, filter, findOpts(p))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.Booking{}
	for cur.Next(ctx) {
		var b domain.Booking
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, cur.Err()
}

func (s *Store) SetBookingStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	return s.colBookings.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
}

func (s *Store) DeleteBooking(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.colBookings.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) CountBookings(ctx context.Context) (int64, error) {
	return s.colBookings.EstimatedDocumentCount(ctx)
}
