package queue

import "context"

const Exchange = "tour.events"

type Publisher interface {
	Publish(ctx context.Context, exchange, key string, event any) error
	Close() error
}

// NoopPub stands in when RABBIT_URL is not configured (and in tests).
type NoopPub struct{}

func NewNoop() Publisher { return NoopPub{} }

func (NoopPub) Publish(ctx context.Context, exchange, key string, event any) error { return nil }
func (NoopPub) Close() error                                                       { return nil }

type UserRegistered struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type BookingCreated struct {
	Email     string `json:"email"`
	TourGuide string `json:"tourGuide"`
	TripTitle string `json:"tripTitle"`
}

type BookingStatusChanged struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}
