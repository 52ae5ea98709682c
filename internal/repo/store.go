package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrEmailExists = errors.New("email already exists")

type Store struct {
	Client       *mongo.Client
	DB           *mongo.Database
	colUsers     *mongo.Collection
	colPackages  *mongo.Collection
	colBookings  *mongo.Collection
	colWishlist  *mongo.Collection
	colStories   *mongo.Collection
	colTourTypes *mongo.Collection
}

func NewStore(ctx context.Context, uri, dbname string) (*Store, error) {
	cli, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetRetryWrites(true).
		SetMaxPoolSize(50),
	)
	if err != nil {
		return nil, err
	}
	if err := cli.Ping(ctx, nil); err != nil {
		return nil, err
	}
	db := cli.Database(dbname)
	return &Store{
		Client:       cli,
		DB:           db,
		colUsers:     db.Collection("users"),
		colPackages:  db.Collection("packages"),
		colBookings:  db.Collection("bookings"),
		colWishlist:  db.Collection("wishlist"),
		colStories:   db.Collection("story"),
		colTourTypes: db.Collection("tourtype"),
	}, nil
}

func (s *Store) Ping(ctx context.Context) error { return s.Client.Ping(ctx, nil) }

func (s *Store) Close(ctx context.Context) error { return s.Client.Disconnect(ctx) }

// EnsureIndexes creates the indexes the query paths rely on. The unique email
// index is what actually enforces one-user-per-email; the handler's
// find-then-insert check is only a fast path.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.colUsers.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}},
			Options: options.Index().SetName("role"),
		},
	})
	if err != nil {
		return err
	}

	_, err = s.colBookings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("traveler_email"),
		},
		{
			Keys:    bson.D{{Key: "tourGuide", Value: 1}},
			Options: options.Index().SetName("guide_name"),
		},
	})
	if err != nil {
		return err
	}

	_, err = s.colWishlist.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userEmail", Value: 1}},
		Options: options.Index().SetName("user_email"),
	})
	return err
}

func IsDup(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	var ce *mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	return false
}

// Page is an optional skip/limit pair. A nil *Page means the query is sent
// with no skip or limit at all, which is not the same as skip=0: it returns
// the full matching set.
type Page struct {
	Skip  int64
	Limit int64
}

func findOpts(p *Page) *options.FindOptions {
	o := options.Find()
	if p != nil {
		o.SetSkip(p.Skip).SetLimit(p.Limit)
	}
	return o
}
