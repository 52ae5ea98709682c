package repo

import (
	"context"

	"github.com/tazhibayda/tour-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (s *Store) AddWishlist(ctx context.Context, w *domain.WishlistItem) error {
	res, err := s.colWishlist.InsertOne(ctx, w)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		w.ID = oid
	}
	return nil
}

func (s *Store) ListWishlistByEmail(ctx context.Context, email string, p *Page) ([]domain.WishlistItem, error) {
	cur, err := s.colWishlist.Find(ctx, bson.M{"userEmail": email}, findOpts(p))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.WishlistItem{}
	for cur.Next(ctx) {
		var w domain.WishlistItem
		if err := cur.Decode(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, cur.Err()
}

func (s *Store) DeleteWishlist(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.colWishlist.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) CountWishlist(ctx context.Context) (int64, error) {
	return s.colWishlist.EstimatedDocumentCount(ctx)
}
