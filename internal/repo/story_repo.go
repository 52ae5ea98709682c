package repo

import (
	"context"

	"github.com/tazhibayda/tour-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *Store) CreateStory(ctx context.Context, st *domain.Story) error {
	res, err := s.colStories.InsertOne(ctx, st)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		st.ID = oid
	}
	return nil
}

func (s *Store) ListStories(ctx context.Context) ([]domain.Story, error) {
	cur, err := s.colStories.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.Story{}
	for cur.Next(ctx) {
		var st domain.Story
		if err := cur.Decode(&st); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, cur.Err()
}

func (s *Store) FindStoryByID(ctx context.Context, id primitive.ObjectID) (*domain.Story, error) {
	var st domain.Story
	err := s.colStories.FindOne(ctx, bson.M{"_id": id}).Decode(&st)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &st, err
}
