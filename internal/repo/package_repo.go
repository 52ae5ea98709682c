package repo

import (
	"context"

	"github.com/tazhibayda/tour-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *Store) CreatePackage(ctx context.Context, p *domain.Package) error {
	res, err := s.colPackages.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (s *Store) ListPackages(ctx context.Context) ([]domain.Package, error) {
	return s.findPackages(ctx, bson.M{})
}

func (s *Store) ListPackagesByType(ctx context.Context, tourType string) ([]domain.Package, error) {
	return s.findPackages(ctx, bson.M{"tourType": tourType})
}

func (s *Store) findPackages(ctx context.Context, filter bson.M) ([]domain.Package, error) {
	cur, err := s.colPackages.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.Package{}
	for cur.Next(ctx) {
		var p domain.Package
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}

func (s *Store) FindPackageByID(ctx context.Context, id primitive.ObjectID) (*domain.Package, error) {
	var p domain.Package
	err := s.colPackages.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &p, err
}

func (s *Store) ListTourTypes(ctx context.Context) ([]domain.TourType, error) {
	cur, err := s.colTourTypes.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.TourType{}
	for cur.Next(ctx) {
		var t domain.TourType
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, cur.Err()
}
