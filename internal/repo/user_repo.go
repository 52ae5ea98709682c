package repo

import (
	"context"
	"regexp"
	"time"

	"github.com/tazhibayda/tour-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// searchRegex builds the case-insensitive email substring predicate. The
// search text is quoted so regex metacharacters match literally.
func searchRegex(search string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := s.colUsers.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

func (s *Store) FindUserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var u domain.User
	err := s.colUsers.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	u.CreatedAt = time.Now().UTC()
	res, err := s.colUsers.InsertOne(ctx, u)
	if IsDup(err) {
		return ErrEmailExists
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

// ListUsers supports the admin user table: role is an exact-match filter,
// search a case-insensitive email substring. The search text is quoted so
// regex metacharacters match literally.
func (s *Store) ListUsers(ctx context.Context, role, search string, p *Page) ([]domain.User, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}
	if search != "" {
		filter["email"] = searchRegex(search)
	}
	cur, err := s.colUsers.Find(ctx, filter, findOpts(p))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.User{}
	for cur.Next(ctx) {
		var u domain.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, cur.Err()
}

func (s *Store) ListGuides(ctx context.Context) ([]domain.User, error) {
	cur, err := s.colUsers.Find(ctx, bson.M{"role": domain.RoleTourGuide})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.User{}
	for cur.Next(ctx) {
		var u domain.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, cur.Err()
}

func (s *Store) SetUserRole(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error) {
	return s.colUsers.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
}

// UpdateUserProfile $sets the whole profile block, so fields the caller left
// out are overwritten with empty values. That is what the frontend expects.
func (s *Store) UpdateUserProfile(ctx context.Context, email string, p domain.Profile) (*mongo.UpdateResult, error) {
	return s.colUsers.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{
		"phone":          p.Phone,
		"address":        p.Address,
		"city":           p.City,
		"age":            p.Age,
		"skills":         p.Skills,
		"workExperience": p.WorkExperience,
		"education":      p.Education,
		"gender":         p.Gender,
		"about":          p.About,
	}})
}

func (s *Store) DeleteUser(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.colUsers.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	return s.colUsers.EstimatedDocumentCount(ctx)
}
