package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medical-booking-api/internal/model"
)

// EnsureIndexes creates the unique email index. Duplicate registration is
// caught here at write time, not only by the pre-insert lookup.
func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *Mongo) CreateUser(ctx context.Context, u *model.User) error {
	res, err := s.users.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Mongo) UserByEmailRole(ctx context.Context, email, role string) (*model.User, error) {
	u := &model.User{}
	err := s.users.FindOne(ctx, bson.M{"email": email, "role": role}).Decode(u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Mongo) UserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	u := &model.User{}
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Mongo) ListDoctors(ctx context.Context) ([]model.User, error) {
	cur, err := s.users.Find(ctx, bson.M{"role": model.RoleDoctor})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []model.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
