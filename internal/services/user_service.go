package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hostelhub/hostelhub-server/internal/models"
)

// UserService owns the users collection.
type UserService struct {
	users *mongo.Collection
}

func NewUserService(db *mongo.Database) *UserService {
	return &UserService{users: db.Collection("users")}
}

// setWithTimestamp builds the $set document for a user write: every supplied
// field plus a fresh server-side timestamp in epoch milliseconds.
func setWithTimestamp(fields bson.M, now time.Time) bson.M {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	set["timestamp"] = now.UnixMilli()
	return bson.M{"$set": set}
}

// Save is the first-login path: if a user with this email already exists the
// stored document is returned unchanged and no write happens, even when the
// supplied fields differ. Only when the email is new does an upsert run.
func (s *UserService) Save(ctx context.Context, email string, fields bson.M) (*models.User, *mongo.UpdateResult, error) {
	query := bson.M{"email": email}

	var existing models.User
	err := s.users.FindOne(ctx, query).Decode(&existing)
	if err == nil {
		return &existing, nil, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil, err
	}

	result, err := s.users.UpdateOne(ctx, query,
		setWithTimestamp(fields, time.Now()),
		options.Update().SetUpsert(true))
	if err != nil {
		return nil, nil, err
	}
	return nil, result, nil
}

// UpdateRole always upserts: supplied fields overwrite overlapping keys and
// the timestamp is refreshed, regardless of prior existence.
func (s *UserService) UpdateRole(ctx context.Context, email string, fields bson.M) (*mongo.UpdateResult, error) {
	return s.users.UpdateOne(ctx, bson.M{"email": email},
		setWithTimestamp(fields, time.Now()),
		options.Update().SetUpsert(true))
}

// Get returns the user stored under email, or nil when there is none.
func (s *UserService) Get(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns every user document.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
