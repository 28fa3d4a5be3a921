package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hostelhub/hostelhub-server/internal/models"
)

// MealService owns the mealsByCategory and upComingMeals collections.
type MealService struct {
	meals    *mongo.Collection
	upcoming *mongo.Collection
}

func NewMealService(db *mongo.Database) *MealService {
	return &MealService{
		meals:    db.Collection("mealsByCategory"),
		upcoming: db.Collection("upComingMeals"),
	}
}

// reviewUpdate builds the single compound update for the like+review path:
// the like counter is overwritten and the review entry is appended with
// $addToSet in one document operation, so a reader never observes one change
// without the other. The server-assigned date makes each entry distinct, so
// in practice $addToSet's duplicate suppression never fires.
func reviewUpdate(likes int, userEmail, review string, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{"likes": likes},
		"$addToSet": bson.M{
			"reviews": models.Review{UserEmail: userEmail, Review: review, Date: now},
		},
	}
}

// List returns every meal document.
func (s *MealService) List(ctx context.Context) ([]models.Meal, error) {
	return findAllMeals(ctx, s.meals)
}

// ListUpcoming returns every upcoming meal document.
func (s *MealService) ListUpcoming(ctx context.Context) ([]models.Meal, error) {
	return findAllMeals(ctx, s.upcoming)
}

func findAllMeals(ctx context.Context, coll *mongo.Collection) ([]models.Meal, error) {
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	meals := []models.Meal{}
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// Get returns one meal, or nil when the ID matches nothing.
func (s *MealService) Get(ctx context.Context, id primitive.ObjectID) (*models.Meal, error) {
	var meal models.Meal
	err := s.meals.FindOne(ctx, bson.M{"_id": id}).Decode(&meal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// Create inserts a meal document.
func (s *MealService) Create(ctx context.Context, meal models.Meal) (*mongo.InsertOneResult, error) {
	return s.meals.InsertOne(ctx, meal)
}

// CreateUpcoming inserts an upcoming meal document.
func (s *MealService) CreateUpcoming(ctx context.Context, meal models.Meal) (*mongo.InsertOneResult, error) {
	return s.upcoming.InsertOne(ctx, meal)
}

// AddReview applies the compound like+review update to one meal.
func (s *MealService) AddReview(ctx context.Context, id primitive.ObjectID, likes int, userEmail, review string) (*mongo.UpdateResult, error) {
	return s.meals.UpdateOne(ctx, bson.M{"_id": id},
		reviewUpdate(likes, userEmail, review, time.Now()))
}

// UpdateStatus overwrites a meal's booked flag.
func (s *MealService) UpdateStatus(ctx context.Context, id primitive.ObjectID, booked bool) (*mongo.UpdateResult, error) {
	return s.meals.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"booked": booked}})
}
