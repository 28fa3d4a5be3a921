package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is a user's reservation request. Created once, listed in aggregate,
// never mutated here.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MealID        string             `bson:"mealId,omitempty" json:"mealId,omitempty"`
	MealTitle     string             `bson:"mealTitle,omitempty" json:"mealTitle,omitempty"`
	UserEmail     string             `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
}

// RequestInfo is an auxiliary meal-request/inquiry record; create and list only.
type RequestInfo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MealID    string             `bson:"mealId,omitempty" json:"mealId,omitempty"`
	MealTitle string             `bson:"mealTitle,omitempty" json:"mealTitle,omitempty"`
	UserEmail string             `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	UserName  string             `bson:"userName,omitempty" json:"userName,omitempty"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty"`
}
