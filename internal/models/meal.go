package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is one entry in a meal's reviews array. The date is assigned by the
// server when the review is appended, never taken from the client.
type Review struct {
	UserEmail string    `bson:"UserEmail" json:"UserEmail"`
	Review    string    `bson:"review" json:"review"`
	Date      time.Time `bson:"date" json:"date"`
}

// Meal is a document in the mealsByCategory collection. The same shape is
// stored in upComingMeals for meals that are not yet published.
type Meal struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title            string             `bson:"title,omitempty" json:"title,omitempty"`
	Category         string             `bson:"category,omitempty" json:"category,omitempty"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	Ingredients      string             `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Price            float64            `bson:"price,omitempty" json:"price,omitempty"`
	Rating           float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	PostTime         string             `bson:"postTime,omitempty" json:"postTime,omitempty"`
	DistributorName  string             `bson:"distributorName,omitempty" json:"distributorName,omitempty"`
	DistributorEmail string             `bson:"distributorEmail,omitempty" json:"distributorEmail,omitempty"`
	Likes            int                `bson:"likes" json:"likes"`
	Booked           bool               `bson:"booked" json:"booked"`
	Reviews          []Review           `bson:"reviews,omitempty" json:"reviews,omitempty"`
}
