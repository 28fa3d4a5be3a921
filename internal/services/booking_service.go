package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hostelhub/hostelhub-server/internal/models"
)

// BookingService owns the booking and reqInfo collections. Both are
// create-and-list only; nothing in this system mutates or deletes them.
type BookingService struct {
	bookings *mongo.Collection
	reqInfo  *mongo.Collection
}

func NewBookingService(db *mongo.Database) *BookingService {
	return &BookingService{
		bookings: db.Collection("booking"),
		reqInfo:  db.Collection("reqInfo"),
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, booking models.Booking) (*mongo.InsertOneResult, error) {
	return s.bookings.InsertOne(ctx, booking)
}

func (s *BookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	cursor, err := s.bookings.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) CreateRequestInfo(ctx context.Context, info models.RequestInfo) (*mongo.InsertOneResult, error) {
	return s.reqInfo.InsertOne(ctx, info)
}

func (s *BookingService) ListRequestInfo(ctx context.Context) ([]models.RequestInfo, error) {
	cursor, err := s.reqInfo.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	infos := []models.RequestInfo{}
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}
