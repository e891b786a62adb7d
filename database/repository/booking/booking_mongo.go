package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"goodrunss/database"
	"goodrunss/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.MongoClient.Database("goodrunss").Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "playerId", Value: 1}, {Key: "startTime", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "startTime", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) Create(b *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	b.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetRecentByPlayer(playerID string, limit int64) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "startTime", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"playerId": playerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) GetUpcoming(within time.Duration) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{
		"status":    "confirmed",
		"startTime": bson.M{"$gte": now, "$lte": now.Add(within)},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
