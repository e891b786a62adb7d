package venueRepo

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

// MongoVenueRepo implements VenueRepository using MongoDB.
type MongoVenueRepo struct {
	coll *mongo.Collection
}

// NewMongoVenueRepo creates a new VenueRepository backed by MongoDB.
func NewMongoVenueRepo() VenueRepository {
	coll := database.MongoClient.Database("goodrunss").Collection("venues")
	repo := &MongoVenueRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoVenueRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "sport", Value: 1}}},
		{Keys: bson.D{{Key: "locationGeo", Value: "2dsphere"}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoVenueRepo) Create(v *models.Venue) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, v); err != nil {
		return fmt.Errorf("failed to insert venue: %w", err)
	}
	return nil
}

func (r *MongoVenueRepo) GetByID(id string) (*models.Venue, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var v models.Venue
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&v); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve venue %s: %w", id, err)
	}
	return &v, nil
}

func (r *MongoVenueRepo) GetBySport(sport string, limit int64) ([]models.Venue, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"sport": sport}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query venues by sport: %w", err)
	}
	defer cursor.Close(ctx)

	var venues []models.Venue
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, fmt.Errorf("failed to decode venues: %w", err)
	}
	return venues, nil
}

func (r *MongoVenueRepo) AddPhoto(id, url string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"photos": url},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to add venue photo: %w", err)
	}
	return nil
}

// AddReview appends a review and bumps the denormalized review count the
// rating engine's reliability bonus reads.
func (r *MongoVenueRepo) AddReview(id string, review models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"reviews": review},
		"$inc":  bson.M{"reviewCount": 1},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to add venue review: %w", err)
	}
	return nil
}
