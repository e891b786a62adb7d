package trainerRepo

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

// MongoTrainerRepo implements TrainerRepository using MongoDB.
type MongoTrainerRepo struct {
	coll *mongo.Collection
}

// NewMongoTrainerRepo creates a new TrainerRepository backed by MongoDB.
func NewMongoTrainerRepo() TrainerRepository {
	coll := database.MongoClient.Database("goodrunss").Collection("trainers")
	repo := &MongoTrainerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTrainerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "activities", Value: 1}}},
		// 2dsphere index on locationGeo for geospatial queries.
		{Keys: bson.D{{Key: "locationGeo", Value: "2dsphere"}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoTrainerRepo) Create(t *models.Trainer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to insert trainer: %w", err)
	}
	return nil
}

func (r *MongoTrainerRepo) GetByID(id string) (*models.Trainer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.Trainer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve trainer %s: %w", id, err)
	}
	return &t, nil
}

// AdvancedSearch finds trainers by activity and proximity. Results come back
// nearest-first, which is the order $nearSphere yields.
func (r *MongoTrainerRepo) AdvancedSearch(criteria TrainerSearchCriteria) ([]models.Trainer, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if len(criteria.Activities) > 0 {
		filter["activities"] = bson.M{"$in": criteria.Activities}
	}
	if len(criteria.LocationGeo.Coordinates) >= 2 {
		maxKm := criteria.MaxDistanceKm
		if maxKm <= 0 {
			maxKm = 50
		}
		filter["locationGeo"] = bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": criteria.LocationGeo.Coordinates,
				},
				"$maxDistance": maxKm * 1000,
			},
		}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("advanced search failed: %w", err)
	}
	defer cursor.Close(ctx)

	var trainers []models.Trainer
	if err := cursor.All(ctx, &trainers); err != nil {
		return nil, fmt.Errorf("failed to decode trainers: %w", err)
	}
	return trainers, nil
}

func (r *MongoTrainerRepo) UpdateStripeAccount(id, accountID string, payoutsEnabled bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"stripeAccountID": accountID,
		"payoutsEnabled":  payoutsEnabled,
		"updatedAt":       time.Now(),
	}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to update stripe account: %w", err)
	}
	return nil
}
