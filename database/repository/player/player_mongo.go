package playerRepo

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

// MongoPlayerRepo implements PlayerRepository using MongoDB.
type MongoPlayerRepo struct {
	coll *mongo.Collection
}

// NewMongoPlayerRepo creates a new PlayerRepository backed by MongoDB.
func NewMongoPlayerRepo() PlayerRepository {
	coll := database.MongoClient.Database("goodrunss").Collection("players")
	repo := &MongoPlayerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPlayerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "lastActiveAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoPlayerRepo) Create(p *models.Player) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

func (r *MongoPlayerRepo) GetByID(id string) (*models.Player, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Player
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve player %s: %w", id, err)
	}
	return &p, nil
}

func (r *MongoPlayerRepo) GetByEmail(email string) (*models.Player, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Player
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve player by email: %w", err)
	}
	return &p, nil
}

// GetByCity returns players in the given city in stored order. The window is
// what the discovery engine scores over.
func (r *MongoPlayerRepo) GetByCity(city string, limit int64) ([]models.Player, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"city": city}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query players by city: %w", err)
	}
	defer cursor.Close(ctx)

	var players []models.Player
	if err := cursor.All(ctx, &players); err != nil {
		return nil, fmt.Errorf("failed to decode players: %w", err)
	}
	return players, nil
}

func (r *MongoPlayerRepo) UpdateTokenHash(id, tokenHash string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"security.tokenHash": tokenHash, "updatedAt": time.Now()}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to update token hash: %w", err)
	}
	return nil
}

func (r *MongoPlayerRepo) TouchLastActive(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"lastActiveAt": time.Now()}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to update last active: %w", err)
	}
	return nil
}

func (r *MongoPlayerRepo) UpdateFCMToken(id, token string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"fcmToken": token, "updatedAt": time.Now()}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to update FCM token: %w", err)
	}
	return nil
}
