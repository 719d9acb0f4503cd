package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quickfind/config"
	"quickfind/database"
	"quickfind/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a new instance of ProviderRepository using MongoDB.
func NewMongoProviderRepo() ProviderRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("providers")
	repo := &MongoProviderRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields that are frequently used in queries.
func (r *MongoProviderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "active", Value: 1}}},
		// 2dsphere index on the profile location for geospatial queries.
		{Keys: bson.D{{Key: "profile.locationGeo", Value: "2dsphere"}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoProviderRepo) GetByID(id string) (*models.Provider, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var provider models.Provider
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&provider); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("provider %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch provider with id %s: %w", id, err)
	}
	return &provider, nil
}

func (r *MongoProviderRepo) GetActive(category string) ([]models.Provider, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"active": true}
	if category != "" {
		filter["category"] = bson.M{"$regex": category, "$options": "i"}
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve active providers: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	for cursor.Next(ctx) {
		var p models.Provider
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode provider: %w", err)
		}
		providers = append(providers, p)
	}
	return providers, nil
}
