package accountRepo

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

// MongoAccountRepo implements AccountRepository using MongoDB.
type MongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo creates a new instance of AccountRepository using MongoDB.
func NewMongoAccountRepo() AccountRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("accounts")
	repo := &MongoAccountRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAccountRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoAccountRepo) GetByID(id string) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var account models.Account
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("account %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch account with id %s: %w", id, err)
	}
	return &account, nil
}

// DecrementCredits consumes one credit. The filter requires a positive
// balance so the decrement and the check are a single atomic operation.
func (r *MongoAccountRepo) DecrementCredits(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "credits": bson.M{"$gt": 0}}
	update := bson.M{"$inc": bson.M{"credits": -1}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to decrement credits for account %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("account %s: %w", id, ErrInsufficientCredits)
	}
	return nil
}
