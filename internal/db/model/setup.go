package model

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/modbotdev/budget-ledger/internal/config"
)

// compound index keys must stay ordered, hence bson.D
var collections = map[string][]bson.D{
	CommunityBudgetCollection: nil,
	DepositCollection: {
		{{Key: "community_id", Value: 1}, {Key: "timestamp", Value: -1}},
	},
	ExpenseCollection: {
		{{Key: "community_id", Value: 1}, {Key: "timestamp", Value: -1}},
		{{Key: "community_id", Value: 1}, {Key: "status", Value: 1}},
	},
}

// Setup creates the collections and indexes the ledger relies on.
// It is idempotent and safe to run on every startup.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	clientOps := options.Client().ApplyURI(cfg.Address)
	if cfg.Username != "" {
		credential := options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		}
		clientOps = clientOps.SetAuth(credential)
	}

	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	database := client.Database(cfg.DbName)
	for name, indexes := range collections {
		if err := createCollection(ctx, database, name); err != nil {
			return err
		}
		for _, keys := range indexes {
			if err := createIndex(ctx, database, name, keys); err != nil {
				return err
			}
		}
	}

	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, collectionName string) error {
	err := database.CreateCollection(ctx, collectionName)
	if err != nil {
		// collection may already exist
		if cmdErr, ok := err.(mongo.CommandError); ok && cmdErr.Name == "NamespaceExists" {
			return nil
		}
		return fmt.Errorf("failed to create collection %s: %w", collectionName, err)
	}
	return nil
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, keys bson.D) error {
	model := mongo.IndexModel{Keys: keys}
	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create index on %s (%v): %w", collectionName, keys, err)
	}

	return nil
}
