package model

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakelabs/staking-ledger/internal/config"
)

const setupTimeout = 30 * time.Second

var collectionIndexes = map[string][]mongo.IndexModel{
	TransitionCollection: {
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "timestamp", Value: -1}}},
	},
}

// Setup creates the archive collections and their indexes. It is idempotent
// and safe to run on every startup.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()

	database := client.Database(cfg.DbName)
	for name, indexes := range collectionIndexes {
		if err := createCollection(ctx, database, name); err != nil {
			return err
		}
		if len(indexes) == 0 {
			continue
		}
		if _, err := database.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return err
		}
	}

	if err := client.Disconnect(ctx); err != nil {
		return err
	}
	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, name string) error {
	if err := database.CreateCollection(ctx, name); err != nil {
		var cmdErr mongo.CommandError
		// NamespaceExists, collection was created by an earlier run
		if errors.As(err, &cmdErr) && cmdErr.Code == 48 {
			log.Debug().Str("collection", name).Msg("collection already exists")
			return nil
		}
		return err
	}
	return nil
}
