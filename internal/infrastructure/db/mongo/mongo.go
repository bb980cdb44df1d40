package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultTimeout = 10 * time.Second

// Config selects the deployment and the collection that holds session documents.
type Config struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

// Open connects, pings the primary and prepares the session document
// collection. The returned close func disconnects the client.
func Open(ctx context.Context, cfg Config) (*KVStore, func(context.Context) error, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	name := cfg.Collection
	if name == "" {
		name = collectionKV
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	col := client.Database(cfg.Database).Collection(name)
	if err := ensureExpiryIndex(connectCtx, col); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, err
	}
	return newKVStore(col), client.Disconnect, nil
}

// ensureExpiryIndex lets the TTL monitor drop documents once expires_at
// passes. Documents without expires_at never expire.
func ensureExpiryIndex(ctx context.Context, col *mongo.Collection) error {
	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetName("session_expiry").SetExpireAfterSeconds(0),
	})
	if err != nil {
		return fmt.Errorf("mongo ttl index on %s: %w", col.Name(), err)
	}
	return nil
}
