// Package database opens the MongoDB connection shared by the repositories.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bistro/config"
)

// Connect dials MongoDB and verifies the connection with a ping.
// The returned database handle and its underlying client pool are safe for
// concurrent use; the caller owns the disconnect via the returned client.
func Connect(ctx context.Context) (*mongo.Client, *mongo.Database, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(dialCtx, clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("database: connect: %w", err)
	}

	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("database: ping: %w", err)
	}

	return client, client.Database(config.MongoDatabase()), nil
}

// Disconnect closes the client with a bounded timeout. Safe to call during
// shutdown even when requests are still draining.
func Disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = client.Disconnect(ctx)
}
