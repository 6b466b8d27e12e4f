package database

import (
	"context"
	"fmt"
	"time"

	"cnapp/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection    = "users"
	MessagesCollection = "messages"

	connectAttempts = 3
	retryDelay      = 2 * time.Second
)

// DB holds the process-wide Mongo handles. It is created once in main and
// passed to the repositories.
type DB struct {
	Client   *mongo.Client
	Users    *mongo.Collection
	Messages *mongo.Collection
}

func New(client *mongo.Client, dbName string) *DB {
	db := client.Database(dbName)
	return &DB{
		Client:   client,
		Users:    db.Collection(UsersCollection),
		Messages: db.Collection(MessagesCollection),
	}
}

// Connect dials uri and pings it, retrying a few times before giving up.
func Connect(ctx context.Context, uri, dbName string, log *logger.Logger) (*DB, error) {
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		client, err := dial(ctx, uri)
		if err == nil {
			return New(client, dbName), nil
		}
		lastErr = err
		log.Warnf("MongoDB connection attempt %d failed: %v", attempt, err)

		if attempt < connectAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay):
			}
		}
	}
	return nil, fmt.Errorf("database: connect: %w", lastErr)
}

func dial(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the unique username index that backs registration
// conflicts and the createdAt index used to order messages.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := d.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("database: users index: %w", err)
	}

	_, err = d.Messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("database: messages index: %w", err)
	}
	return nil
}

func (d *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return d.Client.Ping(ctx, nil)
}

func (d *DB) Disconnect(ctx context.Context) error {
	if d == nil || d.Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return d.Client.Disconnect(ctx)
}
