package database

import (
	"context"
	"time"

	"gadgetverse-backend/pkg/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo holds the single long-lived client and the named collections
// every handler works against. Built once at startup and injected
// downward, never looked up globally.
type Mongo struct {
	Client   *mongo.Client
	Users    *mongo.Collection
	Accounts *mongo.Collection
	Products *mongo.Collection
}

// NewMongoConnection connects with Server API v1 strict mode and verifies
// the connection with a ping before any route becomes reachable.
func NewMongoConnection(cfg *config.Config) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.DatabaseURI()).
		SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(cfg.DBName)
	m := &Mongo{
		Client:   client,
		Users:    db.Collection("users"),
		Accounts: db.Collection("accounts"), // reserved for the federated-identity layer
		Products: db.Collection("products"),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

// ensureIndexes enforces at-most-one-account-per-email at the store
// layer; the registration pre-check alone is racy.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	_, err := m.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
