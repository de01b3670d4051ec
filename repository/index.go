package repository

import (
	"context"
	"fmt"
	"log/slog"

	"quicknotes/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(ctx context.Context, db *mongo.Database, cfg config.DatabaseConfig) error {
	ctx, cancel := withTimeout(ctx, cfg.Timeout)
	defer cancel()

	usersCollection := db.Collection(cfg.UsersCollection)
	notesCollection := db.Collection(cfg.NotesCollection)

	userIndexes := []mongo.IndexModel{
		// Registration relies on this to reject concurrent duplicates
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("unique_email").
				SetUnique(true),
		},
	}

	noteIndexes := []mongo.IndexModel{
		// Listing order: pinned first, then creation
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "isPinned", Value: -1},
				{Key: "createdOn", Value: 1},
			},
			Options: options.Index().
				SetName("user_pinned_created"),
		},
		// Scoped lookups by (id, owner)
		{
			Keys: bson.D{
				{Key: "_id", Value: 1},
				{Key: "userId", Value: 1},
			},
			Options: options.Index().
				SetName("id_owner"),
		},
	}

	if _, err := usersCollection.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create users indexes: %w", err)
	}

	if _, err := notesCollection.Indexes().CreateMany(ctx, noteIndexes); err != nil {
		return fmt.Errorf("failed to create notes indexes: %w", err)
	}

	slog.Debug("mongo indexes ready", "users", cfg.UsersCollection, "notes", cfg.NotesCollection)
	return nil
}
