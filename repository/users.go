package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quicknotes/config"
	"quicknotes/model"
	"quicknotes/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func GetUserRepo(client *mongo.Client, cfg config.DatabaseConfig) *UserRepo {
	return &UserRepo{
		MongoCollection: client.Database(cfg.DatabaseName).Collection(cfg.UsersCollection),
		Timeout:         cfg.Timeout,
	}
}

type UserRepo struct {
	MongoCollection *mongo.Collection
	Timeout         time.Duration
}

var _ UserStore = (*UserRepo)(nil)

func (r *UserRepo) CreateUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.Timeout)
	defer cancel()

	if _, err := r.MongoCollection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		utils.TrackError("database", "user_creation_failed")
		return fmt.Errorf("failed to add user to database: %w", err)
	}
	return nil
}

func (r *UserRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *UserRepo) FindUserByID(ctx context.Context, userID string) (*model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: userID}})
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.D) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.Timeout)
	defer cancel()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}
