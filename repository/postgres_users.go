package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quicknotes/model"
	"quicknotes/utils"
)

type PostgresUserRepo struct {
	db      *sql.DB
	timeout time.Duration
}

var _ UserStore = (*PostgresUserRepo)(nil)

func NewPostgresUserRepo(db *sql.DB, timeout time.Duration) *PostgresUserRepo {
	return &PostgresUserRepo{db: db, timeout: timeout}
}

func (r *PostgresUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query :=
		`INSERT INTO users (id, full_name, email, password, created_on)
		 VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query, user.ID, user.FullName, user.Email, user.Password, user.CreatedOn)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		utils.TrackError("database", "user_creation_failed")
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresUserRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, `WHERE email = $1`, email)
}

func (r *PostgresUserRepo) FindUserByID(ctx context.Context, userID string) (*model.User, error) {
	return r.findOne(ctx, `WHERE id = $1`, userID)
}

func (r *PostgresUserRepo) findOne(ctx context.Context, where string, arg string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT id, full_name, email, password, created_on FROM users ` + where

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.FullName, &user.Email, &user.Password, &user.CreatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
