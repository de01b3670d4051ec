package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quicknotes/config"
	"quicknotes/model"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserStore persists user credentials. Emails are unique.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUserByID(ctx context.Context, userID string) (*model.User, error)
}

// NoteStore persists notes. Every method that takes a note ID also takes the
// owner ID and matches on both; a note owned by someone else is ErrNotFound.
type NoteStore interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetNote(ctx context.Context, noteID, userID string) (*model.Note, error)
	UpdateNote(ctx context.Context, noteID, userID string, update model.NoteUpdate) (*model.Note, error)
	DeleteNote(ctx context.Context, noteID, userID string) error
	// ListNotes and SearchNotes return pinned notes first, then insertion order.
	ListNotes(ctx context.Context, userID string) ([]*model.Note, error)
	SearchNotes(ctx context.Context, userID, query string) ([]*model.Note, error)
}

// Stores bundles the handles opened for one backend.
type Stores struct {
	Driver string
	Users  UserStore
	Notes  NoteStore
	ping   func(ctx context.Context) error
	close  func(ctx context.Context) error
}

func (s *Stores) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func (s *Stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects the backend selected by cfg.Driver and prepares its schema.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Stores, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		return openMongo(ctx, cfg)
	case config.DriverPostgres:
		return openPostgres(ctx, cfg)
	case config.DriverMemory:
		return NewMemoryStores(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = 10 * time.Second
	}
	return context.WithTimeout(ctx, d)
}

// emptyTags keeps tags serialized as [] rather than null.
func emptyTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
