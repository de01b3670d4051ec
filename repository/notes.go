package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"quicknotes/config"
	"quicknotes/model"
	"quicknotes/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
	Timeout         time.Duration
}

var _ NoteStore = (*NotesRepo)(nil)

func GetNotesRepo(client *mongo.Client, cfg config.DatabaseConfig) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(cfg.DatabaseName).Collection(cfg.NotesCollection),
		Timeout:         cfg.Timeout,
	}
}

// listOrder puts pinned notes first; ties keep creation order.
var listOrder = bson.D{{Key: "isPinned", Value: -1}, {Key: "createdOn", Value: 1}}

func scoped(noteID, userID string) bson.M {
	return bson.M{"_id": noteID, "userId": userID}
}

// CreateNote creates a new note
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.Timeout)
	defer cancel()

	note.Tags = emptyTags(note.Tags)
	if _, err := r.MongoCollection.InsertOne(ctx, note); err != nil {
		utils.TrackError("database", "note_creation_failed")
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

// GetNote retrieves a note owned by userID
func (r *NotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.Timeout)
	defer cancel()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, scoped(noteID, userID)).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "note_lookup_error")
		return nil, fmt.Errorf("failed to find note: %w", err)
	}
	note.Tags = emptyTags(note.Tags)
	return &note, nil
}

// UpdateNote sets the present fields and returns the updated note
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID, userID string, update model.NoteUpdate) (*model.Note, error) {
	if update.Empty() {
		return r.GetNote(ctx, noteID, userID)
	}

	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.Timeout)
	defer cancel()

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Tags != nil {
		set["tags"] = emptyTags(*update.Tags)
	}
	if update.IsPinned != nil {
		set["isPinned"] = *update.IsPinned
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var note model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx, scoped(noteID, userID), bson.M{"$set": set}, opts).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "note_update_failed")
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	note.Tags = emptyTags(note.Tags)
	return &note, nil
}

// DeleteNote deletes a note owned by userID
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.Timeout)
	defer cancel()

	result, err := r.MongoCollection.DeleteOne(ctx, scoped(noteID, userID))
	if err != nil {
		utils.TrackError("database", "note_deletion_failed")
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListNotes retrieves all notes for a user
func (r *NotesRepo) ListNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// SearchNotes matches query as a literal, case-insensitive substring of title or content
func (r *NotesRepo) SearchNotes(ctx context.Context, userID, query string) ([]*model.Note, error) {
	pattern := regexp.QuoteMeta(query)
	filter := bson.M{
		"userId": userID,
		"$or": []bson.M{
			{"title": bson.M{"$regex": pattern, "$options": "i"}},
			{"content": bson.M{"$regex": pattern, "$options": "i"}},
		},
	}
	return r.find(ctx, filter)
}

func (r *NotesRepo) find(ctx context.Context, filter bson.M) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.Timeout)
	defer cancel()

	cursor, err := r.MongoCollection.Find(ctx, filter, options.Find().SetSort(listOrder))
	if err != nil {
		utils.TrackError("database", "note_query_failed")
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	for _, n := range notes {
		n.Tags = emptyTags(n.Tags)
	}
	return notes, nil
}
