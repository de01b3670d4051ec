package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quicknotes/model"
	"quicknotes/repository"
	"quicknotes/utils"
)

type NotesService struct {
	NotesRepo repository.NoteStore
	Now       func() time.Time
}

type CreateNoteInput struct {
	Title   string
	Content string
	Tags    []string
}

// EditNoteInput holds the edit body as decoded. Nil means the key was absent
// or null.
type EditNoteInput struct {
	Title    *string
	Content  *string
	Tags     *[]string
	IsPinned *bool
}

// toUpdate keeps non-empty title and content, any non-null tags array and a
// true isPinned. isPinned on its own does not count as a change.
func (in EditNoteInput) toUpdate() (model.NoteUpdate, bool) {
	var update model.NoteUpdate
	changed := false

	if in.Title != nil && *in.Title != "" {
		update.Title = in.Title
		changed = true
	}
	if in.Content != nil && *in.Content != "" {
		update.Content = in.Content
		changed = true
	}
	if in.Tags != nil {
		tags := *in.Tags
		if tags == nil {
			tags = []string{}
		}
		update.Tags = &tags
		changed = true
	}
	if in.IsPinned != nil && *in.IsPinned {
		pinned := true
		update.IsPinned = &pinned
	}
	return update, changed
}

func (s *NotesService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func mapNoteErr(err error, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNoteNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *NotesService) CreateNote(ctx context.Context, userID string, in CreateNoteInput) (*model.Note, error) {
	if in.Title == "" || in.Content == "" {
		return nil, ErrMissingFields
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	note := &model.Note{
		ID:        utils.GenerateID(),
		UserID:    userID,
		Title:     in.Title,
		Content:   in.Content,
		Tags:      tags,
		IsPinned:  false,
		CreatedOn: s.now(),
	}
	if err := utils.ValidateStruct(note); err != nil {
		return nil, err
	}

	if err := s.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	utils.TrackNoteOperation("create")
	return note, nil
}

func (s *NotesService) EditNote(ctx context.Context, userID, noteID string, in EditNoteInput) (*model.Note, error) {
	update, changed := in.toUpdate()
	if !changed {
		return nil, ErrNoChanges
	}

	note, err := s.NotesRepo.UpdateNote(ctx, noteID, userID, update)
	if err != nil {
		return nil, mapNoteErr(err, "edit note")
	}
	utils.TrackNoteOperation("edit")
	return note, nil
}

// SetPinned writes the flag as given, including false.
func (s *NotesService) SetPinned(ctx context.Context, userID, noteID string, pinned bool) (*model.Note, error) {
	note, err := s.NotesRepo.UpdateNote(ctx, noteID, userID, model.NoteUpdate{IsPinned: &pinned})
	if err != nil {
		return nil, mapNoteErr(err, "pin note")
	}
	utils.TrackNoteOperation("pin")
	return note, nil
}

func (s *NotesService) ListNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	notes, err := s.NotesRepo.ListNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if notes == nil {
		notes = []*model.Note{}
	}
	utils.TrackNoteOperation("list")
	return notes, nil
}

func (s *NotesService) DeleteNote(ctx context.Context, userID, noteID string) error {
	if err := s.NotesRepo.DeleteNote(ctx, noteID, userID); err != nil {
		return mapNoteErr(err, "delete note")
	}
	utils.TrackNoteOperation("delete")
	return nil
}

// SearchNotes matches query as a literal, case-insensitive substring of the
// title or content.
func (s *NotesService) SearchNotes(ctx context.Context, userID, query string) ([]*model.Note, error) {
	if query == "" {
		return nil, ErrMissingQuery
	}

	notes, err := s.NotesRepo.SearchNotes(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	if notes == nil {
		notes = []*model.Note{}
	}
	utils.TrackNoteOperation("search")
	return notes, nil
}
