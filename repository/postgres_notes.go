package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"quicknotes/model"
	"quicknotes/utils"
)

const noteColumns = `id, user_id, title, content, tags, is_pinned, created_on`

type PostgresNotesRepo struct {
	db      *sql.DB
	timeout time.Duration
}

var _ NoteStore = (*PostgresNotesRepo)(nil)

func NewPostgresNotesRepo(db *sql.DB, timeout time.Duration) *PostgresNotesRepo {
	return &PostgresNotesRepo{db: db, timeout: timeout}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*model.Note, error) {
	note := &model.Note{}
	var tags []byte
	if err := row.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &tags, &note.IsPinned, &note.CreatedOn); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &note.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	note.Tags = emptyTags(note.Tags)
	return note, nil
}

func encodeTags(tags []string) (string, error) {
	b, err := json.Marshal(emptyTags(tags))
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(b), nil
}

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *PostgresNotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	tags, err := encodeTags(note.Tags)
	if err != nil {
		return err
	}
	note.Tags = emptyTags(note.Tags)

	query :=
		`INSERT INTO notes (id, user_id, title, content, tags, is_pinned, created_on)
		 VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7)`

	if _, err := r.db.ExecContext(ctx, query,
		note.ID, note.UserID, note.Title, note.Content, tags, note.IsPinned, note.CreatedOn); err != nil {
		utils.TrackError("database", "note_creation_failed")
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresNotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND user_id = $2`
	note, err := scanNote(r.db.QueryRowContext(ctx, query, noteID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "note_lookup_error")
		return nil, fmt.Errorf("db error: %w", err)
	}
	return note, nil
}

func (r *PostgresNotesRepo) UpdateNote(ctx context.Context, noteID, userID string, update model.NoteUpdate) (*model.Note, error) {
	if update.Empty() {
		return r.GetNote(ctx, noteID, userID)
	}

	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var title, content, tags, pinned any
	if update.Title != nil {
		title = *update.Title
	}
	if update.Content != nil {
		content = *update.Content
	}
	if update.Tags != nil {
		encoded, err := encodeTags(*update.Tags)
		if err != nil {
			return nil, err
		}
		tags = encoded
	}
	if update.IsPinned != nil {
		pinned = *update.IsPinned
	}

	query :=
		`UPDATE notes SET
		     title     = COALESCE($3::text, title),
		     content   = COALESCE($4::text, content),
		     tags      = COALESCE($5::jsonb, tags),
		     is_pinned = COALESCE($6::boolean, is_pinned)
		 WHERE id = $1 AND user_id = $2
		 RETURNING ` + noteColumns

	note, err := scanNote(r.db.QueryRowContext(ctx, query, noteID, userID, title, content, tags, pinned))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "note_update_failed")
		return nil, fmt.Errorf("db error: %w", err)
	}
	return note, nil
}

func (r *PostgresNotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, noteID, userID)
	if err != nil {
		utils.TrackError("database", "note_deletion_failed")
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresNotesRepo) ListNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	return r.query(ctx,
		`SELECT `+noteColumns+` FROM notes
		 WHERE user_id = $1
		 ORDER BY is_pinned DESC, seq ASC`, userID)
}

func (r *PostgresNotesRepo) SearchNotes(ctx context.Context, userID, query string) ([]*model.Note, error) {
	return r.query(ctx,
		`SELECT `+noteColumns+` FROM notes
		 WHERE user_id = $1
		   AND (title ILIKE '%' || $2 || '%' OR content ILIKE '%' || $2 || '%')
		 ORDER BY is_pinned DESC, seq ASC`, userID, escapeLike(query))
}

func (r *PostgresNotesRepo) query(ctx context.Context, query string, args ...any) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		utils.TrackError("database", "note_query_failed")
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	notes := []*model.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return notes, nil
}
