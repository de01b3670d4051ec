package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"quicknotes/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreSuite exercises the behaviour every backend must share. The
// backends have to agree on ordering, scoping and error values.
func runStoreSuite(t *testing.T, stores *Stores) {
	t.Helper()

	t.Run("users", func(t *testing.T) { testUserStore(t, stores.Users) })
	t.Run("notes", func(t *testing.T) { testNoteStore(t, stores.Users, stores.Notes) })
	t.Run("ping", func(t *testing.T) { assert.NoError(t, stores.Ping(context.Background())) })
}

func newUser(email string) *model.User {
	return &model.User{
		ID:        uuid.NewString(),
		FullName:  "Test User",
		Email:     email,
		Password:  "salt$hash",
		CreatedOn: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func uniqueEmail() string {
	return uuid.NewString() + "@example.com"
}

func testUserStore(t *testing.T, users UserStore) {
	ctx := context.Background()
	user := newUser(uniqueEmail())
	require.NoError(t, users.CreateUser(ctx, user))

	byEmail, err := users.FindUserByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, user.Password, byEmail.Password)
	assert.True(t, user.CreatedOn.Equal(byEmail.CreatedOn))

	byID, err := users.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	_, err = users.FindUserByEmail(ctx, uniqueEmail())
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = users.FindUserByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)

	dup := newUser(user.Email)
	assert.ErrorIs(t, users.CreateUser(ctx, dup), ErrDuplicateEmail)

	// Concurrent registrations of one email: exactly one wins
	email := uniqueEmail()
	var wg sync.WaitGroup
	results := make([]error, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = users.CreateUser(ctx, newUser(email))
		}(i)
	}
	wg.Wait()
	wins := 0
	for _, err := range results {
		if err == nil {
			wins++
		} else {
			assert.True(t, errors.Is(err, ErrDuplicateEmail), "unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func testNoteStore(t *testing.T, users UserStore, notes NoteStore) {
	ctx := context.Background()

	owner := newUser(uniqueEmail())
	other := newUser(uniqueEmail())
	require.NoError(t, users.CreateUser(ctx, owner))
	require.NoError(t, users.CreateUser(ctx, other))

	create := func(userID, title, content string, tags []string) *model.Note {
		n := &model.Note{
			ID:        uuid.NewString(),
			UserID:    userID,
			Title:     title,
			Content:   content,
			Tags:      tags,
			CreatedOn: time.Now().UTC().Truncate(time.Millisecond),
		}
		require.NoError(t, notes.CreateNote(ctx, n))
		// Keep createdOn strictly increasing at millisecond precision
		time.Sleep(2 * time.Millisecond)
		return n
	}

	first := create(owner.ID, "Category list", "things to sort", nil)
	second := create(owner.ID, "Dog", "Bark", []string{"pets"})
	third := create(owner.ID, "100% done_ish", "literal (.*) chars", []string{"a", "b"})
	foreign := create(other.ID, "Category of other", "not yours", nil)

	got, err := notes.GetNote(ctx, first.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Category list", got.Title)
	assert.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)

	_, err = notes.GetNote(ctx, foreign.ID, owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Tags-only update leaves the rest alone
	tags := []string{"x"}
	updated, err := notes.UpdateNote(ctx, second.ID, owner.ID, model.NoteUpdate{Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, "Dog", updated.Title)
	assert.Equal(t, "Bark", updated.Content)
	assert.Equal(t, []string{"x"}, updated.Tags)

	empty := []string{}
	updated, err = notes.UpdateNote(ctx, third.ID, owner.ID, model.NoteUpdate{Tags: &empty, Title: strPtr("100% done_ish!")})
	require.NoError(t, err)
	assert.Equal(t, "100% done_ish!", updated.Title)
	assert.Empty(t, updated.Tags)

	_, err = notes.UpdateNote(ctx, foreign.ID, owner.ID, model.NoteUpdate{Title: strPtr("pwned")})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = notes.UpdateNote(ctx, uuid.NewString(), owner.ID, model.NoteUpdate{IsPinned: boolPtr(true)})
	assert.ErrorIs(t, err, ErrNotFound)

	untouched, err := notes.GetNote(ctx, foreign.ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "Category of other", untouched.Title)

	// Pinned first, then creation order
	_, err = notes.UpdateNote(ctx, second.ID, owner.ID, model.NoteUpdate{IsPinned: boolPtr(true)})
	require.NoError(t, err)
	list, err := notes.ListNotes(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{second.ID, first.ID, third.ID}, ids(list))

	_, err = notes.UpdateNote(ctx, second.ID, owner.ID, model.NoteUpdate{IsPinned: boolPtr(false)})
	require.NoError(t, err)
	list, err = notes.ListNotes(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, ids(list))

	none, err := notes.ListNotes(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	searches := []struct {
		query string
		want  []string
	}{
		{"cat", []string{first.ID}},
		{"BARK", []string{second.ID}},
		{"100%", []string{third.ID}},
		{"(.*)", []string{third.ID}},
		{"_", []string{third.ID}},
		{".*", []string{third.ID}},
		{"D.g", nil},
		{"%", []string{third.ID}},
	}
	for _, s := range searches {
		found, err := notes.SearchNotes(ctx, owner.ID, s.query)
		require.NoError(t, err, s.query)
		if s.want == nil {
			assert.Empty(t, found, s.query)
			continue
		}
		assert.Equal(t, s.want, ids(found), s.query)
	}

	assert.ErrorIs(t, notes.DeleteNote(ctx, foreign.ID, owner.ID), ErrNotFound)
	require.NoError(t, notes.DeleteNote(ctx, first.ID, owner.ID))
	assert.ErrorIs(t, notes.DeleteNote(ctx, first.ID, owner.ID), ErrNotFound)
	_, err = notes.GetNote(ctx, first.ID, owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func ids(notes []*model.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}
