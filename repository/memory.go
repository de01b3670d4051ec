package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"quicknotes/config"
	"quicknotes/model"
)

// MemoryUserStore keeps users in process memory. Used for tests and local runs.
type MemoryUserStore struct {
	mu      sync.RWMutex
	byID    map[string]*model.User
	byEmail map[string]string
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byID:    make(map[string]*model.User),
		byEmail: make(map[string]string),
	}
}

var _ UserStore = (*MemoryUserStore)(nil)

func (s *MemoryUserStore) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[user.Email]; exists {
		return ErrDuplicateEmail
	}
	stored := *user
	s.byID[user.ID] = &stored
	s.byEmail[user.Email] = user.ID
	return nil
}

func (s *MemoryUserStore) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	u := *s.byID[id]
	return &u, nil
}

func (s *MemoryUserStore) FindUserByID(_ context.Context, userID string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// Remove deletes a user. Accounts are never deleted through the API; this
// exists so callers can simulate an identity vanishing after token issuance.
func (s *MemoryUserStore) Remove(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.byID[userID]; ok {
		delete(s.byEmail, u.Email)
		delete(s.byID, userID)
	}
}

// MemoryNoteStore keeps notes in insertion order.
type MemoryNoteStore struct {
	mu    sync.RWMutex
	notes []*model.Note
}

func NewMemoryNoteStore() *MemoryNoteStore {
	return &MemoryNoteStore{}
}

var _ NoteStore = (*MemoryNoteStore)(nil)

func copyNote(n *model.Note) *model.Note {
	cp := *n
	cp.Tags = append([]string{}, n.Tags...)
	return &cp
}

func (s *MemoryNoteStore) CreateNote(_ context.Context, note *model.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	note.Tags = emptyTags(note.Tags)
	s.notes = append(s.notes, copyNote(note))
	return nil
}

// indexOf must be called with the lock held.
func (s *MemoryNoteStore) indexOf(noteID, userID string) int {
	for i, n := range s.notes {
		if n.ID == noteID && n.UserID == userID {
			return i
		}
	}
	return -1
}

func (s *MemoryNoteStore) GetNote(_ context.Context, noteID, userID string) (*model.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(noteID, userID)
	if i < 0 {
		return nil, ErrNotFound
	}
	return copyNote(s.notes[i]), nil
}

func (s *MemoryNoteStore) UpdateNote(_ context.Context, noteID, userID string, update model.NoteUpdate) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(noteID, userID)
	if i < 0 {
		return nil, ErrNotFound
	}
	update.Apply(s.notes[i])
	s.notes[i].Tags = append([]string{}, s.notes[i].Tags...)
	return copyNote(s.notes[i]), nil
}

func (s *MemoryNoteStore) DeleteNote(_ context.Context, noteID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(noteID, userID)
	if i < 0 {
		return ErrNotFound
	}
	s.notes = append(s.notes[:i], s.notes[i+1:]...)
	return nil
}

func (s *MemoryNoteStore) ListNotes(_ context.Context, userID string) ([]*model.Note, error) {
	return s.filter(func(n *model.Note) bool { return n.UserID == userID }), nil
}

func (s *MemoryNoteStore) SearchNotes(_ context.Context, userID, query string) ([]*model.Note, error) {
	q := strings.ToLower(query)
	return s.filter(func(n *model.Note) bool {
		return n.UserID == userID &&
			(strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q))
	}), nil
}

func (s *MemoryNoteStore) filter(keep func(*model.Note) bool) []*model.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*model.Note{}
	for _, n := range s.notes {
		if keep(n) {
			out = append(out, copyNote(n))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsPinned && !out[j].IsPinned
	})
	return out
}

// NewMemoryStores returns an empty in-memory backend.
func NewMemoryStores() *Stores {
	return &Stores{
		Driver: config.DriverMemory,
		Users:  NewMemoryUserStore(),
		Notes:  NewMemoryNoteStore(),
	}
}
