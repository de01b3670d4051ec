package model

import (
	"time"
)

type Note struct {
	ID        string    `bson:"_id" json:"_id" validate:"required"`
	UserID    string    `bson:"userId" json:"userId" validate:"required"`
	Title     string    `bson:"title" json:"title" validate:"required"`
	Content   string    `bson:"content" json:"content" validate:"required"`
	Tags      []string  `bson:"tags" json:"tags"`
	IsPinned  bool      `bson:"isPinned" json:"isPinned"`
	CreatedOn time.Time `bson:"createdOn" json:"createdOn"`
}

// NoteUpdate carries a partial edit. Nil fields are left unchanged.
type NoteUpdate struct {
	Title    *string
	Content  *string
	Tags     *[]string
	IsPinned *bool
}

// Empty reports whether the update touches nothing.
func (u NoteUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.Tags == nil && u.IsPinned == nil
}

// Apply copies the present fields onto n.
func (u NoteUpdate) Apply(n *Note) {
	if u.Title != nil {
		n.Title = *u.Title
	}
	if u.Content != nil {
		n.Content = *u.Content
	}
	if u.Tags != nil {
		n.Tags = *u.Tags
	}
	if u.IsPinned != nil {
		n.IsPinned = *u.IsPinned
	}
}
