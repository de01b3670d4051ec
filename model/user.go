package model

import "time"

type User struct {
	ID        string    `bson:"_id" json:"_id" validate:"required"`           // Unique ID
	FullName  string    `bson:"fullName" json:"fullName" validate:"required"` // Display name
	Email     string    `bson:"email" json:"email" validate:"required"`       // Login identity, unique
	Password  string    `bson:"password" json:"-" validate:"required"`        // argon2id salt$hash
	CreatedOn time.Time `bson:"createdOn" json:"createdOn"`                   // Registration time
}

// TokenUser is the identity embedded in an access token. It is a snapshot taken
// at issuance and is not refreshed until the user logs in again.
type TokenUser struct {
	ID        string    `json:"_id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedOn time.Time `json:"createdOn"`
}

// Identity returns the token snapshot of the user, without the password hash.
func (u *User) Identity() TokenUser {
	return TokenUser{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedOn: u.CreatedOn,
	}
}
