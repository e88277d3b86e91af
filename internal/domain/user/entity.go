package user

import (
	"github.com/google/uuid"
)

// User is resolved by email during admission and login. Authentication data
// (the password hash) never leaves the usecase layer.
type User struct {
	id           uuid.UUID
	firstName    string
	lastName     string
	email        Email
	passwordHash string
}

func NewUser(firstName, lastName string, email Email, passwordHash string) *User {
	return &User{
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		passwordHash: passwordHash,
	}
}

func ReconstructUser(id uuid.UUID, firstName, lastName string, email Email, passwordHash string) *User {
	return &User{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		passwordHash: passwordHash,
	}
}

func (u *User) WithID(id uuid.UUID) *User {
	cp := *u
	cp.id = id
	return &cp
}

func (u *User) Equal(other *User) bool {
	if u == nil || other == nil || u.id == uuid.Nil || other.id == uuid.Nil {
		return false
	}
	return u.id == other.id
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
