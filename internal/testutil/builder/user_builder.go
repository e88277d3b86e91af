//go:build unit || e2e

package builder

import (
	"cleanspace/internal/domain/user"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		PasswordHash: "hashed_password",
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	b.PasswordHash = hash
	return b
}

// Build methods
func (b *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(b.FirstName, b.LastName, email, b.PasswordHash), nil
}

func (b *UserBuilder) BuildPersisted() *user.User {
	email, err := user.NewEmail(b.Email)
	if err != nil {
		panic(err)
	}
	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return user.ReconstructUser(id, b.FirstName, b.LastName, email, b.PasswordHash)
}
