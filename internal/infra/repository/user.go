package repository

import (
	"context"

	"cleanspace/internal/domain/user"
	"cleanspace/internal/infra"
	"cleanspace/internal/infra/db"
	"cleanspace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertUser = `
INSERT INTO users (first_name, last_name, email, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING id`

	selectUserByEmail = `
SELECT id, first_name, last_name, email, password_hash
FROM users
WHERE lower(email) = lower($1)`
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) (*user.User, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertUser,
		u.FirstName(), u.LastName(), u.Email().Value(), u.PasswordHash(),
	).Scan(&id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}
	return u.WithID(id), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var (
		id                   uuid.UUID
		firstName, lastName  string
		rawEmail, passwdHash string
	)
	err := r.db.QueryRow(ctx, selectUserByEmail, email).Scan(&id, &firstName, &lastName, &rawEmail, &passwdHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	parsed, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}
	return user.ReconstructUser(id, firstName, lastName, parsed, passwdHash), nil
}
