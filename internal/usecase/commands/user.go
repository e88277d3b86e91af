package commands

//go:generate mockgen -source=user.go -destination=../../testutil/mock/commands/user.go -package=commandsmock

import (
	"context"
	"log/slog"

	"cleanspace/internal/domain/user"
	"cleanspace/internal/infra"
	"cleanspace/internal/pkg/errs"
	"cleanspace/internal/usecase/shared"
)

type EnsureUserCommand struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type UserCommands interface {
	// EnsureUser creates the account unless one with the same email exists.
	EnsureUser(ctx context.Context, cmd EnsureUserCommand) (*user.User, bool, error)
}

type userCommandsImpl struct {
	uow     shared.UnitOfWork
	encoder shared.PasswordEncoder
}

func NewUserCommands(uow shared.UnitOfWork, encoder shared.PasswordEncoder) UserCommands {
	return &userCommandsImpl{
		uow:     uow,
		encoder: encoder,
	}
}

func (c *userCommandsImpl) EnsureUser(ctx context.Context, cmd EnsureUserCommand) (*user.User, bool, error) {
	email, err := user.NewEmail(cmd.Email)
	if err != nil {
		return nil, false, errs.Mark(err, errs.ErrInvalidArgument)
	}
	pw, err := user.NewPassword(cmd.Password)
	if err != nil {
		return nil, false, errs.Mark(err, errs.ErrInvalidArgument)
	}

	var (
		result  *user.User
		created bool
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Users().FindByEmail(ctx, email.Value())
		if err == nil {
			result = existing
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		hash, err := c.encoder.Encode(pw.Value())
		if err != nil {
			return errs.Wrap(err, "failed to hash password")
		}

		result, err = tx.Users().Save(ctx, user.NewUser(cmd.FirstName, cmd.LastName, email, hash))
		if err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if created {
		slog.InfoContext(ctx, "user created", "user_id", result.ID(), "email", result.Email().Value())
	}
	return result, created, nil
}
