package commands

//go:generate mockgen -source=auth.go -destination=../../testutil/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"strings"
	"time"

	"cleanspace/internal/domain/user"
	"cleanspace/internal/infra"
	"cleanspace/internal/pkg/errs"
	"cleanspace/internal/pkg/jwt"
	"cleanspace/internal/pkg/metrics"
	"cleanspace/internal/usecase/shared"
)

var (
	errInvalidCredentials = errs.New("invalid email or password")
	errTokenGeneration    = errs.New("token generation failed")
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User        *user.User
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	encoder    shared.PasswordEncoder
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, encoder shared.PasswordEncoder, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		encoder:    encoder,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	u, err := a.authenticate(ctx, cmd)
	metrics.RecordLogin(err == nil)
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Email().Value())
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, errTokenGeneration.Error()), errTokenGeneration)
	}

	return &LoginResult{
		User:        u,
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}

// authenticate reports unknown users and wrong passwords with the same error.
func (a *authCommandsImpl) authenticate(ctx context.Context, cmd LoginCommand) (*user.User, error) {
	if strings.TrimSpace(cmd.Email) == "" || cmd.Password == "" {
		return nil, errs.Mark(errInvalidCredentials, errs.ErrAuthenticationFailed)
	}

	var found *user.User
	err := a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		found, err = tx.Users().FindByEmail(ctx, strings.TrimSpace(cmd.Email))
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errInvalidCredentials, errs.ErrAuthenticationFailed)
		}
		return nil, err
	}

	if !a.encoder.Matches(cmd.Password, found.PasswordHash()) {
		return nil, errs.Mark(errInvalidCredentials, errs.ErrAuthenticationFailed)
	}
	return found, nil
}
