package usecase

//go:generate mockgen -source=token_validator.go -destination=../testutil/mock/usecase/token_validator.go -package=usecasemock

import (
	"cleanspace/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Principal is the authenticated caller carried by an access token.
type Principal struct {
	UserID uuid.UUID
	Email  string
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Principal{}, err
	}
	return Principal{UserID: claims.UserID, Email: claims.Email}, nil
}
