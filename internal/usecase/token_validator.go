package usecase

import (
	"salon-booking/internal/domain/auth"
	"salon-booking/internal/pkg/jwt"
)

// VerifiedIdentity is what a valid identity token proves about its bearer.
type VerifiedIdentity struct {
	Identifier string
	Channel    auth.Channel
}

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (VerifiedIdentity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (VerifiedIdentity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return VerifiedIdentity{}, err
	}

	channel, err := auth.NewChannel(claims.Channel)
	if err != nil {
		return VerifiedIdentity{}, jwt.ErrInvalidToken
	}
	if claims.Identifier == "" {
		return VerifiedIdentity{}, jwt.ErrInvalidToken
	}

	return VerifiedIdentity{Identifier: claims.Identifier, Channel: channel}, nil
}
