package jwt_generator

//go:generate mockgen -source=jwt.go -destination=mock_jwt.go -package=jwt_generator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"taskly-api/pkg/config"
)

type JwtGenerator interface {
	IssueAccessToken(identity Identity) (string, error)
	IssueRefreshToken(identity Identity) (string, error)
	IssueTokens(identity Identity) (*Tokens, error)
	VerifyAccessToken(rawJwtToken string) (*Identity, error)
	VerifyRefreshToken(rawJwtToken string) (*Identity, error)
	Verify(rawJwtToken string, secret []byte) (*Identity, error)
}

type Option func(generator *jwtGenerator)

// WithClock replaces the wall clock used for issuing and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(generator *jwtGenerator) {
		generator.now = now
	}
}

type jwtGenerator struct {
	accessSecret    []byte
	refreshSecret   []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	now             func() time.Time
}

func NewJwtGenerator(jwtConfig config.JwtConfig, options ...Option) (JwtGenerator, error) {
	if len(jwtConfig.AccessSecret) == 0 || len(jwtConfig.RefreshSecret) == 0 {
		return nil, ErrEmptySecret
	}

	generator := &jwtGenerator{
		accessSecret:    jwtConfig.AccessSecret,
		refreshSecret:   jwtConfig.RefreshSecret,
		accessTokenTTL:  jwtConfig.AccessTokenTTL,
		refreshTokenTTL: jwtConfig.RefreshTokenTTL,
		now:             time.Now,
	}
	if generator.accessTokenTTL <= 0 {
		generator.accessTokenTTL = config.AccessTokenTTL
	}
	if generator.refreshTokenTTL <= 0 {
		generator.refreshTokenTTL = config.RefreshTokenTTL
	}

	for _, option := range options {
		option(generator)
	}

	return generator, nil
}

func (jwtGenerator *jwtGenerator) IssueAccessToken(identity Identity) (string, error) {
	return jwtGenerator.sign(identity, jwtGenerator.accessTokenTTL, jwtGenerator.accessSecret)
}

func (jwtGenerator *jwtGenerator) IssueRefreshToken(identity Identity) (string, error) {
	return jwtGenerator.sign(identity, jwtGenerator.refreshTokenTTL, jwtGenerator.refreshSecret)
}

func (jwtGenerator *jwtGenerator) IssueTokens(identity Identity) (*Tokens, error) {
	accessToken, err := jwtGenerator.IssueAccessToken(identity)
	if err != nil {
		return nil, err
	}

	refreshToken, err := jwtGenerator.IssueRefreshToken(identity)
	if err != nil {
		return nil, err
	}

	return &Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (jwtGenerator *jwtGenerator) VerifyAccessToken(rawJwtToken string) (*Identity, error) {
	return jwtGenerator.Verify(rawJwtToken, jwtGenerator.accessSecret)
}

func (jwtGenerator *jwtGenerator) VerifyRefreshToken(rawJwtToken string) (*Identity, error) {
	return jwtGenerator.Verify(rawJwtToken, jwtGenerator.refreshSecret)
}

// Verify checks signature, issuer and expiry only. A token is expired from the
// exact instant of its exp claim onwards.
func (jwtGenerator *jwtGenerator) Verify(rawJwtToken string, secret []byte) (*Identity, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(rawJwtToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("jwt token is not valid signature")
		}

		return secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	isValidIssuer := claims.VerifyIssuer(IssuerDefault, true)
	if !isValidIssuer {
		return nil, fmt.Errorf("%w: ambiguous jwt token issuer", ErrInvalidToken)
	}

	now := jwtGenerator.now().UTC()
	isJwtTokenActive := claims.VerifyExpiresAt(now, true)
	if !isJwtTokenActive {
		return nil, fmt.Errorf("%w: expired jwt token", ErrInvalidToken)
	}

	return claims.Identity(), nil
}

func (jwtGenerator *jwtGenerator) sign(identity Identity, ttl time.Duration, secret []byte) (string, error) {
	now := jwtGenerator.now().UTC()
	claims := Claims{
		Id:    identity.Id,
		Email: identity.Email,
		Role:  identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Id,
			Issuer:    IssuerDefault,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}
