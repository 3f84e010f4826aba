package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quillpress/content-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenConfig is the immutable signing configuration. The secret is copied
// when the service is built.
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
}

type tokenClaims struct {
	UserID int64       `json:"id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

type TokenOption func(*TokenService)

// WithClock overrides the time source used for iat, exp and expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		s.now = now
	}
}

func NewTokenService(cfg TokenConfig, opts ...TokenOption) (*TokenService, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("token service: signing secret is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	secret := make([]byte, len(cfg.Secret))
	copy(secret, cfg.Secret)

	s := &TokenService{
		secret: secret,
		ttl:    ttl,
		issuer: cfg.Issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue signs {id, email, role, iat, exp} for actor.
func (s *TokenService) Issue(actor domain.Actor) (string, error) {
	if actor.IsAnonymous() {
		return "", fmt.Errorf("issue token: %w", domain.InvalidInput("missing subject"))
	}
	if _, ok := domain.ParseRole(string(actor.Role)); !ok {
		return "", fmt.Errorf("issue token: %w", domain.InvalidInput("unknown role %q", actor.Role))
	}

	now := s.now().UTC()
	claims := tokenClaims{
		UserID: actor.ID,
		Email:  actor.Email,
		Role:   actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(actor.ID, 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and rebuilds the actor from the payload.
// The payload is trusted as-is: it is not re-checked against the user store.
func (s *TokenService) Verify(tokenString string) (domain.Actor, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return domain.Actor{}, mapTokenError(err)
	}

	role, ok := domain.ParseRole(string(claims.Role))
	if !ok || claims.UserID <= 0 || claims.Subject != strconv.FormatInt(claims.UserID, 10) {
		return domain.Actor{}, domain.ErrMalformedToken
	}

	return domain.Actor{ID: claims.UserID, Email: claims.Email, Role: role}, nil
}

// mapTokenError folds jwt errors into the three token failure kinds.
// jwt checks the signature before any claim, so a forged expired token is a
// signature failure.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domain.ErrMalformedToken
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return domain.ErrBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	default:
		return domain.ErrMalformedToken
	}
}
