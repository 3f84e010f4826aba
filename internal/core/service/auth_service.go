package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/quillpress/content-api/internal/core/domain"
	"github.com/quillpress/content-api/internal/core/ports"
)

const (
	minPasswordLen = 4
	maxPasswordLen = 64
	maxNameLen     = 30
)

// AuthService implements registration and login.
type AuthService struct {
	users       ports.UserRepository
	hasher      ports.PasswordHasher
	verifier    *CredentialVerifier
	tokens      ports.TokenService
	adminSecret string
	log         zerolog.Logger
}

// NewAuthService wires the account flows. An empty adminSecret disables
// admin self-registration.
func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	verifier *CredentialVerifier,
	tokens ports.TokenService,
	adminSecret string,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		hasher:      hasher,
		verifier:    verifier,
		tokens:      tokens,
		adminSecret: adminSecret,
		log:         log,
	}
}

// Register creates a CLIENT account and signs the caller in.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.register(ctx, in, domain.RoleClient)
}

// RegisterAdmin creates an ADMIN account. adminSecret must match the
// configured registration secret.
func (s *AuthService) RegisterAdmin(ctx context.Context, in ports.RegisterInput, adminSecret string) (*ports.AuthResult, error) {
	if s.adminSecret == "" {
		return nil, fmt.Errorf("admin registration disabled: %w", domain.ErrForbidden)
	}
	if subtle.ConstantTimeCompare([]byte(adminSecret), []byte(s.adminSecret)) != 1 {
		s.log.Warn().Msg("admin registration rejected: bad secret")
		return nil, fmt.Errorf("admin registration: %w", domain.ErrForbidden)
	}
	return s.register(ctx, in, domain.RoleAdmin)
}

func (s *AuthService) register(ctx context.Context, in ports.RegisterInput, role domain.Role) (*ports.AuthResult, error) {
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrUserExists
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("register: lookup email: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	actor := domain.Actor{ID: created.ID, Email: created.Email, Role: created.Role}
	token, err := s.tokens.Issue(actor)
	if err != nil {
		return nil, fmt.Errorf("register: issue token: %w", err)
	}

	s.log.Info().Int64("user_id", created.ID).Str("role", string(role)).Msg("user registered")
	return &ports.AuthResult{Token: token, User: actor}, nil
}

// Login verifies the credentials and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	actor, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(actor)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.log.Info().Int64("user_id", actor.ID).Msg("login succeeded")
	return &ports.AuthResult{Token: token, User: actor}, nil
}

func validateRegistration(in ports.RegisterInput) error {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	switch {
	case first == "" || len(first) > maxNameLen:
		return domain.InvalidInput("first name must be between 1 and %d characters", maxNameLen)
	case last == "" || len(last) > maxNameLen:
		return domain.InvalidInput("last name must be between 1 and %d characters", maxNameLen)
	case strings.TrimSpace(in.Email) == "":
		return domain.InvalidInput("email is required")
	case len(in.Password) < minPasswordLen || len(in.Password) > maxPasswordLen:
		return domain.InvalidInput("password must be between %d and %d characters", minPasswordLen, maxPasswordLen)
	case in.Password != in.ConfirmPassword:
		return domain.InvalidInput("passwords do not match")
	}
	return nil
}
