package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/quillpress/content-api/internal/core/domain"
	"github.com/quillpress/content-api/internal/core/ports"
)

// dummyPassword is hashed once at startup. Unknown emails are compared against
// it so they cost the same bcrypt round as a wrong password.
const dummyPassword = "content-api/credential-verifier"

// CredentialVerifier checks an email and password pair against the stored hash.
type CredentialVerifier struct {
	store     ports.CredentialStore
	hasher    ports.PasswordHasher
	dummyHash string
	log       zerolog.Logger
}

func NewCredentialVerifier(store ports.CredentialStore, hasher ports.PasswordHasher, log zerolog.Logger) (*CredentialVerifier, error) {
	dummy, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("credential verifier: hash dummy password: %w", err)
	}
	return &CredentialVerifier{store: store, hasher: hasher, dummyHash: dummy, log: log}, nil
}

// Verify returns the actor owning the credentials. Unknown email, wrong
// password and soft-deleted accounts all fail with domain.ErrInvalidCredentials.
// Store faults are returned as-is (wrapped) so they surface as 500s.
func (v *CredentialVerifier) Verify(ctx context.Context, email, password string) (domain.Actor, error) {
	user, err := v.store.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.Actor{}, fmt.Errorf("verify credentials: %w", err)
	}

	if user == nil {
		_ = v.hasher.Compare(v.dummyHash, password)
		return domain.Actor{}, domain.ErrInvalidCredentials
	}

	if err := v.hasher.Compare(user.PasswordHash, password); err != nil {
		return domain.Actor{}, domain.ErrInvalidCredentials
	}
	if user.DeletedAt != nil {
		v.log.Debug().Int64("user_id", user.ID).Msg("login attempt on deleted account")
		return domain.Actor{}, domain.ErrInvalidCredentials
	}

	return domain.Actor{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}
