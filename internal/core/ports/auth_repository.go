package ports

import (
	"context"

	"github.com/quillpress/content-api/internal/core/domain"
)

// CredentialStore looks up credential records by email. A missing record is
// reported as domain.ErrNotFound.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserRepository defines persistence for accounts.
type UserRepository interface {
	CredentialStore
	// Create inserts the user and assigns its ID. A duplicate email yields
	// domain.ErrUserExists and nothing is written.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// UpdateName changes the editable profile fields of a live account.
	UpdateName(ctx context.Context, id int64, firstName, lastName string) (*domain.User, error)
	SoftDelete(ctx context.Context, id int64) error
}

// PasswordHasher hides the one-way salted hash algorithm.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
