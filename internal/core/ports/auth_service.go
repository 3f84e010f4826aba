package ports

import (
	"context"

	"github.com/quillpress/content-api/internal/core/domain"
)

// TokenService mints and checks bearer tokens.
type TokenService interface {
	Issue(actor domain.Actor) (string, error)
	Verify(token string) (domain.Actor, error)
}

// RegisterInput carries the fields of a sign-up request.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthResult is returned by every successful sign-up or login.
type AuthResult struct {
	Token string
	User  domain.Actor
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	RegisterAdmin(ctx context.Context, in RegisterInput, adminSecret string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
