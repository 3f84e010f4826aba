package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/quillpress/content-api/internal/api/metrics"
	"github.com/quillpress/content-api/internal/core/domain"
	"github.com/quillpress/content-api/internal/core/ports"
)

const bearerScheme = "Bearer"

var (
	errMissingHeader = errors.New("missing authorization header")
	errBadHeader     = errors.New("invalid authorization header")
)

// Authenticate resolves the bearer token into an Actor and attaches it to the
// request context. Any failure stops the request as unauthenticated.
func Authenticate(tokens ports.TokenService) Stage {
	return func(ctx context.Context, r *http.Request) (context.Context, error) {
		actor, err := resolveActor(tokens, r)
		if err != nil {
			return ctx, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
		}
		return domain.WithActor(ctx, actor), nil
	}
}

// OptionalAuthenticate lets requests without an Authorization header through
// as anonymous. A header that is present must still be valid.
func OptionalAuthenticate(tokens ports.TokenService) Stage {
	return func(ctx context.Context, r *http.Request) (context.Context, error) {
		actor, err := resolveActor(tokens, r)
		switch {
		case errors.Is(err, errMissingHeader):
			return ctx, nil
		case err != nil:
			return ctx, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
		}
		return domain.WithActor(ctx, actor), nil
	}
}

func resolveActor(tokens ports.TokenService, r *http.Request) (domain.Actor, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
		return domain.Actor{}, errMissingHeader
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, bearerScheme) || token == "" {
		metrics.TokenVerificationsTotal.WithLabelValues("malformed").Inc()
		return domain.Actor{}, errBadHeader
	}

	actor, err := tokens.Verify(token)
	metrics.TokenVerificationsTotal.WithLabelValues(verificationResult(err)).Inc()
	if err != nil {
		return domain.Actor{}, err
	}
	return actor, nil
}

func verificationResult(err error) string {
	switch {
	case err == nil:
		return "valid"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrBadSignature):
		return "bad_signature"
	default:
		return "malformed"
	}
}
