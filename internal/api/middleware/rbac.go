package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/quillpress/content-api/internal/core/domain"
)

// RequireRole admits only actors holding exactly role. It must run after
// Authenticate; a request without an actor is denied.
func RequireRole(role domain.Role) Stage {
	return func(ctx context.Context, _ *http.Request) (context.Context, error) {
		actor, ok := domain.ActorFromContext(ctx)
		if !ok {
			return ctx, fmt.Errorf("role %s required: no actor: %w", role, domain.ErrForbidden)
		}
		if actor.Role != role {
			return ctx, fmt.Errorf("role %s required: %w", role, domain.ErrForbidden)
		}
		return ctx, nil
	}
}
