package domain

import "context"

// Actor is the authenticated identity of a single request. It is only ever
// built from a verified token or a verified credential pair.
type Actor struct {
	ID    int64
	Email string
	Role  Role
}

// IsAnonymous reports whether no identity was established.
func (a Actor) IsAnonymous() bool {
	return a.ID == 0
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type actorKey struct{}

// WithActor attaches the actor to ctx.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFromContext returns the actor attached by the identity resolver.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	if !ok || a.IsAnonymous() {
		return Actor{}, false
	}
	return a, true
}
