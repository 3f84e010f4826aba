package domain

import "fmt"

// Operation is an action an actor attempts on an owned resource.
type Operation string

const (
	OpView    Operation = "view"
	OpEdit    Operation = "edit"
	OpDelete  Operation = "delete"
	OpPublish Operation = "publish"
)

// Decision is the outcome of an ownership check.
type Decision int

const (
	Forbidden Decision = iota
	Allowed
	NotFound
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case NotFound:
		return "not_found"
	default:
		return "forbidden"
	}
}

// Authorize decides whether actor may perform op on res.
//
// Absence and soft deletion are checked first and win over every other rule,
// for every actor including the owner and admins. Edit and publish are
// owner-only. Delete is owner or ADMIN. Unknown operations are denied.
func Authorize(actor Actor, res *Resource, op Operation) Decision {
	if res == nil || res.IsDeleted() {
		return NotFound
	}

	isOwner := !actor.IsAnonymous() && actor.ID == res.OwnerID

	switch op {
	case OpView:
		if res.Published || isOwner {
			return Allowed
		}
		// drafts are invisible to everyone but their author
		return NotFound
	case OpEdit:
		if isOwner {
			return Allowed
		}
	case OpDelete:
		if isOwner || (!actor.IsAnonymous() && actor.IsAdmin()) {
			return Allowed
		}
	case OpPublish:
		if res.Kind == KindArticle && isOwner {
			return Allowed
		}
	}
	return Forbidden
}

// DecisionError describes a decision about kind/id as an error wrapping
// ErrNotFound or ErrForbidden. Allowed yields nil.
func DecisionError(d Decision, kind ResourceKind, id int64, op Operation) error {
	switch d {
	case Allowed:
		return nil
	case NotFound:
		return NotFoundError(kind, id)
	default:
		return fmt.Errorf("%s %s %d: %w", op, kind, id, ErrForbidden)
	}
}
