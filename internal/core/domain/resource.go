package domain

import (
	"fmt"
	"time"
)

// ResourceKind enumerates the owned resource types.
type ResourceKind string

const (
	KindUser    ResourceKind = "user"
	KindArticle ResourceKind = "article"
	KindComment ResourceKind = "comment"
)

// Resource is the ownership record every authorization decision runs against.
// A non-nil DeletedAt means the resource is logically absent.
type Resource struct {
	Kind      ResourceKind `json:"kind"`
	ID        int64        `json:"id"`
	OwnerID   int64        `json:"owner_id"`
	Published bool         `json:"published"`
	DeletedAt *time.Time   `json:"deleted_at,omitempty"`
}

func (r *Resource) IsDeleted() bool {
	return r.DeletedAt != nil
}

// NotFoundError builds the error returned for an absent or soft-deleted
// resource. Both cases produce the same message.
func NotFoundError(kind ResourceKind, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
}
