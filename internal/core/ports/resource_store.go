package ports

import (
	"context"

	"github.com/quillpress/content-api/internal/core/domain"
)

// ResourceStore returns the ownership record of any owned resource,
// soft-deleted ones included. A resource that never existed is reported as
// domain.ErrNotFound.
type ResourceStore interface {
	FindByID(ctx context.Context, kind domain.ResourceKind, id int64) (*domain.Resource, error)
}

// ResourceInvalidator drops any cached ownership record after a mutation.
type ResourceInvalidator interface {
	Invalidate(ctx context.Context, kind domain.ResourceKind, id int64) error
}
