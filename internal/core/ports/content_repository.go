package ports

import (
	"context"

	"github.com/quillpress/content-api/internal/core/domain"
)

// ArticleRepository defines persistence for articles. Every mutation only
// matches live (non-deleted) documents and reports domain.ErrNotFound otherwise.
// List methods never return soft-deleted articles.
type ArticleRepository interface {
	Create(ctx context.Context, a *domain.Article) (*domain.Article, error)
	FindByID(ctx context.Context, id int64) (*domain.Article, error)
	// IsLive reports whether the article exists and is not soft-deleted.
	IsLive(ctx context.Context, id int64) (bool, error)
	// ListPublished returns live, published articles, newest first.
	ListPublished(ctx context.Context) ([]domain.Article, error)
	// ListByAuthor returns the live articles of authorID, newest first. Drafts
	// are included only when includeDrafts is set.
	ListByAuthor(ctx context.Context, authorID int64, includeDrafts bool) ([]domain.Article, error)
	Update(ctx context.Context, id int64, title, body string) (*domain.Article, error)
	Publish(ctx context.Context, id int64) (*domain.Article, error)
	SoftDelete(ctx context.Context, id int64) error
}

// CommentRepository defines persistence for comments.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	// ListByArticle returns the live comments of articleID, oldest first.
	ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error)
	Update(ctx context.Context, id int64, text string) (*domain.Comment, error)
	SoftDelete(ctx context.Context, id int64) error
}
