package ports

import (
	"context"

	"github.com/quillpress/content-api/internal/core/domain"
)

// CreateArticleInput carries the fields of a new article.
type CreateArticleInput struct {
	Title   string
	Body    string
	Publish bool
}

// ContentService gates every read and mutation of owned resources behind the
// ownership policy.
type ContentService interface {
	CreateArticle(ctx context.Context, actor domain.Actor, in CreateArticleInput) (*domain.Article, error)
	GetArticle(ctx context.Context, actor domain.Actor, id int64) (*domain.Article, error)
	ListArticles(ctx context.Context, actor domain.Actor) ([]domain.Article, error)
	EditArticle(ctx context.Context, actor domain.Actor, id int64, title, body string) (*domain.Article, error)
	DeleteArticle(ctx context.Context, actor domain.Actor, id int64) error
	PublishArticle(ctx context.Context, actor domain.Actor, id int64) (*domain.Article, error)

	CreateComment(ctx context.Context, actor domain.Actor, articleID int64, text string) (*domain.Comment, error)
	ListArticleComments(ctx context.Context, actor domain.Actor, articleID int64) ([]domain.Comment, error)
	EditComment(ctx context.Context, actor domain.Actor, id int64, text string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, actor domain.Actor, id int64) error

	GetUser(ctx context.Context, actor domain.Actor, id int64) (*domain.User, error)
	ListUserArticles(ctx context.Context, actor domain.Actor, userID int64) ([]domain.Article, error)
	EditUser(ctx context.Context, actor domain.Actor, id int64, firstName, lastName string) (*domain.User, error)
	DeleteUser(ctx context.Context, actor domain.Actor, id int64) error
}
