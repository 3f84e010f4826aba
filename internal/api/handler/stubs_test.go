package handler

import (
	"context"

	"github.com/quillpress/content-api/internal/core/domain"
	"github.com/quillpress/content-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn      func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	registerAdminFn func(ctx context.Context, in ports.RegisterInput, secret string) (*ports.AuthResult, error)
	loginFn         func(ctx context.Context, email, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) RegisterAdmin(ctx context.Context, in ports.RegisterInput, secret string) (*ports.AuthResult, error) {
	return s.registerAdminFn(ctx, in, secret)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

// stubContentService embeds the interface so tests only implement what they call.
type stubContentService struct {
	ports.ContentService

	getArticleFn    func(ctx context.Context, actor domain.Actor, id int64) (*domain.Article, error)
	editArticleFn   func(ctx context.Context, actor domain.Actor, id int64, title, body string) (*domain.Article, error)
	deleteArticleFn func(ctx context.Context, actor domain.Actor, id int64) error
	createCommentFn func(ctx context.Context, actor domain.Actor, articleID int64, text string) (*domain.Comment, error)
	editUserFn      func(ctx context.Context, actor domain.Actor, id int64, firstName, lastName string) (*domain.User, error)

	listArticlesFn        func(ctx context.Context, actor domain.Actor) ([]domain.Article, error)
	listArticleCommentsFn func(ctx context.Context, actor domain.Actor, articleID int64) ([]domain.Comment, error)
	listUserArticlesFn    func(ctx context.Context, actor domain.Actor, userID int64) ([]domain.Article, error)
}

func (s *stubContentService) ListArticles(ctx context.Context, actor domain.Actor) ([]domain.Article, error) {
	return s.listArticlesFn(ctx, actor)
}

func (s *stubContentService) ListArticleComments(ctx context.Context, actor domain.Actor, articleID int64) ([]domain.Comment, error) {
	return s.listArticleCommentsFn(ctx, actor, articleID)
}

func (s *stubContentService) ListUserArticles(ctx context.Context, actor domain.Actor, userID int64) ([]domain.Article, error) {
	return s.listUserArticlesFn(ctx, actor, userID)
}

func (s *stubContentService) GetArticle(ctx context.Context, actor domain.Actor, id int64) (*domain.Article, error) {
	return s.getArticleFn(ctx, actor, id)
}

func (s *stubContentService) EditArticle(ctx context.Context, actor domain.Actor, id int64, title, body string) (*domain.Article, error) {
	return s.editArticleFn(ctx, actor, id, title, body)
}

func (s *stubContentService) DeleteArticle(ctx context.Context, actor domain.Actor, id int64) error {
	return s.deleteArticleFn(ctx, actor, id)
}

func (s *stubContentService) CreateComment(ctx context.Context, actor domain.Actor, articleID int64, text string) (*domain.Comment, error) {
	return s.createCommentFn(ctx, actor, articleID, text)
}

func (s *stubContentService) EditUser(ctx context.Context, actor domain.Actor, id int64, firstName, lastName string) (*domain.User, error) {
	return s.editUserFn(ctx, actor, id, firstName, lastName)
}
