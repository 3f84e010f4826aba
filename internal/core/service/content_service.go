package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/quillpress/content-api/internal/core/domain"
	"github.com/quillpress/content-api/internal/core/ports"
)

// DecisionRecorder observes every ownership decision (metrics).
type DecisionRecorder interface {
	RecordDecision(kind domain.ResourceKind, op domain.Operation, d domain.Decision)
}

// ContentDeps groups the collaborators of ContentService. Invalidator and
// Recorder are optional.
type ContentDeps struct {
	Resources   ports.ResourceStore
	Articles    ports.ArticleRepository
	Comments    ports.CommentRepository
	Users       ports.UserRepository
	Invalidator ports.ResourceInvalidator
	Recorder    DecisionRecorder
}

// ContentService fetches the ownership record, asks domain.Authorize, and
// only then touches the repository.
type ContentService struct {
	resources   ports.ResourceStore
	articles    ports.ArticleRepository
	comments    ports.CommentRepository
	users       ports.UserRepository
	invalidator ports.ResourceInvalidator
	recorder    DecisionRecorder
	log         zerolog.Logger
}

func NewContentService(deps ContentDeps, log zerolog.Logger) *ContentService {
	return &ContentService{
		resources:   deps.Resources,
		articles:    deps.Articles,
		comments:    deps.Comments,
		users:       deps.Users,
		invalidator: deps.Invalidator,
		recorder:    deps.Recorder,
		log:         log,
	}
}

// --- Articles ---

func (s *ContentService) CreateArticle(ctx context.Context, actor domain.Actor, in ports.CreateArticleInput) (*domain.Article, error) {
	if actor.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}
	title, body := strings.TrimSpace(in.Title), strings.TrimSpace(in.Body)
	if title == "" || body == "" {
		return nil, domain.InvalidInput("title and body are required")
	}

	now := time.Now().UTC()
	a := &domain.Article{
		AuthorID:    actor.ID,
		Title:       title,
		Body:        body,
		IsPublished: in.Publish,
		CreatedAt:   now,
	}
	if in.Publish {
		a.PublishedAt = &now
	}

	created, err := s.articles.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	s.log.Info().Int64("article_id", created.ID).Int64("author_id", actor.ID).Msg("article created")
	return created, nil
}

func (s *ContentService) GetArticle(ctx context.Context, actor domain.Actor, id int64) (*domain.Article, error) {
	a, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(domain.KindArticle, id, err)
	}
	res := a.Ownership()
	if err := s.decide(actor, &res, domain.KindArticle, id, domain.OpView); err != nil {
		return nil, err
	}
	return a, nil
}

// ListArticles returns the published feed. Drafts never appear here, not even
// the caller's own.
func (s *ContentService) ListArticles(ctx context.Context, _ domain.Actor) ([]domain.Article, error) {
	articles, err := s.articles.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

func (s *ContentService) EditArticle(ctx context.Context, actor domain.Actor, id int64, title, body string) (*domain.Article, error) {
	title, body = strings.TrimSpace(title), strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, domain.InvalidInput("title and body are required")
	}
	if err := s.authorize(ctx, actor, domain.KindArticle, id, domain.OpEdit); err != nil {
		return nil, err
	}

	updated, err := s.articles.Update(ctx, id, title, body)
	if err != nil {
		return nil, s.lookupError(domain.KindArticle, id, err)
	}
	return updated, nil
}

func (s *ContentService) DeleteArticle(ctx context.Context, actor domain.Actor, id int64) error {
	if err := s.authorize(ctx, actor, domain.KindArticle, id, domain.OpDelete); err != nil {
		return err
	}
	if err := s.articles.SoftDelete(ctx, id); err != nil {
		return s.lookupError(domain.KindArticle, id, err)
	}
	s.invalidate(ctx, domain.KindArticle, id)
	s.log.Info().Int64("article_id", id).Int64("actor_id", actor.ID).Msg("article deleted")
	return nil
}

func (s *ContentService) PublishArticle(ctx context.Context, actor domain.Actor, id int64) (*domain.Article, error) {
	if err := s.authorize(ctx, actor, domain.KindArticle, id, domain.OpPublish); err != nil {
		return nil, err
	}
	published, err := s.articles.Publish(ctx, id)
	if err != nil {
		return nil, s.lookupError(domain.KindArticle, id, err)
	}
	s.invalidate(ctx, domain.KindArticle, id)
	return published, nil
}

// --- Comments ---

// CreateComment attaches a comment to an article the actor can see.
func (s *ContentService) CreateComment(ctx context.Context, actor domain.Actor, articleID int64, text string) (*domain.Comment, error) {
	if actor.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.InvalidInput("text is required")
	}
	if err := s.authorize(ctx, actor, domain.KindArticle, articleID, domain.OpView); err != nil {
		return nil, err
	}
	// The ownership record may be cached; the insert has no live filter of
	// its own, so the parent is re-checked against the store.
	live, err := s.articles.IsLive(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("create comment: article %d: %w", articleID, err)
	}
	if !live {
		return nil, domain.NotFoundError(domain.KindArticle, articleID)
	}

	created, err := s.comments.Create(ctx, &domain.Comment{
		ArticleID:   articleID,
		CommenterID: actor.ID,
		Text:        text,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return created, nil
}

// ListArticleComments returns the live comments of an article the actor can
// see. A deleted or hidden article yields not found.
func (s *ContentService) ListArticleComments(ctx context.Context, actor domain.Actor, articleID int64) ([]domain.Comment, error) {
	if _, err := s.GetArticle(ctx, actor, articleID); err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments of article %d: %w", articleID, err)
	}
	return comments, nil
}

func (s *ContentService) EditComment(ctx context.Context, actor domain.Actor, id int64, text string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.InvalidInput("text is required")
	}
	if err := s.authorize(ctx, actor, domain.KindComment, id, domain.OpEdit); err != nil {
		return nil, err
	}
	updated, err := s.comments.Update(ctx, id, text)
	if err != nil {
		return nil, s.lookupError(domain.KindComment, id, err)
	}
	return updated, nil
}

func (s *ContentService) DeleteComment(ctx context.Context, actor domain.Actor, id int64) error {
	if err := s.authorize(ctx, actor, domain.KindComment, id, domain.OpDelete); err != nil {
		return err
	}
	if err := s.comments.SoftDelete(ctx, id); err != nil {
		return s.lookupError(domain.KindComment, id, err)
	}
	s.invalidate(ctx, domain.KindComment, id)
	return nil
}

// --- Users ---

func (s *ContentService) GetUser(ctx context.Context, actor domain.Actor, id int64) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(domain.KindUser, id, err)
	}
	res := u.Ownership()
	if err := s.decide(actor, &res, domain.KindUser, id, domain.OpView); err != nil {
		return nil, err
	}
	return u, nil
}

// ListUserArticles returns the live articles of a live user. Drafts are
// listed only for the user themselves.
func (s *ContentService) ListUserArticles(ctx context.Context, actor domain.Actor, userID int64) ([]domain.Article, error) {
	if _, err := s.GetUser(ctx, actor, userID); err != nil {
		return nil, err
	}
	self := !actor.IsAnonymous() && actor.ID == userID
	articles, err := s.articles.ListByAuthor(ctx, userID, self)
	if err != nil {
		return nil, fmt.Errorf("list articles of user %d: %w", userID, err)
	}
	return articles, nil
}

func (s *ContentService) EditUser(ctx context.Context, actor domain.Actor, id int64, firstName, lastName string) (*domain.User, error) {
	firstName, lastName = strings.TrimSpace(firstName), strings.TrimSpace(lastName)
	if firstName == "" && lastName == "" {
		return nil, domain.InvalidInput("no editable fields provided")
	}
	if err := s.authorize(ctx, actor, domain.KindUser, id, domain.OpEdit); err != nil {
		return nil, err
	}
	updated, err := s.users.UpdateName(ctx, id, firstName, lastName)
	if err != nil {
		return nil, s.lookupError(domain.KindUser, id, err)
	}
	return updated, nil
}

func (s *ContentService) DeleteUser(ctx context.Context, actor domain.Actor, id int64) error {
	if err := s.authorize(ctx, actor, domain.KindUser, id, domain.OpDelete); err != nil {
		return err
	}
	if err := s.users.SoftDelete(ctx, id); err != nil {
		return s.lookupError(domain.KindUser, id, err)
	}
	s.invalidate(ctx, domain.KindUser, id)
	s.log.Info().Int64("user_id", id).Int64("actor_id", actor.ID).Msg("user deleted")
	return nil
}

// --- helpers ---

// authorize loads the ownership record of kind/id and applies the policy.
func (s *ContentService) authorize(ctx context.Context, actor domain.Actor, kind domain.ResourceKind, id int64, op domain.Operation) error {
	res, err := s.resources.FindByID(ctx, kind, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("load %s %d: %w", kind, id, err)
		}
		res = nil
	}
	return s.decide(actor, res, kind, id, op)
}

func (s *ContentService) decide(actor domain.Actor, res *domain.Resource, kind domain.ResourceKind, id int64, op domain.Operation) error {
	d := domain.Authorize(actor, res, op)
	if s.recorder != nil {
		s.recorder.RecordDecision(kind, op, d)
	}
	if d != domain.Allowed {
		s.log.Debug().
			Str("kind", string(kind)).
			Int64("id", id).
			Str("op", string(op)).
			Int64("actor_id", actor.ID).
			Str("decision", d.String()).
			Msg("authorization denied")
	}
	return domain.DecisionError(d, kind, id, op)
}

// lookupError keeps not-found uniform and wraps any other fault.
func (s *ContentService) lookupError(kind domain.ResourceKind, id int64, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFoundError(kind, id)
	}
	return fmt.Errorf("%s %d: %w", kind, id, err)
}

func (s *ContentService) invalidate(ctx context.Context, kind domain.ResourceKind, id int64) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx, kind, id); err != nil {
		s.log.Warn().Err(err).Str("kind", string(kind)).Int64("id", id).Msg("ownership cache invalidation failed")
	}
}
