package service

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/quillpress/content-api/internal/core/domain"
)

type stubUserRepo struct {
	mu     sync.Mutex
	users  map[int64]*domain.User
	nextID int64
	// findErr, when set, is returned by every lookup.
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	dup := cloneUser(user)
	dup.ID = r.nextID
	r.users[dup.ID] = dup
	return cloneUser(dup), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateName(_ context.Context, id int64, firstName, lastName string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, domain.ErrNotFound
	}
	if firstName != "" {
		u.FirstName = firstName
	}
	if lastName != "" {
		u.LastName = lastName
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) SoftDelete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return domain.ErrNotFound
	}
	now := time.Now().UTC()
	u.DeletedAt = &now
	return nil
}

type stubArticleRepo struct {
	articles map[int64]*domain.Article
	nextID   int64
}

func newStubArticleRepo() *stubArticleRepo {
	return &stubArticleRepo{articles: make(map[int64]*domain.Article)}
}

func (r *stubArticleRepo) put(a domain.Article) {
	r.articles[a.ID] = &a
}

func (r *stubArticleRepo) Create(_ context.Context, a *domain.Article) (*domain.Article, error) {
	r.nextID++
	dup := *a
	dup.ID = 100 + r.nextID
	r.articles[dup.ID] = &dup
	out := dup
	return &out, nil
}

func (r *stubArticleRepo) FindByID(_ context.Context, id int64) (*domain.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	dup := *a
	return &dup, nil
}

func (r *stubArticleRepo) IsLive(_ context.Context, id int64) (bool, error) {
	_, err := r.live(id)
	return err == nil, nil
}

func (r *stubArticleRepo) ListPublished(_ context.Context) ([]domain.Article, error) {
	return r.list(func(a *domain.Article) bool { return a.IsPublished }), nil
}

func (r *stubArticleRepo) ListByAuthor(_ context.Context, authorID int64, includeDrafts bool) ([]domain.Article, error) {
	return r.list(func(a *domain.Article) bool {
		return a.AuthorID == authorID && (includeDrafts || a.IsPublished)
	}), nil
}

func (r *stubArticleRepo) list(keep func(*domain.Article) bool) []domain.Article {
	var out []domain.Article
	for _, a := range r.articles {
		if a.DeletedAt == nil && keep(a) {
			out = append(out, *a)
		}
	}
	slices.SortFunc(out, func(x, y domain.Article) int { return cmp.Compare(x.ID, y.ID) })
	return out
}

func (r *stubArticleRepo) live(id int64) (*domain.Article, error) {
	a, ok := r.articles[id]
	if !ok || a.DeletedAt != nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (r *stubArticleRepo) Update(_ context.Context, id int64, title, body string) (*domain.Article, error) {
	a, err := r.live(id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	a.Title, a.Body, a.EditedAt = title, body, &now
	dup := *a
	return &dup, nil
}

func (r *stubArticleRepo) Publish(_ context.Context, id int64) (*domain.Article, error) {
	a, err := r.live(id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	a.IsPublished, a.PublishedAt = true, &now
	dup := *a
	return &dup, nil
}

func (r *stubArticleRepo) SoftDelete(_ context.Context, id int64) error {
	a, err := r.live(id)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	a.DeletedAt = &now
	return nil
}

type stubCommentRepo struct {
	comments map[int64]*domain.Comment
	nextID   int64
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[int64]*domain.Comment)}
}

func (r *stubCommentRepo) put(c domain.Comment) {
	r.comments[c.ID] = &c
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	r.nextID++
	dup := *c
	dup.ID = 500 + r.nextID
	r.comments[dup.ID] = &dup
	out := dup
	return &out, nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id int64) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	dup := *c
	return &dup, nil
}

func (r *stubCommentRepo) ListByArticle(_ context.Context, articleID int64) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, c := range r.comments {
		if c.ArticleID == articleID && c.DeletedAt == nil {
			out = append(out, *c)
		}
	}
	slices.SortFunc(out, func(x, y domain.Comment) int { return cmp.Compare(x.ID, y.ID) })
	return out, nil
}

func (r *stubCommentRepo) Update(_ context.Context, id int64, text string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok || c.DeletedAt != nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now().UTC()
	c.Text, c.EditedAt = text, &now
	dup := *c
	return &dup, nil
}

func (r *stubCommentRepo) SoftDelete(_ context.Context, id int64) error {
	c, ok := r.comments[id]
	if !ok || c.DeletedAt != nil {
		return domain.ErrNotFound
	}
	now := time.Now().UTC()
	c.DeletedAt = &now
	return nil
}

// stubResourceStore projects ownership records out of the stub repositories.
type stubResourceStore struct {
	users    *stubUserRepo
	articles *stubArticleRepo
	comments *stubCommentRepo
	err      error
}

func (s *stubResourceStore) FindByID(ctx context.Context, kind domain.ResourceKind, id int64) (*domain.Resource, error) {
	if s.err != nil {
		return nil, s.err
	}
	var res domain.Resource
	switch kind {
	case domain.KindUser:
		u, err := s.users.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		res = u.Ownership()
	case domain.KindArticle:
		a, err := s.articles.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		res = a.Ownership()
	case domain.KindComment:
		c, err := s.comments.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		res = c.Ownership()
	default:
		return nil, errors.New("unknown kind")
	}
	return &res, nil
}

type invalidation struct {
	kind domain.ResourceKind
	id   int64
}

type stubInvalidator struct {
	calls []invalidation
	err   error
}

func (s *stubInvalidator) Invalidate(_ context.Context, kind domain.ResourceKind, id int64) error {
	s.calls = append(s.calls, invalidation{kind: kind, id: id})
	return s.err
}

type recordedDecision struct {
	kind     domain.ResourceKind
	op       domain.Operation
	decision domain.Decision
}

type stubRecorder struct {
	decisions []recordedDecision
}

func (s *stubRecorder) RecordDecision(kind domain.ResourceKind, op domain.Operation, d domain.Decision) {
	s.decisions = append(s.decisions, recordedDecision{kind: kind, op: op, decision: d})
}

// countingHasher wraps a real hasher and counts Compare calls.
type countingHasher struct {
	inner    *BcryptHasher
	compares int
}

func (h *countingHasher) Hash(password string) (string, error) {
	return h.inner.Hash(password)
}

func (h *countingHasher) Compare(hash, password string) error {
	h.compares++
	return h.inner.Compare(hash, password)
}
