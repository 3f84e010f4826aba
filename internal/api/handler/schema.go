package handler

import (
	"time"

	"github.com/quillpress/content-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	FirstName       string `json:"first_name"       validate:"required,alpha,max=30"`
	LastName        string `json:"last_name"        validate:"required,alpha,max=30"`
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=4,max=64"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type registerAdminRequest struct {
	registerRequest
	AdminSecret string `json:"admin_secret" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type actorResponse struct {
	ID    int64       `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

type authResponse struct {
	Token string        `json:"token"`
	User  actorResponse `json:"user"`
}

// --- Articles ---

type createArticleRequest struct {
	Title   string `json:"title"   validate:"required,max=50,excludesall=<>"`
	Body    string `json:"body"    validate:"required,min=10"`
	Publish bool   `json:"publish"`
}

type editArticleRequest struct {
	Title string `json:"title" validate:"required,max=50,excludesall=<>"`
	Body  string `json:"body"  validate:"required,min=10"`
}

type articleResponse struct {
	ID          int64      `json:"id"`
	AuthorID    int64      `json:"author_id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	EditedAt    *time.Time `json:"edited_at,omitempty"`
}

func toArticleResponse(a *domain.Article) articleResponse {
	return articleResponse{
		ID:          a.ID,
		AuthorID:    a.AuthorID,
		Title:       a.Title,
		Body:        a.Body,
		IsPublished: a.IsPublished,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		EditedAt:    a.EditedAt,
	}
}

// toArticleList always yields a JSON array, never null.
func toArticleList(articles []domain.Article) []articleResponse {
	out := make([]articleResponse, 0, len(articles))
	for i := range articles {
		out = append(out, toArticleResponse(&articles[i]))
	}
	return out
}

// --- Comments ---

type commentRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

type commentResponse struct {
	ID          int64      `json:"id"`
	ArticleID   int64      `json:"article_id"`
	CommenterID int64      `json:"commenter_id"`
	Text        string     `json:"text"`
	CreatedAt   time.Time  `json:"created_at"`
	EditedAt    *time.Time `json:"edited_at,omitempty"`
}

func toCommentResponse(cm *domain.Comment) commentResponse {
	return commentResponse{
		ID:          cm.ID,
		ArticleID:   cm.ArticleID,
		CommenterID: cm.CommenterID,
		Text:        cm.Text,
		CreatedAt:   cm.CreatedAt,
		EditedAt:    cm.EditedAt,
	}
}

func toCommentList(comments []domain.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentResponse(&comments[i]))
	}
	return out
}

// --- Users ---

// editUserRequest only carries the fields a user may change about themselves.
type editUserRequest struct {
	FirstName string `json:"first_name" validate:"omitempty,alpha,max=30"`
	LastName  string `json:"last_name"  validate:"omitempty,alpha,max=30"`
}

type userResponse struct {
	ID        int64       `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
