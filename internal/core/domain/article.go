package domain

import "time"

// Article is a piece of authored content. Only its author may edit or publish it.
type Article struct {
	ID          int64      `json:"id" bson:"_id"`
	AuthorID    int64      `json:"author_id" bson:"author_id"`
	Title       string     `json:"title" bson:"title"`
	Body        string     `json:"body" bson:"body"`
	IsPublished bool       `json:"is_published" bson:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty" bson:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	EditedAt    *time.Time `json:"edited_at,omitempty" bson:"edited_at,omitempty"`
	DeletedAt   *time.Time `json:"-" bson:"deleted_at"`
}

func (a *Article) Ownership() Resource {
	return Resource{
		Kind:      KindArticle,
		ID:        a.ID,
		OwnerID:   a.AuthorID,
		Published: a.IsPublished,
		DeletedAt: a.DeletedAt,
	}
}
