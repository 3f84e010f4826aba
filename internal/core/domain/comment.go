package domain

import "time"

// Comment is a reader's reply attached to an article.
type Comment struct {
	ID          int64      `json:"id" bson:"_id"`
	ArticleID   int64      `json:"article_id" bson:"article_id"`
	CommenterID int64      `json:"commenter_id" bson:"commenter_id"`
	Text        string     `json:"text" bson:"text"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	EditedAt    *time.Time `json:"edited_at,omitempty" bson:"edited_at,omitempty"`
	DeletedAt   *time.Time `json:"-" bson:"deleted_at"`
}

func (c *Comment) Ownership() Resource {
	return Resource{
		Kind:      KindComment,
		ID:        c.ID,
		OwnerID:   c.CommenterID,
		Published: true,
		DeletedAt: c.DeletedAt,
	}
}
