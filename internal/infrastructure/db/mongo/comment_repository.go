package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quillpress/content-api/internal/core/domain"
)

const collectionComments = "comments"

type CommentRepository struct {
	col *mongo.Collection
	ids *counters
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection(collectionComments), ids: newCounters(db)}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.ids.next(ctx, collectionComments)
	if err != nil {
		return nil, err
	}

	doc := *c
	doc.ID = id
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return &doc, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Comment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return &c, nil
}

func (r *CommentRepository) ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"article_id": articleID, "deleted_at": nil}, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	comments := make([]domain.Comment, 0)
	if err := cur.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) Update(ctx context.Context, id int64, text string) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Comment
	err := r.col.FindOneAndUpdate(ctx, liveFilter(id),
		bson.M{"$set": bson.M{"text": text, "edited_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return &c, nil
}

func (r *CommentRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.col, id)
}
