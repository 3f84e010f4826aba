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

const (
	collectionArticles = "articles"
	// listLimit caps every unpaginated list read.
	listLimit = 100
)

type ArticleRepository struct {
	col *mongo.Collection
	ids *counters
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{col: db.Collection(collectionArticles), ids: newCounters(db)}
}

func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.ids.next(ctx, collectionArticles)
	if err != nil {
		return nil, err
	}

	doc := *a
	doc.ID = id
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}
	return &doc, nil
}

// FindByID returns the article even when soft-deleted.
func (r *ArticleRepository) FindByID(ctx context.Context, id int64) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Article
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return &a, nil
}

func (r *ArticleRepository) IsLive(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, liveFilter(id), options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("check article: %w", err)
	}
	return n > 0, nil
}

func (r *ArticleRepository) ListPublished(ctx context.Context) ([]domain.Article, error) {
	return r.list(ctx, bson.M{"is_published": true, "deleted_at": nil})
}

func (r *ArticleRepository) ListByAuthor(ctx context.Context, authorID int64, includeDrafts bool) ([]domain.Article, error) {
	filter := bson.M{"author_id": authorID, "deleted_at": nil}
	if !includeDrafts {
		filter["is_published"] = true
	}
	return r.list(ctx, filter)
}

func (r *ArticleRepository) list(ctx context.Context, filter bson.M) ([]domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	articles := make([]domain.Article, 0)
	if err := cur.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}
	return articles, nil
}

func (r *ArticleRepository) Update(ctx context.Context, id int64, title, body string) (*domain.Article, error) {
	return r.update(ctx, id, bson.M{
		"title":     title,
		"body":      body,
		"edited_at": time.Now().UTC(),
	})
}

func (r *ArticleRepository) Publish(ctx context.Context, id int64) (*domain.Article, error) {
	return r.update(ctx, id, bson.M{
		"is_published": true,
		"published_at": time.Now().UTC(),
	})
}

func (r *ArticleRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.col, id)
}

func (r *ArticleRepository) update(ctx context.Context, id int64, set bson.M) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Article
	err := r.col.FindOneAndUpdate(ctx, liveFilter(id), bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update article: %w", err)
	}
	return &a, nil
}
