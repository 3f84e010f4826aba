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

// ResourceStore reads ownership records straight from the entity collections.
// Only the fields the policy needs are fetched.
type ResourceStore struct {
	db *mongo.Database
}

func NewResourceStore(db *mongo.Database) *ResourceStore {
	return &ResourceStore{db: db}
}

// ownershipDoc is the union of the ownership fields of every kind.
type ownershipDoc struct {
	ID          int64      `bson:"_id"`
	AuthorID    int64      `bson:"author_id"`
	CommenterID int64      `bson:"commenter_id"`
	IsPublished bool       `bson:"is_published"`
	DeletedAt   *time.Time `bson:"deleted_at"`
}

func (s *ResourceStore) FindByID(ctx context.Context, kind domain.ResourceKind, id int64) (*domain.Resource, error) {
	var collection string
	projection := bson.M{"_id": 1, "deleted_at": 1}
	switch kind {
	case domain.KindUser:
		collection = collectionUsers
	case domain.KindArticle:
		collection = collectionArticles
		projection["author_id"] = 1
		projection["is_published"] = 1
	case domain.KindComment:
		collection = collectionComments
		projection["commenter_id"] = 1
	default:
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc ownershipDoc
	err := s.db.Collection(collection).
		FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(projection)).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find %s ownership: %w", kind, err)
	}

	res := domain.Resource{Kind: kind, ID: doc.ID, DeletedAt: doc.DeletedAt}
	switch kind {
	case domain.KindUser:
		res.OwnerID, res.Published = doc.ID, true
	case domain.KindArticle:
		res.OwnerID, res.Published = doc.AuthorID, doc.IsPublished
	case domain.KindComment:
		res.OwnerID, res.Published = doc.CommenterID, true
	}
	return &res, nil
}
