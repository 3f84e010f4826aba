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

const collectionUsers = "users"

// liveFilter matches a document by id only while it is not soft-deleted.
func liveFilter(id int64) bson.M {
	return bson.M{"_id": id, "deleted_at": nil}
}

type UserRepository struct {
	col *mongo.Collection
	ids *counters
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers), ids: newCounters(db)}
}

// Create inserts the account. The unique email index turns a concurrent
// duplicate registration into domain.ErrUserExists.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.ids.next(ctx, collectionUsers)
	if err != nil {
		return nil, err
	}

	doc := *user
	doc.ID = id
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &doc, nil
}

// FindByEmail matches the email exactly. Soft-deleted accounts are returned so
// the caller can decide how to treat them.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.User
	if err := r.col.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// UpdateName changes the non-empty name fields of a live account.
func (r *UserRepository) UpdateName(ctx context.Context, id int64, firstName, lastName string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if firstName != "" {
		set["first_name"] = firstName
	}
	if lastName != "" {
		set["last_name"] = lastName
	}

	var u domain.User
	err := r.col.FindOneAndUpdate(ctx, liveFilter(id), bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.col, id)
}

// softDelete stamps deleted_at on a live document. Deleting twice reports
// domain.ErrNotFound.
func softDelete(ctx context.Context, col *mongo.Collection, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.UpdateOne(ctx, liveFilter(id), bson.M{"$set": bson.M{"deleted_at": time.Now().UTC()}})
	if err != nil {
		return fmt.Errorf("soft delete %s %d: %w", col.Name(), id, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
