package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionCounters = "counters"

// counters hands out monotonically increasing integer ids, one sequence per
// collection. Ids are never reused, even after a soft delete.
type counters struct {
	col *mongo.Collection
}

func newCounters(db *mongo.Database) *counters {
	return &counters{col: db.Collection(collectionCounters)}
}

func (c *counters) next(ctx context.Context, sequence string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := c.col.FindOneAndUpdate(ctx,
		bson.M{"_id": sequence},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", sequence, err)
	}
	return doc.Seq, nil
}
