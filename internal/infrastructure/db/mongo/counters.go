package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionCounters = "counters"

// nextSequence atomically allocates the next numeric id for the named
// collection via an upserted $inc on the counters document. Unlike the
// max(id)+1 scheme it is safe under concurrent creates and never reuses
// an id after a deletion.
func nextSequence(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	res := db.Collection(collectionCounters).FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", name, err)
	}
	return doc.Seq, nil
}
