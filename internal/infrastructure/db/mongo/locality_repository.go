package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
)

const collectionLocalities = "localities"

type LocalityRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewLocalityRepository(db *mongo.Database) *LocalityRepository {
	return &LocalityRepository{db: db, col: db.Collection(collectionLocalities)}
}

func (r *LocalityRepository) List(ctx context.Context, filter ports.ListFilter) ([]domain.Locality, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Village != "" {
		query["village"] = filter.Village
	}

	cur, err := r.col.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.Locality{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LocalityRepository) FindByID(ctx context.Context, id int64) (*domain.Locality, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var l domain.Locality
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLocalityNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *LocalityRepository) Create(ctx context.Context, l *domain.Locality) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionLocalities)
	if err != nil {
		return err
	}
	l.ID = id

	_, err = r.col.InsertOne(ctx, l)
	return err
}

func (r *LocalityRepository) Update(ctx context.Context, l *domain.Locality) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": l.ID}, l)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrLocalityNotFound
	}
	return nil
}

func (r *LocalityRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrLocalityNotFound
	}
	return nil
}

func (r *LocalityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "village", Value: 1}},
	})
	return err
}
