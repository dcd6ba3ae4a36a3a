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

const collectionContributions = "contributions"

type ContributionRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewContributionRepository(db *mongo.Database) *ContributionRepository {
	return &ContributionRepository{db: db, col: db.Collection(collectionContributions)}
}

// List returns contributions, optionally filtered by village.
func (r *ContributionRepository) List(ctx context.Context, filter ports.ListFilter) ([]domain.Contribution, error) {
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

	out := []domain.Contribution{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContributionRepository) FindByID(ctx context.Context, id int64) (*domain.Contribution, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Contribution
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContributionNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create allocates the next contribution id and inserts the record.
func (r *ContributionRepository) Create(ctx context.Context, c *domain.Contribution) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionContributions)
	if err != nil {
		return err
	}
	c.ID = id

	_, err = r.col.InsertOne(ctx, c)
	return err
}

// Update replaces the stored record whose id matches.
func (r *ContributionRepository) Update(ctx context.Context, c *domain.Contribution) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrContributionNotFound
	}
	return nil
}

func (r *ContributionRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrContributionNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the list filters rely on.
func (r *ContributionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "village", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
