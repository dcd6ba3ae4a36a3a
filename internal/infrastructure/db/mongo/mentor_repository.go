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

const collectionMentors = "mentors"

type MentorRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewMentorRepository(db *mongo.Database) *MentorRepository {
	return &MentorRepository{db: db, col: db.Collection(collectionMentors)}
}

func (r *MentorRepository) List(ctx context.Context, filter ports.ListFilter) ([]domain.Mentor, error) {
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

	out := []domain.Mentor{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MentorRepository) FindByID(ctx context.Context, id int64) (*domain.Mentor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Mentor
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMentorNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MentorRepository) Create(ctx context.Context, m *domain.Mentor) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionMentors)
	if err != nil {
		return err
	}
	m.ID = id

	_, err = r.col.InsertOne(ctx, m)
	return err
}

func (r *MentorRepository) Update(ctx context.Context, m *domain.Mentor) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrMentorNotFound
	}
	return nil
}

func (r *MentorRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrMentorNotFound
	}
	return nil
}

func (r *MentorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "village", Value: 1}},
	})
	return err
}
