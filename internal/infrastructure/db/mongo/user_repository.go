package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/communityfund/fund-nexus/internal/core/domain"
)

const collectionUsers = "users"

// userDoc adds the lowercased lookup key to the stored user.
type userDoc struct {
	domain.User   `bson:",inline"`
	UsernameLower string `bson:"username_lower"`
}

type UserRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db, col: db.Collection(collectionUsers)}
}

// FindByUsername matches case-insensitively via the username_lower key.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	err := r.col.FindOne(ctx, bson.M{"username_lower": strings.ToLower(username)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &doc.User, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionUsers)
	if err != nil {
		return err
	}
	u.ID = id

	_, err = r.col.InsertOne(ctx, userDoc{User: *u, UsernameLower: strings.ToLower(u.Username)})
	return err
}

func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username_lower", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
