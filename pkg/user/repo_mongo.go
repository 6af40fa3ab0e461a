package user

import (
	"context"
	"time"

	"github.com/ahasanshaker/forum-server/pkg/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UsersRepoMongo struct {
	collection common.CollectionHelper
}

func NewUsersRepoMongo(db *mongo.Database) *UsersRepoMongo {
	return &UsersRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("users")}}
}

func (r *UsersRepoMongo) GetByEmail(ctx context.Context, email string) (*User, error) {
	res := r.collection.FindOne(ctx, bson.M{"email": email})

	u := &User{}
	err := res.Decode(u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *UsersRepoMongo) GetAll(ctx context.Context) ([]*User, error) {
	cur, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	var result []*User
	err = cur.All(ctx, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetOrCreate resolves a user by email, creating a free-tier record on first
// reference. The returned flag reports whether a record was created. A lost
// create race hits the unique index on email and falls back to a lookup.
func (r *UsersRepoMongo) GetOrCreate(ctx context.Context, email, name, image string) (*User, bool, error) {
	u, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if u != nil {
		return u, false, nil
	}

	u = &User{
		Email:      email,
		Name:       name,
		Image:      image,
		Membership: Free,
		CreatedAt:  time.Now(),
	}

	res, err := r.collection.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		existing, getErr := r.GetByEmail(ctx, email)
		if getErr != nil {
			return nil, false, getErr
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	u.ID = res.GetInsertedID()
	return u, true, nil
}

// Upgrade is a no-op when no user matches the email.
func (r *UsersRepoMongo) Upgrade(ctx context.Context, email string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"email": email},
		bson.D{
			{Key: "$set", Value: bson.M{"membership": Premium}},
		})

	return err
}
