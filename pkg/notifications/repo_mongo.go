package notifications

import (
	"context"

	"github.com/ahasanshaker/forum-server/pkg/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationsRepoMongo struct {
	collection common.CollectionHelper
}

func NewNotificationsRepoMongo(db *mongo.Database) *NotificationsRepoMongo {
	return &NotificationsRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("notifications")}}
}

// AddBatch persists the batch with a single insert. An empty batch is a no-op.
func (r *NotificationsRepoMongo) AddBatch(ctx context.Context, batch []*Notification) error {
	if len(batch) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(batch))
	for _, n := range batch {
		docs = append(docs, n)
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *NotificationsRepoMongo) GetByUser(ctx context.Context, email string) ([]*Notification, error) {
	cur, err := r.collection.Find(ctx, bson.M{"userEmail": email}, options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	var result []*Notification
	err = cur.All(ctx, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *NotificationsRepoMongo) MarkAllRead(ctx context.Context, email string) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"userEmail": email, "read": false},
		bson.D{
			{Key: "$set", Value: bson.M{"read": true}},
		})

	return err
}
